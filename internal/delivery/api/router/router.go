// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.GetMe, r.authMiddleware.Authenticate)
		authGroup.PUT("/me", r.authHandler.UpdateMe, r.authMiddleware.Authenticate)
	}

	usersGroup := api.Group("/users", r.authMiddleware.Authenticate, requireAdmin)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Catalog reads are public; writes are admin-only.
	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productsGroup.GET("/sku/:sku", r.productHandler.GetProductBySKU)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate, requireAdmin)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate, requireAdmin)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate, requireAdmin)
	}

	cartGroup := api.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:itemId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveItem)
	}

	ordersGroup := api.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/receipt", r.orderHandler.GetReceiptQR)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder, requireAdmin)
	}

	devicesGroup := api.Group("/devices", r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
	}
}
