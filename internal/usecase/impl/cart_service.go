package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, persisting an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(userID)
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.log(ctx).Debug("Cart created", slog.Any("userID", userID))

	return cart, nil
}

// AddItem adds quantity units of the product at its current price.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity")
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	requested := quantity
	if existing, ok := cart.FindProduct(productID); ok {
		requested += existing.Quantity
	}
	if err := checkStock(product, requested); err != nil {
		return nil, err
	}

	cart.AddItem(productID, quantity, product.Price)

	return srv.save(ctx, cart)
}

// UpdateItem sets the quantity of an existing line.
func (srv *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity")
	}

	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, ok := cart.FindItem(itemID)
	if !ok {
		return nil, domainerrors.ErrCartItemNotFound
	}

	product, err := srv.findProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if err := checkStock(product, quantity); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	cart.Recalculate()

	return srv.save(ctx, cart)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(itemID) {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return srv.save(ctx, cart)
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Clear()

	return srv.save(ctx, cart)
}

func (srv *cartService) findCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "cart lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func (srv *cartService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

// save persists the cart and reloads it so every line carries product details.
func (srv *cartService) save(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	cart.Recalculate()

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	saved, err := srv.cartRepo.FindByUserID(ctx, cart.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return saved, nil
}

func checkStock(product *entity.Product, quantity int) error {
	if !product.HasStock(quantity) {
		return domainerrors.ErrInsufficientStock.WithDetails(strconv.Itoa(product.Stock))
	}

	return nil
}
