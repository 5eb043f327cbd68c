package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In

	DB       *gorm.DB
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

func main() {
	promoteAdmin := flag.String("promote-admin", "", "Email of an existing user to grant the admin role after migrating")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
		),
		fx.Invoke(func(params migrateParams) error {
			return run(params, strings.TrimSpace(*promoteAdmin))
		}),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(params migrateParams, promoteAdmin string) error {
	ctx := context.Background()

	if err := params.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	params.Logger.Info("Schema migrated", slog.Int("models", len(model.All())))

	if promoteAdmin == "" {
		return nil
	}

	user, err := params.UserRepo.FindByEmail(ctx, strings.ToLower(promoteAdmin))
	if err != nil {
		return errors.Wrapf(err, "find user %s", promoteAdmin)
	}

	user.Role = entity.RoleAdmin
	if err := params.UserRepo.Update(ctx, user); err != nil {
		return errors.Wrapf(err, "promote user %s", promoteAdmin)
	}
	params.Logger.Info("User promoted to admin", slog.String("email", user.Email))

	return nil
}
