// Command seed applies pending migrations and loads the reference fixtures.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	intconfig "ecommerce/internal/config"
	intdb "ecommerce/internal/db"
	"ecommerce/internal/repositories"
	"ecommerce/internal/seed"
	"ecommerce/internal/services"
	"ecommerce/internal/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return err
	}
	utils.SetupLogger(os.Stdout, env.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := intconfig.OpenDB(ctx, env)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB(db)

	if err := intdb.Migrate(ctx, db); err != nil {
		return err
	}

	res, err := seed.Run(ctx,
		repositories.UserRepository{DB: db},
		repositories.ProductRepository{DB: db},
		services.NewBcryptHasher(env.BcryptRounds),
	)
	if err != nil {
		return err
	}
	slog.Info("seed finished",
		"users_created", res.UsersCreated,
		"products_created", res.ProductsCreated,
	)
	return nil
}
