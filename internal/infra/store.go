package infra

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/repository"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Driver     string
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Ping       func(ctx context.Context) error
	Close      func(ctx context.Context) error
}

// OpenStore connects the backend named by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, err := NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return &Store{
			Driver:     cfg.StoreDriver,
			Categories: repository.NewMongoCategoryRepository(db),
			Products:   repository.NewMongoProductRepository(db),
			Ping:       func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			Close:      client.Disconnect,
		}, nil

	case "postgres", "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			if cfg.StoreDriver == "postgres" {
				return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
			}
			dsn = "calo.db"
		}
		db, err := NewDatabase(cfg.StoreDriver, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect %s: %w", cfg.StoreDriver, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:     cfg.StoreDriver,
			Categories: repository.NewCategoryRepository(db),
			Products:   repository.NewProductRepository(db),
			Ping:       sqlDB.PingContext,
			Close:      func(context.Context) error { return sqlDB.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or sqlite)", cfg.StoreDriver)
	}
}
