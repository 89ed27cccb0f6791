package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"go.uber.org/zap"
)

// Open builds the ProductRepository selected by cfg.Store.Driver. The returned
// close function releases the backend's connections.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (ProductRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.DriverMemory:
		return NewInMemoryProductRepository(), noop, nil

	case config.DriverPostgres, config.DriverGorm:
		database, err := openDatabase(ctx, cfg.Database, log)
		if err != nil {
			return nil, noop, err
		}
		if cfg.Store.Driver == config.DriverPostgres {
			return NewPostgresProductRepository(database), database.Close, nil
		}
		gdb, err := db.OpenGorm(database, log)
		if err != nil {
			database.Close()
			return nil, noop, err
		}
		return NewGormProductRepository(gdb), database.Close, nil

	case config.DriverRedis:
		rs, err := redissvc.NewRedisService(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisProductRepository(rs.Rdb()), rs.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*sql.DB, error) {
	database, err := db.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Migrate {
		if err := db.RunMigrations(database); err != nil {
			database.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}
	return database, nil
}
