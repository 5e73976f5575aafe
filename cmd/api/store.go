package main

import (
	"context"
	"fmt"

	httpadp "immofund-backend/internal/adapter/http"
	"immofund-backend/internal/adapter/repository/gormrepo"
	"immofund-backend/internal/adapter/repository/mongorepo"
	"immofund-backend/internal/config"
	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/infrastructure/db"
	"immofund-backend/internal/infrastructure/docstore"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type store struct {
	uow   uow.UnitOfWork
	check httpadp.Check
	close func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverMySQL, config.DriverSQLite:
		var (
			gdb *gorm.DB
			err error
		)
		if cfg.StoreDriver == config.DriverMySQL {
			gdb, err = db.OpenGorm(cfg.MySQLDSN())
		} else {
			gdb, err = db.OpenSQLite(cfg.SQLitePath)
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.StoreDriver, err)
		}
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.StoreDriver).Bool("transactions", !cfg.DisableTx).Msg("sql store ready")
		return &store{
			uow:   gormrepo.NewGormUoW(gdb, gormrepo.WithTransactions(!cfg.DisableTx)),
			check: sqlDB.PingContext,
			close: func() { _ = sqlDB.Close() },
		}, nil

	case config.DriverMongo:
		client, err := docstore.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		txOK, err := docstore.SupportsTransactions(ctx, client)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		database := client.Database(cfg.MongoDB)
		if err := docstore.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		if !txOK {
			log.Warn().Msg("mongo deployment has no transactions, coordinators run sequential steps with compensation")
		}
		log.Info().Str("db", cfg.MongoDB).Bool("transactions", txOK).Msg("document store ready")
		return &store{
			uow:   mongorepo.NewMongoUoW(database, txOK),
			check: func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
