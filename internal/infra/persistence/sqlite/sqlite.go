// Package sqlite contains the concrete implementation of the persistence
// layer using GORM and an embedded SQLite database.
package sqlite

import (
	"context"
	"log/slog"

	"github.com/bossoq/flood-disaster-crawl/config"
	"github.com/bossoq/flood-disaster-crawl/internal/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the registry database and migrates the content table.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Database.Path), &gorm.Config{
		// One writer per run, no multi-statement transactions needed.
		SkipDefaultTransaction: true,
		// Surface primary-key conflicts as gorm.ErrDuplicatedKey.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := db.AutoMigrate(&model.ContentModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate registry schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
