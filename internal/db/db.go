// Package db opens the token ledger database.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mormao/randstr/internal/config"
	"github.com/mormao/randstr/internal/db/dsn"
	"github.com/mormao/randstr/internal/db/models"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg config.DB) (gorm.Dialector, error) {
	switch cfg.Engine {
	case "sqlite":
		return sqlite.Open(dsn.Create(cfg)), nil
	case "mysql":
		return gormmysql.Open(dsn.Create(cfg)), nil
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, cfg.Engine)
	}
}

// Open connects to the ledger database and migrates its schema.
func Open(cfg config.DB) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey for every engine.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.Engine)
	}

	if err = db.AutoMigrate(&models.Token{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database handle")
	}

	return sqlDB.Close() //nolint:wrapcheck
}
