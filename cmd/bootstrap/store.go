package bootstrap

import (
	"fmt"

	"hospital-appointment-service/config"
	domainRepo "hospital-appointment-service/internal/domain/repository"
	"hospital-appointment-service/internal/infrastructure/database"
	"hospital-appointment-service/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// openStore returns the entity store for the configured driver. db is nil for
// the file driver.
func openStore(storeCfg config.StoreConfig, dbCfg config.DBConfig, log *logrus.Logger) (*domainRepo.EntityStore, *gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch storeCfg.Driver {
	case config.StoreDriverFile:
		files, err := repository.NewFileStore(storeCfg.DataDir, log)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("Using file store in %s", files.Dir())
		return repository.NewFileEntityStore(files), nil, nil
	case config.StoreDriverPostgres:
		db, err = database.NewPostgresConnection(dbCfg, log)
	case config.StoreDriverSQLite:
		db, err = database.NewSQLiteConnection(storeCfg.SQLitePath, log)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", storeCfg.Driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database connected successfully")

	return repository.NewGormEntityStore(db, log), db, nil
}
