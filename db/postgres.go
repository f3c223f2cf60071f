// db/postgres.go
package db

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

var DB *gorm.DB

// InitPostgres connects to the system of record and runs schema migration.
func InitPostgres() error {
	dsn := viper.GetString("postgres.dsn")

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Department{},
		&model.Employee{},
		&model.AppUser{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	DB = gormDB
	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error retrieving underlying sql.DB")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection")
	}
}
