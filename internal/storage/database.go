package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ericogr/ringside/internal/game"
)

// DefaultDSN keeps sessions in a shared in-memory database that lives as
// long as the process.
const DefaultDSN = "file:ringside?mode=memory&cache=shared"

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dataSourceName == "" {
		dataSourceName = DefaultDSN
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	// A shared-cache memory database disappears when its last connection
	// closes, and sqlite serializes writers anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&game.Match{}, &game.FighterRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
