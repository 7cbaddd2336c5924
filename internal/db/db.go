package db

import (
	"bungeoppang/internal/config" // Application configuration
	"fmt"                         // Error wrapping

	"gorm.io/driver/mysql"           // MySQL driver for GORM
	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM library
	gormlogger "gorm.io/gorm/logger" // GORM SQL logger
)

// Dialector picks the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.MySQLDSN()), nil // MySQL server
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.SQLitePath)), nil // Local file database
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// SQLiteDSN enables foreign keys so cascades are enforced
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// GormConfig returns the settings shared by the server, migrations and tests
func GormConfig(isProd bool) *gorm.Config {
	level := gormlogger.Info // Verbose SQL in development
	if isProd {
		level = gormlogger.Warn // Slow queries and errors only
	}
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true, // Surface gorm.ErrDuplicatedKey on unique violations
	}
}

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	conn, err := gorm.Open(dialector, GormConfig(cfg.IsProd)) // Open a connection to the database
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.DBDriver, err)
	}
	if cfg.DBDriver == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("getting sql db handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1) // SQLite serializes writers
	}
	return conn, nil
}
