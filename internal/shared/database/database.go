// Package database opens the gorm handle shared by every repository and keeps
// the schema migrated.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/reshetovitsme/chat-moderator/internal/shared/config"
	"github.com/samber/oops"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and runs the registered migrations.
func Open(cfg *config.Config, models ...any) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DatabaseDriver {
	case config.DatabaseDriverMysql:
		db, err = OpenMySQL(cfg.DatabaseDSN)
	default:
		db, err = OpenSQLite(cfg.DatabaseDSN)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, oops.With("driver", cfg.DatabaseDriver, "context", "failed to migrate schema").Wrap(err)
	}

	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database file and applies PRAGMAs.
// SQLite has a single writer, so the pool is pinned to one connection and
// transactions queue instead of failing with SQLITE_BUSY.
func OpenSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, oops.With("path", path, "context", "failed to create database directory").Wrap(err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, oops.With("path", path, "context", "failed to open sqlite").Wrap(err)
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	return db, nil
}

// OpenMySQL opens a MySQL connection pool for multi-instance deployments.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, oops.With("context", "failed to open mysql").Wrap(err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// OpenMemory returns a fresh in-memory SQLite database with the given models
// migrated. name only labels the database (tests pass t.Name()); every call
// gets its own instance, so a re-run of the same test starts empty.
func OpenMemory(name string, models ...any) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, oops.With("name", name, "context", "failed to open in-memory sqlite").Wrap(err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, oops.With("name", name, "context", "failed to migrate in-memory sqlite").Wrap(err)
		}
	}

	return db, nil
}
