package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dagraham/timemate/internal/models"
)

// Store is the persistent record store backed by SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create timemate directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: gdb}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// OpenMemory opens a fresh in-memory store. Used by tests.
func OpenMemory() (*Store, error) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	s := &Store{db: gdb}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// migrate creates/updates the database schema
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Account{},
		&models.TimeRecord{},
	)
}

// Transaction runs fn against a store bound to a single database transaction.
// The cascading stop+start performed on timer start relies on this so that
// no observer can see zero or two running records.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
