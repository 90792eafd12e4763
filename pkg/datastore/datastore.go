package datastore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// NewBBoltDB opens (creating if needed) the bbolt database backing the
// catalog repositories.
func NewBBoltDB(databasePath string, timeout time.Duration) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(databasePath, 0644, &bbolt.Options{
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", databasePath, err)
	}

	if db.IsReadOnly() {
		return nil, errors.New("database is readonly")
	}
	return db, nil
}
