// Package store keeps the interactive history of 3code in a bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.3code.sh/pkg/logutil"
	"src.3code.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Functions that initialize the database, keyed by a description used in
// error messages.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for history.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0644, &bolt.Options{
		// Another session may hold the database; give up instead of hanging.
		Timeout: time.Second,
	})
}

// NewStore creates a new DBStore from the given file.
func NewStore(path string) (DBStore, error) {
	db, err := dbWithDefaultOptions(path)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new DBStore from a bolt DB. If the database cannot
// be initialized, it is closed and the error is returned.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Println("cannot initialize store:", err)
		db.Close()
		return nil, err
	}
	logger.Println("initialized store")
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
