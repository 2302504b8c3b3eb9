package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const docKeyPrefix = "doc:"

// BadgerStore implements Store on top of a BadgerDB instance. Each
// document lives under a single "doc:<name>" key, so a save is one
// atomic key replacement.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a new BadgerStore
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadger opens (or initializes) a Badger database at path. An empty
// path opens an in-memory database, used by tests.
func OpenBadger(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path).
			WithNumVersionsToKeep(1).
			WithNumGoroutines(1)
	}
	return badger.Open(opts.WithLogger(nil))
}

// Load unmarshals the named document into v. Missing keys and corrupt
// values leave v at its default.
func (s *BadgerStore) Load(name string, v any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(docKeyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			// Unparsable documents fall back to the caller's default.
			if !json.Valid(val) {
				return nil
			}
			_ = json.Unmarshal(val, v)
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("load document %q: %v", name, err)
	}
	return nil
}

// Save overwrites the named document in a single update transaction.
func (s *BadgerStore) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal document %q: %v", ErrWrite, name, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(docKeyPrefix+name), data)
	})
	if err != nil {
		return fmt.Errorf("%w: document %q: %v", ErrWrite, name, err)
	}
	return nil
}
