package badger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v3"

	"talent-match/internal/storage"
)

// Store is the default driver: a durable local key-value file, the server
// analogue of the browser-local storage the collections originally lived in.
type Store struct {
	db *badgerdb.DB
}

func Open(path string, logger *log.Logger) (storage.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty badger path")
	}

	opts := badgerdb.DefaultOptions(path)
	opts.Logger = nil
	if logger != nil {
		logger.Printf("[Store] opening badger at %s", path)
	}

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("nil store")
	}

	var out []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("nil store")
	}
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("nil store")
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
