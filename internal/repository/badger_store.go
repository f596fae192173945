package repository

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore 默认的嵌入式存储
type BadgerStore struct {
	DB *badger.DB
}

func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{DB: db}
}

func (s *BadgerStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (s *BadgerStore) SetItem(ctx context.Context, key string, value []byte) error {
	return s.DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *BadgerStore) RemoveItem(ctx context.Context, key string) error {
	return s.DB.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *BadgerStore) Close() error {
	return s.DB.Close()
}
