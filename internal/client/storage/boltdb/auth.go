package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
)

// authKey единственная запись сессии: клиент хранит одну сессию на файл базы
var authKey = []byte("token")

// SaveAuth replaces the stored session record
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal session of %s: %w", auth.Owner, err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := requireBucket(tx, bucketAuth)
		if err != nil {
			return err
		}
		if err := bucket.Put(authKey, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// GetAuth returns the stored session record or ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth := &storage.AuthData{}
	err := s.view(func(tx *bbolt.Tx) error {
		bucket, err := requireBucket(tx, bucketAuth)
		if err != nil {
			return err
		}
		raw := bucket.Get(authKey)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		if err := json.Unmarshal(raw, auth); err != nil {
			return fmt.Errorf("failed to decode session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// DeleteAuth removes the session record; ErrAuthNotFound if there is none
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := requireBucket(tx, bucketAuth)
		if err != nil {
			return err
		}
		if bucket.Get(authKey) == nil {
			return storage.ErrAuthNotFound
		}
		if err := bucket.Delete(authKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}
