package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyClockTimestamp   = "clock_timestamp"
	keyCurrentBranchPfx = "current_branch:"
)

// SaveClockTimestamp saves the last commit clock value
func (s *Storage) SaveClockTimestamp(ctx context.Context, timestamp int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(keyClockTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save clock timestamp: %w", err)
		}

		return nil
	})
}

// GetClockTimestamp returns the saved commit clock value or 0
func (s *Storage) GetClockTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyClockTimestamp))
		if timestampBytes == nil {
			// Часы еще не сохранялись
			return nil
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get clock timestamp: %w", err)
	}

	return timestamp, nil
}

// SaveCurrentBranch saves the checked out branch of the owner
func (s *Storage) SaveCurrentBranch(ctx context.Context, owner, branch string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if err := bucket.Put([]byte(keyCurrentBranchPfx+owner), []byte(branch)); err != nil {
			return fmt.Errorf("failed to save current branch: %w", err)
		}
		return nil
	})
}

// GetCurrentBranch returns the checked out branch of the owner or empty string
func (s *Storage) GetCurrentBranch(ctx context.Context, owner string) (string, error) {
	var branch string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		branch = string(bucket.Get([]byte(keyCurrentBranchPfx + owner)))
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}

	return branch, nil
}
