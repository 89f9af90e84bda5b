package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// CreateBranch stores a new branch under branches/<owner>/<name>
func (s *Storage) CreateBranch(ctx context.Context, branch *models.Branch) error {
	data, err := json.Marshal(branch)
	if err != nil {
		return fmt.Errorf("failed to marshal branch: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		owners := tx.Bucket(bucketBranches)
		if owners == nil {
			return fmt.Errorf("branches bucket not found")
		}

		bucket, err := owners.CreateBucketIfNotExists([]byte(branch.Owner))
		if err != nil {
			return fmt.Errorf("failed to create owner bucket: %w", err)
		}

		// Проверка и запись в одной транзакции
		if bucket.Get([]byte(branch.Name)) != nil {
			return storage.ErrBranchExists
		}
		if err := bucket.Put([]byte(branch.Name), data); err != nil {
			return fmt.Errorf("failed to save branch: %w", err)
		}
		return nil
	})
}

// GetBranch returns a branch of the owner
func (s *Storage) GetBranch(ctx context.Context, owner, name string) (*models.Branch, error) {
	var branch *models.Branch

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := ownerBucket(tx, owner)
		if bucket == nil {
			return storage.ErrBranchNotFound
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return storage.ErrBranchNotFound
		}

		branch = &models.Branch{}
		if err := json.Unmarshal(data, branch); err != nil {
			return fmt.Errorf("failed to unmarshal branch: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return branch, nil
}

// ListBranches returns all branches of the owner ordered by name
func (s *Storage) ListBranches(ctx context.Context, owner string) ([]*models.Branch, error) {
	branches := []*models.Branch{}

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := ownerBucket(tx, owner)
		if bucket == nil {
			return nil
		}

		// bbolt хранит ключи отсортированными, порядок по имени получаем бесплатно
		return bucket.ForEach(func(k, v []byte) error {
			var branch models.Branch
			if err := json.Unmarshal(v, &branch); err != nil {
				return fmt.Errorf("failed to unmarshal branch %s: %w", k, err)
			}
			branches = append(branches, &branch)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return branches, nil
}

// DeleteBranch removes a branch record
func (s *Storage) DeleteBranch(ctx context.Context, owner, name string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := ownerBucket(tx, owner)
		if bucket == nil || bucket.Get([]byte(name)) == nil {
			return storage.ErrBranchNotFound
		}
		if err := bucket.Delete([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete branch: %w", err)
		}
		return nil
	})
}

func ownerBucket(tx *bbolt.Tx, owner string) *bbolt.Bucket {
	owners := tx.Bucket(bucketBranches)
	if owners == nil {
		return nil
	}
	return owners.Bucket([]byte(owner))
}
