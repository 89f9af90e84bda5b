package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// SavePullRequest stores a pull request under pull_requests/<localBranch>/<id>
func (s *Storage) SavePullRequest(ctx context.Context, pr *models.PullRequest) error {
	data, err := json.Marshal(pr)
	if err != nil {
		return fmt.Errorf("failed to marshal pull request: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketPullRequests)
		if root == nil {
			return fmt.Errorf("pull_requests bucket not found")
		}

		bucket, err := root.CreateBucketIfNotExists([]byte(pr.LocalBranch))
		if err != nil {
			return fmt.Errorf("failed to create branch bucket: %w", err)
		}

		if err := bucket.Put([]byte(pr.ID), data); err != nil {
			return fmt.Errorf("failed to save pull request: %w", err)
		}
		return nil
	})
}

// GetPullRequest returns a pull request of the local branch
func (s *Storage) GetPullRequest(ctx context.Context, localBranch, id string) (*models.PullRequest, error) {
	var pr *models.PullRequest

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := branchPullRequests(tx, localBranch)
		if bucket == nil {
			return storage.ErrPullRequestNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrPullRequestNotFound
		}

		pr = &models.PullRequest{}
		if err := json.Unmarshal(data, pr); err != nil {
			return fmt.Errorf("failed to unmarshal pull request: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return pr, nil
}

// ListPullRequests returns pull requests of the local branch ordered by creation time
func (s *Storage) ListPullRequests(ctx context.Context, localBranch string) ([]*models.PullRequest, error) {
	prs := []*models.PullRequest{}

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := branchPullRequests(tx, localBranch)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var pr models.PullRequest
			if err := json.Unmarshal(v, &pr); err != nil {
				return fmt.Errorf("failed to unmarshal pull request %s: %w", k, err)
			}
			prs = append(prs, &pr)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	sort.SliceStable(prs, func(i, j int) bool {
		if prs[i].CreatedAt.Equal(prs[j].CreatedAt) {
			return prs[i].ID < prs[j].ID
		}
		return prs[i].CreatedAt.Before(prs[j].CreatedAt)
	})

	return prs, nil
}

// DeletePullRequests removes all pull requests of the local branch
func (s *Storage) DeletePullRequests(ctx context.Context, localBranch string) error {
	return s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketPullRequests)
		if root == nil {
			return nil
		}
		err := root.DeleteBucket([]byte(localBranch))
		if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete pull requests: %w", err)
		}
		return nil
	})
}

func branchPullRequests(tx *bbolt.Tx, localBranch string) *bbolt.Bucket {
	root := tx.Bucket(bucketPullRequests)
	if root == nil {
		return nil
	}
	return root.Bucket([]byte(localBranch))
}
