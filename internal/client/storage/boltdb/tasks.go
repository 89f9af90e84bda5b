package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/models"
)

// NextTaskSeq returns the next sequence number of the sync_tasks bucket
func (s *Storage) NextTaskSeq(ctx context.Context) (uint64, error) {
	var seq uint64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncTasks)
		if bucket == nil {
			return fmt.Errorf("sync_tasks bucket not found")
		}

		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		seq = next
		return nil
	})

	if err != nil {
		return 0, err
	}

	return seq, nil
}

// SaveTask stores a task under sync_tasks/<queue>/<seq>
func (s *Storage) SaveTask(ctx context.Context, task *models.SyncTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSyncTasks)
		if root == nil {
			return fmt.Errorf("sync_tasks bucket not found")
		}

		bucket, err := root.CreateBucketIfNotExists([]byte(task.Queue))
		if err != nil {
			return fmt.Errorf("failed to create queue bucket: %w", err)
		}

		if err := bucket.Put(seqKey(task.Seq), data); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
		return nil
	})
}

// DeleteTask removes a task and its queue bucket when it becomes empty
func (s *Storage) DeleteTask(ctx context.Context, task *models.SyncTask) error {
	return s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSyncTasks)
		if root == nil {
			return nil
		}
		bucket := root.Bucket([]byte(task.Queue))
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete(seqKey(task.Seq)); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		// Пустой bucket очереди больше не нужен
		if k, _ := bucket.Cursor().First(); k == nil {
			if err := root.DeleteBucket([]byte(task.Queue)); err != nil {
				return fmt.Errorf("failed to delete queue bucket: %w", err)
			}
		}
		return nil
	})
}

// ListTasks returns all persisted tasks ordered by sequence
func (s *Storage) ListTasks(ctx context.Context) ([]*models.SyncTask, error) {
	tasks := []*models.SyncTask{}

	err := s.view(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSyncTasks)
		if root == nil {
			return nil
		}

		return root.ForEach(func(queue, v []byte) error {
			// Вложенные bucket-ы имеют nil значение
			if v != nil {
				return nil
			}
			bucket := root.Bucket(queue)
			return bucket.ForEach(func(k, v []byte) error {
				var task models.SyncTask
				if err := json.Unmarshal(v, &task); err != nil {
					return fmt.Errorf("failed to unmarshal task %s/%d: %w", queue, binary.BigEndian.Uint64(k), err)
				}
				tasks = append(tasks, &task)
				return nil
			})
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Seq < tasks[j].Seq })
	return tasks, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
