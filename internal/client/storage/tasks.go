package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

// TaskStorage defines durable persistence of the sync task queue
type TaskStorage interface {
	// NextTaskSeq returns a new monotonically increasing sequence number
	NextTaskSeq(ctx context.Context) (uint64, error)

	// SaveTask stores or updates a task under its queue and sequence
	SaveTask(ctx context.Context, task *models.SyncTask) error

	// DeleteTask removes a task; missing task is not an error
	DeleteTask(ctx context.Context, task *models.SyncTask) error

	// ListTasks returns all persisted tasks ordered by sequence
	ListTasks(ctx context.Context) ([]*models.SyncTask, error)
}
