package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/queue"
)

// Атрибуты сообщения NotifyData
const (
	AttrObjectID  = "object_id"
	AttrOwner     = "owner"
	AttrBranch    = "branch"
	AttrListeners = "listeners"
)

// NotifyResult ответ задачи NotifyData: id опубликованных сообщений.
type NotifyResult struct {
	MessageIDs []string
}

// perform выполняет удаленный вызов задачи.
func (e *Engine) perform(ctx context.Context, task models.SyncTask) (any, error) {
	args := task.Args
	switch task.Type {
	case models.TaskPullEntry:
		return e.transport.Pull(ctx, transport.PullRequestFor(args))
	case models.TaskPushEntry:
		return e.transport.Push(ctx, transport.PushRequestFor(args))
	case models.TaskSearchEntry:
		return e.transport.Search(ctx, transport.SearchRequestFor(args))
	case models.TaskCreateBranch:
		return e.transport.CreateBranch(ctx, transport.CreateBranchRequestFor(args))
	case models.TaskPostFileChunk:
		return e.transport.ChunkForFile(ctx, transport.ChunkRequestFor(args))
	case models.TaskMergeFileChunk:
		return e.transport.MergeChunksForFile(ctx, transport.MergeChunksRequestFor(args))
	case models.TaskNotifyData:
		return e.publish(ctx, task)
	default:
		return nil, fmt.Errorf("%w: unknown task type %d", transport.ErrRejected, int(task.Type))
	}
}

// publish отправляет уведомление в очередь; группа сообщений = координата объекта.
func (e *Engine) publish(ctx context.Context, task models.SyncTask) (*NotifyResult, error) {
	e.mu.Lock()
	q := e.publisher
	e.mu.Unlock()
	if q == nil {
		return nil, fmt.Errorf("%w: no queue configured for notifications", transport.ErrRejected)
	}

	args := task.Args
	coord := args.Coordinate(task.Type)
	msg := queue.Message{
		ID:   task.ID,
		Body: string(args.Payload),
		Attributes: map[string]string{
			AttrObjectID: coord.ObjectID,
			AttrOwner:    coord.Owner,
			AttrBranch:   coord.Branch,
		},
	}
	if len(args.Listeners) > 0 {
		msg.Attributes[AttrListeners] = strings.Join(args.Listeners, ",")
	}

	ids, err := q.SendMessage(ctx, args.QueueURL, []queue.Message{msg}, 0, coord.Key())
	if err != nil {
		if errors.Is(err, queue.ErrInvalidDelay) || errors.Is(err, queue.ErrEmptyBatch) {
			return nil, fmt.Errorf("%w: %w", transport.ErrRejected, err)
		}
		return nil, fmt.Errorf("%w: failed to publish notification: %w", transport.ErrUnavailable, err)
	}
	return &NotifyResult{MessageIDs: ids}, nil
}
