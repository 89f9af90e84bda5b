package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/query"
)

// ErrInvalidTaskArgs возвращается при некорректных аргументах задачи синхронизации
var ErrInvalidTaskArgs = errors.New("invalid sync task arguments")

// TaskType тип задачи синхронизации.
type TaskType int

const (
	TaskCreateBranch TaskType = iota + 1
	TaskPullEntry
	TaskPushEntry
	TaskSearchEntry
	TaskPostFileChunk
	TaskMergeFileChunk
	TaskNotifyData
)

// String returns the remote method name of the task type.
func (t TaskType) String() string {
	switch t {
	case TaskCreateBranch:
		return "createBranch"
	case TaskPullEntry:
		return "pull"
	case TaskPushEntry:
		return "push"
	case TaskSearchEntry:
		return "search"
	case TaskPostFileChunk:
		return "chunkForFile"
	case TaskMergeFileChunk:
		return "mergeChunksForFile"
	case TaskNotifyData:
		return "notifyData"
	default:
		return "unknown"
	}
}

// TaskState состояние задачи в жизненном цикле движка синхронизации.
type TaskState int

const (
	TaskQueued TaskState = iota + 1
	TaskInFlight
	TaskRetryWait
	TaskDeadLetter
	TaskCompleted
	TaskCancelled
)

// String returns the name of the state.
func (s TaskState) String() string {
	switch s {
	case TaskQueued:
		return "queued"
	case TaskInFlight:
		return "in-flight"
	case TaskRetryWait:
		return "retry-wait"
	case TaskDeadLetter:
		return "dead-letter"
	case TaskCompleted:
		return "completed"
	case TaskCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Pending reports whether the task still counts as outstanding work.
func (s TaskState) Pending() bool {
	return s == TaskQueued || s == TaskInFlight || s == TaskRetryWait
}

// TaskArgs аргументы задачи. Набор обязательных полей зависит от TaskType.
type TaskArgs struct {
	Users          Users             `json:"users,omitempty"`
	Groups         Groups            `json:"groups,omitempty"`
	Query          query.Filter      `json:"query,omitempty"`
	LocalBranch    string            `json:"local_branch,omitempty"`
	RemoteOwner    string            `json:"remote_owner,omitempty"`
	RemoteBranch   string            `json:"remote_branch,omitempty"`
	RemoteObjectID string            `json:"remote_object_id,omitempty"`
	Reference      string            `json:"reference,omitempty"`
	Start          string            `json:"start,omitempty"`
	End            string            `json:"end,omitempty"`
	Head           string            `json:"head,omitempty"`
	FileID         string            `json:"file_id,omitempty"`
	Checksum       string            `json:"checksum,omitempty"`
	QueueURL       string            `json:"queue_url,omitempty"`
	Commits        []Commit          `json:"commits,omitempty"`
	Projections    []string          `json:"projections,omitempty"`
	Sort           []query.SortField `json:"sort,omitempty"`
	Listeners      []string          `json:"listeners,omitempty"`
	Chunk          []byte            `json:"chunk,omitempty"`
	Payload        []byte            `json:"payload,omitempty"`
	RefreshTime    time.Duration     `json:"refresh_time,omitempty"`
	Offset         int               `json:"offset,omitempty"`
	Limit          int               `json:"limit,omitempty"`
	ChunkNumber    int               `json:"chunk_number,omitempty"`
	ChunkCount     int               `json:"chunk_count,omitempty"`
}

// Coordinate returns the remote coordinate the task is ordered by.
// Задачи загрузки файла используют FileID как id объекта, поэтому чанки и merge
// одного файла выполняются строго по порядку.
func (a TaskArgs) Coordinate(t TaskType) Coordinate {
	c := Coordinate{Owner: a.RemoteOwner, Branch: a.RemoteBranch}
	switch t {
	case TaskPostFileChunk, TaskMergeFileChunk:
		c.ObjectID = a.FileID
	case TaskSearchEntry:
		c.ObjectID = a.Reference
	case TaskCreateBranch:
	default:
		c.ObjectID = a.RemoteObjectID
	}
	return c
}

// Validate проверяет аргументы для указанного типа задачи.
func (a TaskArgs) Validate(t TaskType) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidTaskArgs, t, field)
	}

	if a.RemoteOwner == "" {
		return missing("remote owner")
	}
	if a.RemoteBranch == "" {
		return missing("remote branch")
	}

	switch t {
	case TaskCreateBranch:
		if a.LocalBranch == "" {
			return missing("local branch")
		}
	case TaskPullEntry:
		if a.LocalBranch == "" {
			return missing("local branch")
		}
		if a.RemoteObjectID == "" {
			return missing("remote object id")
		}
	case TaskPushEntry:
		if a.LocalBranch == "" {
			return missing("local branch")
		}
		if a.RemoteObjectID == "" {
			return missing("remote object id")
		}
		if len(a.Commits) == 0 {
			return missing("commits")
		}
		if err := VerifyChain(a.Commits, a.Commits[0].ParentHash); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTaskArgs, err)
		}
	case TaskSearchEntry:
		if a.LocalBranch == "" {
			return missing("local branch")
		}
		if a.Reference == "" {
			return missing("reference")
		}
		if a.Offset < 0 || a.Limit < 0 {
			return fmt.Errorf("%w: negative offset or limit", ErrInvalidTaskArgs)
		}
	case TaskPostFileChunk:
		if a.FileID == "" {
			return missing("file id")
		}
		if a.ChunkNumber < 0 {
			return fmt.Errorf("%w: negative chunk number", ErrInvalidTaskArgs)
		}
		if len(a.Chunk) == 0 {
			return missing("chunk")
		}
	case TaskMergeFileChunk:
		if a.FileID == "" {
			return missing("file id")
		}
		if a.ChunkCount <= 0 {
			return missing("chunk count")
		}
	case TaskNotifyData:
		if a.QueueURL == "" {
			return missing("queue url")
		}
		if a.RemoteObjectID == "" {
			return missing("remote object id")
		}
	default:
		return fmt.Errorf("%w: unknown task type %d", ErrInvalidTaskArgs, int(t))
	}
	return nil
}

// SyncTask единица работы движка синхронизации, сохраняется между перезапусками.
type SyncTask struct {
	NextAttemptAt time.Time `json:"next_attempt_at,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	LastError     string    `json:"last_error,omitempty"`
	Args          TaskArgs  `json:"args"`
	Seq           uint64    `json:"seq"`
	Type          TaskType  `json:"type"`
	Attempts      int       `json:"attempts"`
	State         TaskState `json:"state"`
}
