package sync

import (
	"context"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

// Pull ставит получение коммитов remote в диапазоне (start, end] для локальной ветки.
func (e *Engine) Pull(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*Submission, error) {
	return e.Add(ctx, models.TaskPullEntry, models.TaskArgs{
		LocalBranch:    localBranch,
		RemoteOwner:    remote.Owner,
		RemoteBranch:   remote.Branch,
		RemoteObjectID: remote.ObjectID,
		Start:          start,
		End:            end,
	})
}

// Push ставит отправку коммитов; после успеха push-голова remote сдвигается на последний из них.
func (e *Engine) Push(ctx context.Context, localBranch string, remote models.Coordinate, commits []models.Commit) (*Submission, error) {
	return e.Add(ctx, models.TaskPushEntry, models.TaskArgs{
		LocalBranch:    localBranch,
		RemoteOwner:    remote.Owner,
		RemoteBranch:   remote.Branch,
		RemoteObjectID: remote.ObjectID,
		Commits:        commits,
	})
}

// SearchParams параметры удаленного поиска.
type SearchParams struct {
	Filter      query.Filter
	Reference   string
	Projections []string
	Sort        []query.SortField
	RefreshTime time.Duration
	Offset      int
	Limit       int
}

// Search ставит удаленный поиск; результаты сохраняются в ветке поиска под Reference.
func (e *Engine) Search(ctx context.Context, localBranch string, remote models.Coordinate, p SearchParams) (*Submission, error) {
	return e.Add(ctx, models.TaskSearchEntry, models.TaskArgs{
		LocalBranch:  localBranch,
		RemoteOwner:  remote.Owner,
		RemoteBranch: remote.Branch,
		Reference:    p.Reference,
		Query:        p.Filter,
		Projections:  p.Projections,
		Sort:         p.Sort,
		RefreshTime:  p.RefreshTime,
		Offset:       p.Offset,
		Limit:        p.Limit,
	})
}

// CreateBranch ставит создание удаленной ветки с правами users/groups.
func (e *Engine) CreateBranch(ctx context.Context, localBranch string, remote models.Coordinate, users models.Users, groups models.Groups) (*Submission, error) {
	return e.Add(ctx, models.TaskCreateBranch, models.TaskArgs{
		LocalBranch:  localBranch,
		RemoteOwner:  remote.Owner,
		RemoteBranch: remote.Branch,
		Users:        users,
		Groups:       groups,
	})
}

// ChunkForFile ставит загрузку куска файла fileID.
func (e *Engine) ChunkForFile(ctx context.Context, localBranch string, remote models.Coordinate, fileID string, chunkNumber int, chunk []byte, checksum string) (*Submission, error) {
	return e.Add(ctx, models.TaskPostFileChunk, models.TaskArgs{
		LocalBranch:  localBranch,
		RemoteOwner:  remote.Owner,
		RemoteBranch: remote.Branch,
		FileID:       fileID,
		ChunkNumber:  chunkNumber,
		Chunk:        chunk,
		Checksum:     checksum,
	})
}

// MergeChunksForFile ставит сборку файла; выполняется после всех кусков того же файла.
func (e *Engine) MergeChunksForFile(ctx context.Context, localBranch string, remote models.Coordinate, fileID string, chunkCount int, checksum string) (*Submission, error) {
	return e.Add(ctx, models.TaskMergeFileChunk, models.TaskArgs{
		LocalBranch:  localBranch,
		RemoteOwner:  remote.Owner,
		RemoteBranch: remote.Branch,
		FileID:       fileID,
		ChunkCount:   chunkCount,
		Checksum:     checksum,
	})
}

// NotifyData ставит публикацию уведомления об изменении объекта в очередь queueURL.
func (e *Engine) NotifyData(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*Submission, error) {
	return e.Add(ctx, models.TaskNotifyData, models.TaskArgs{
		RemoteOwner:    remote.Owner,
		RemoteBranch:   remote.Branch,
		RemoteObjectID: remote.ObjectID,
		QueueURL:       queueURL,
		Payload:        payload,
		Listeners:      listeners,
	})
}
