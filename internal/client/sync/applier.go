package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/client/search"
	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
	"github.com/iudanet/docsync/pkg/api"
)

// ErrUnexpectedResponse тип ответа не соответствует типу задачи
var ErrUnexpectedResponse = errors.New("unexpected response type")

//go:generate moq -out applier_mock.go . Applier

// Applier применяет успешный ответ удаленной стороны к локальному состоянию.
// Ошибка применения не повторяется: задача удаляется, callback получает ошибку.
type Applier interface {
	Apply(ctx context.Context, task models.SyncTask, response any) error
}

type noopApplier struct{}

func (noopApplier) Apply(context.Context, models.SyncTask, any) error { return nil }

// SearchStore сохраняет результаты удаленного поиска в ветке поиска.
type SearchStore interface {
	StoreRemoteResults(ctx context.Context, branch, ref string, filter query.Filter, docs []*models.Document) (*search.Entry, error)
}

// FileCompleter отмечает файл загруженным после mergeChunksForFile.
type FileCompleter interface {
	MarkCompleted(ctx context.Context, branch, fileID string) error
}

// ConflictRecorder откладывает конфликтующие коммиты pull в реестр pull request-ов.
type ConflictRecorder interface {
	Add(ctx context.Context, localBranch, remoteOwner, remoteBranch, remoteObjectID, reference string, commits []models.Commit, head string) (*models.PullRequest, error)
}

// RepositoryApplier применяет ответы через репозиторий документов.
type RepositoryApplier struct {
	repo   repository.Repository
	search SearchStore
	files  FileCompleter
	ledger ConflictRecorder
	logger *slog.Logger
}

// NewRepositoryApplier creates an applier on top of repo
func NewRepositoryApplier(repo repository.Repository, logger *slog.Logger) *RepositoryApplier {
	return &RepositoryApplier{repo: repo, logger: logger}
}

// WithSearch enables storing remote search results
func (a *RepositoryApplier) WithSearch(s SearchStore) *RepositoryApplier {
	a.search = s
	return a
}

// WithFiles enables upload completion tracking
func (a *RepositoryApplier) WithFiles(f FileCompleter) *RepositoryApplier {
	a.files = f
	return a
}

// WithLedger enables recording conflicting pulls as pull requests
func (a *RepositoryApplier) WithLedger(l ConflictRecorder) *RepositoryApplier {
	a.ledger = l
	return a
}

// Apply implements Applier.
func (a *RepositoryApplier) Apply(ctx context.Context, task models.SyncTask, response any) error {
	args := task.Args
	remote := args.Coordinate(task.Type)

	switch task.Type {
	case models.TaskPullEntry:
		resp, ok := response.(*api.PullResponse)
		if !ok {
			return unexpected(task, response)
		}
		return a.applyPull(ctx, args, remote, resp)

	case models.TaskPushEntry:
		if _, ok := response.(*api.PushResponse); !ok {
			return unexpected(task, response)
		}
		if err := a.repo.ConfirmMergeToBranch(ctx, args.LocalBranch, args.RemoteObjectID, args.Commits, remote); err != nil {
			return fmt.Errorf("failed to confirm push: %w", err)
		}
		return nil

	case models.TaskSearchEntry:
		resp, ok := response.(*api.SearchResponse)
		if !ok {
			return unexpected(task, response)
		}
		if a.search == nil {
			return nil
		}
		if _, err := a.search.StoreRemoteResults(ctx, args.LocalBranch, args.Reference, args.Query, transport.DocumentsFromAPI(resp.Documents)); err != nil {
			return fmt.Errorf("failed to store search results: %w", err)
		}
		return nil

	case models.TaskMergeFileChunk:
		if _, ok := response.(*api.MergeChunksResponse); !ok {
			return unexpected(task, response)
		}
		if a.files == nil {
			return nil
		}
		if err := a.files.MarkCompleted(ctx, args.LocalBranch, args.FileID); err != nil {
			return fmt.Errorf("failed to complete upload: %w", err)
		}
		return nil
	}
	return nil
}

func (a *RepositoryApplier) applyPull(ctx context.Context, args models.TaskArgs, remote models.Coordinate, resp *api.PullResponse) error {
	commits := transport.CommitsFromAPI(resp.Commits)
	if len(commits) == 0 {
		return nil
	}

	_, report, err := a.repo.ApplyPull(ctx, args.LocalBranch, args.RemoteObjectID, commits, repository.MergeOptions{
		Prefix: "pull",
		Head:   args.Start,
		Remote: remote,
	})
	if err != nil {
		return fmt.Errorf("failed to apply pull: %w", err)
	}
	if !report.HasConflicts() {
		return nil
	}

	a.logger.Info("Pull has conflicts",
		"branch", args.LocalBranch,
		"remote", remote.Key(),
		"conflicts", len(report.Conflicts),
	)
	if a.ledger == nil {
		return nil
	}
	pr, err := a.ledger.Add(ctx, args.LocalBranch, remote.Owner, remote.Branch, remote.ObjectID, args.Reference, commits, commits[len(commits)-1].ID)
	if err != nil {
		return fmt.Errorf("failed to record conflicting pull: %w", err)
	}
	a.logger.Info("Conflicting pull recorded", "pull_request", pr.ID)
	return nil
}

func unexpected(task models.SyncTask, response any) error {
	return fmt.Errorf("%w: %T for %s", ErrUnexpectedResponse, response, task.Type)
}
