package cli

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/async"
	"github.com/iudanet/docsync/internal/client/pullrequests"
	"github.com/iudanet/docsync/internal/client/repository"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/queue"
)

func TestCli_PullNewDocumentStartsFromScratch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	f.engine.PullFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error) {
		return submitted("t-1", nil), nil
	}

	require.NoError(t, f.cli.Run(ctx, "pull", []string{"doc-1", "bob/main"}))

	calls := f.engine.PullCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.DefaultBranch, calls[0].LocalBranch)
	assert.Equal(t, models.Coordinate{Owner: "bob", Branch: "main", ObjectID: "doc-1"}, calls[0].Remote)
	assert.Empty(t, calls[0].Start)
	assert.Contains(t, f.out.String(), "✓ Pull completed")
}

func TestCli_PullStartsAfterPullHead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	// коммиты удаленной стороны из отдельного репозитория
	remoteFixture := newFixture(t, false)
	doc := models.NewDocument(map[string]any{"title": "shared"})
	require.NoError(t, doc.SetID("doc-1"))
	remoteDoc, err := remoteFixture.repo.Commit(ctx, models.DefaultBranch, doc, "create", "")
	require.NoError(t, err)
	incoming := remoteDoc.GetCommits().All()

	remote := models.Coordinate{Owner: "bob", Branch: "main", ObjectID: "doc-1"}
	_, report, err := f.repo.ApplyPull(ctx, models.DefaultBranch, "doc-1", incoming, repository.MergeOptions{Prefix: "pull", Remote: remote})
	require.NoError(t, err)
	require.False(t, report.HasConflicts())

	f.engine.PullFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error) {
		return submitted("t-2", nil), nil
	}
	require.NoError(t, f.cli.Run(ctx, "pull", []string{"doc-1", "bob/main"}))

	calls := f.engine.PullCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, incoming[len(incoming)-1].ID, calls[0].Start)
}

func TestCli_PullReportsPendingPullRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	commits := localCommits(t, f, "doc-9")
	_, err := f.ledger.Add(ctx, models.DefaultBranch, "bob", "main", "doc-9", "", commits, commits[0].ID)
	require.NoError(t, err)

	f.engine.PullFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error) {
		return submitted("t-3", nil), nil
	}
	require.NoError(t, f.cli.Run(ctx, "pull", []string{"doc-9", "bob/main"}))
	assert.Contains(t, f.out.String(), "1 pull request(s) need review")
}

func TestCli_PullErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	assert.ErrorIs(t, f.cli.Run(ctx, "pull", []string{"doc-1"}), ErrUsage)
	assert.ErrorIs(t, f.cli.Run(ctx, "pull", []string{"doc-1", "bob"}), models.ErrInvalidCoordinate)

	failed := errors.New("transport failure")
	f.engine.PullFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error) {
		return &syncengine.Submission{Future: async.Rejected[any](failed), TaskID: "t-4"}, nil
	}
	err := f.cli.Run(ctx, "pull", []string{"doc-1", "bob/main"})
	assert.ErrorIs(t, err, failed)
	assert.Contains(t, err.Error(), "Pull failed")
}

// localCommits создает документ и возвращает его коммиты
func localCommits(t *testing.T, f *fixture, id string) []models.Commit {
	t.Helper()
	doc := models.NewDocument(map[string]any{"title": "local"})
	require.NoError(t, doc.SetID(id))
	saved, err := f.repo.Commit(context.Background(), models.DefaultBranch, doc, "create", "")
	require.NoError(t, err)
	return saved.GetCommits().All()
}

func TestCli_PushSendsPendingAndNotifies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	commits := localCommits(t, f, "doc-1")

	f.engine.PushFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, cs []models.Commit) (*syncengine.Submission, error) {
		return submitted("t-1", nil), nil
	}
	f.engine.NotifyDataFunc = func(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*syncengine.Submission, error) {
		return submitted("t-2", nil), nil
	}

	require.NoError(t, f.cli.Run(ctx, "push", []string{"doc-1", "bob/main"}))

	pushes := f.engine.PushCalls()
	require.Len(t, pushes, 1)
	require.Len(t, pushes[0].Commits, 1)
	assert.Equal(t, commits[0].ID, pushes[0].Commits[0].ID)
	assert.Contains(t, f.out.String(), "Pushing 1 commit(s) to bob/main/doc-1")

	notes := f.engine.NotifyDataCalls()
	require.Len(t, notes, 1)
	assert.Equal(t, "local://notifications", notes[0].QueueURL)
	var body notification
	require.NoError(t, json.Unmarshal(notes[0].Payload, &body))
	assert.Equal(t, "doc-1", body.ObjectID)
	assert.Equal(t, commits[0].ID, body.Head)
	assert.Contains(t, f.out.String(), "✓ Notify completed")
}

func TestCli_PushWaitsForNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	localCommits(t, f, "doc-1")

	f.engine.PushFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, cs []models.Commit) (*syncengine.Submission, error) {
		return submitted("t-1", nil), nil
	}
	var delivered atomic.Bool
	f.engine.NotifyDataFunc = func(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*syncengine.Submission, error) {
		note := async.NewFuture[any]()
		go func() {
			time.Sleep(20 * time.Millisecond)
			delivered.Store(true)
			note.Resolve(nil)
		}()
		return &syncengine.Submission{Future: note, TaskID: "t-2"}, nil
	}

	require.NoError(t, f.cli.Run(ctx, "push", []string{"doc-1", "bob/main"}))
	assert.True(t, delivered.Load(), "push returns only after the notification is sent")
	assert.Contains(t, f.out.String(), "✓ Notify completed")
}

func TestCli_PushNotificationFailureIsReported(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	localCommits(t, f, "doc-1")

	f.engine.PushFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, cs []models.Commit) (*syncengine.Submission, error) {
		return submitted("t-1", nil), nil
	}
	f.engine.NotifyDataFunc = func(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*syncengine.Submission, error) {
		return &syncengine.Submission{Future: async.Rejected[any](errors.New("queue unavailable")), TaskID: "t-2"}, nil
	}

	// коммиты уже отправлены, команда не падает
	require.NoError(t, f.cli.Run(ctx, "push", []string{"doc-1", "bob/main"}))
	assert.Contains(t, f.out.String(), "✓ Push completed")
	assert.Contains(t, f.out.String(), "Notify failed: queue unavailable")
}

func TestCli_PushNothingPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	commits := localCommits(t, f, "doc-1")

	remote := models.Coordinate{Owner: "bob", Branch: "main", ObjectID: "doc-1"}
	require.NoError(t, f.repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, "doc-1", commits, remote))

	require.NoError(t, f.cli.Run(ctx, "push", []string{"doc-1", "bob/main"}))
	assert.Contains(t, f.out.String(), "Nothing to push.")
	assert.Empty(t, f.engine.PushCalls())
}

func TestCli_PushOfflineOnlyQueues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	localCommits(t, f, "doc-1")

	never := async.NewFuture[any]()
	f.engine.PushFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, cs []models.Commit) (*syncengine.Submission, error) {
		return &syncengine.Submission{Future: never, TaskID: "t-1"}, nil
	}
	f.engine.NotifyDataFunc = func(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*syncengine.Submission, error) {
		return submitted("t-2", nil), nil
	}

	require.NoError(t, f.cli.Run(ctx, "push", []string{"doc-1", "bob/main"}))
	assert.Contains(t, f.out.String(), "Push queued (task t-1)")
}

func TestCli_HandleNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	f.engine.PullFunc = func(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error) {
		return submitted("t-1", nil), nil
	}

	msg := queue.Message{
		ID: "m-1",
		Attributes: map[string]string{
			syncengine.AttrOwner:    "bob",
			syncengine.AttrBranch:   "main",
			syncengine.AttrObjectID: "doc-1",
		},
	}
	require.NoError(t, f.cli.HandleNotification(ctx, msg))

	calls := f.engine.PullCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "bob/main/doc-1", calls[0].Remote.Key())

	err := f.cli.HandleNotification(ctx, queue.Message{ID: "m-2", Attributes: map[string]string{syncengine.AttrOwner: "bob"}})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
	assert.Len(t, f.engine.PullCalls(), 1)
}

func TestCli_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("online waits for idle", func(t *testing.T) {
		f := newFixture(t, true)
		f.engine.DeadLettersFunc = func() []models.SyncTask {
			return []models.SyncTask{{Type: models.TaskPushEntry, Queue: "bob/main/doc-1", LastError: "remote unavailable"}}
		}

		require.NoError(t, f.cli.Run(ctx, "sync", nil))
		assert.Len(t, f.engine.WaitIdleCalls(), 1)
		out := f.out.String()
		assert.Contains(t, out, "✓ Sync queue drained")
		assert.Contains(t, out, "Failed: 1 task(s)")
		assert.Contains(t, out, "bob/main/doc-1: remote unavailable")
	})

	t.Run("offline reports pending", func(t *testing.T) {
		f := newFixture(t, false)
		f.engine.PendingSyncFunc = func() int { return 3 }

		require.NoError(t, f.cli.Run(ctx, "sync", nil))
		assert.Empty(t, f.engine.WaitIdleCalls())
		assert.Contains(t, f.out.String(), "Pending: 3 task(s)")
	})
}

func TestCli_PullRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	commits := localCommits(t, f, "doc-1")
	pr, err := f.ledger.Add(ctx, models.DefaultBranch, "bob", "main", "doc-1", "", commits, commits[0].ID)
	require.NoError(t, err)

	require.NoError(t, f.cli.Run(ctx, "prs", nil))
	out := f.out.String()
	assert.Contains(t, out, pr.ID+" [pending]")
	assert.Contains(t, out, "Remote:  bob/main/doc-1")

	f.out.Reset()
	require.NoError(t, f.cli.Run(ctx, "prs", []string{"accept", pr.ID}))
	assert.Contains(t, f.out.String(), "is accepted")

	assert.ErrorIs(t, f.cli.Run(ctx, "prs", []string{"reject", pr.ID}), pullrequests.ErrInvalidTransition)
	assert.ErrorIs(t, f.cli.Run(ctx, "prs", []string{"merge", pr.ID}), ErrUsage)
}
