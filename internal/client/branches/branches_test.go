package branches

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

func newTestManager(t *testing.T, canceller TaskCanceller) (*Manager, *boltdb.Storage) {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "branches.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager("alice", store, store, store, store, canceller, logger), store
}

func TestManager_AddListCheckout(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, nil)

	assert.Equal(t, models.DefaultBranch, m.Current())

	_, err := m.Add(ctx, models.DefaultBranch)
	require.NoError(t, err)
	b, err := m.Add(ctx, "feature")
	require.NoError(t, err)
	assert.Equal(t, "alice/feature", b.Collection)
	assert.Equal(t, models.BranchLocal, b.Kind)

	_, err = m.Add(ctx, "feature")
	assert.ErrorIs(t, err, ErrBranchExists)

	_, err = m.Add(ctx, "bad/name")
	assert.ErrorIs(t, err, ErrInvalidBranchName)

	list, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = m.Checkout(ctx, "feature")
	require.NoError(t, err)
	assert.Equal(t, "feature", m.Current())

	_, err = m.Checkout(ctx, "missing")
	assert.ErrorIs(t, err, ErrBranchNotFound)
	assert.Equal(t, "feature", m.Current())
}

func TestManager_LoadRestoresCurrent(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t, nil)

	_, err := m.Add(ctx, "feature")
	require.NoError(t, err)
	_, err = m.Checkout(ctx, "feature")
	require.NoError(t, err)

	restored := NewManager("alice", store, store, store, store, nil, m.logger)
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, "feature", restored.Current())
}

func TestManager_SearchBranch(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, nil)

	_, err := m.SearchBranch(ctx, "feature")
	assert.ErrorIs(t, err, ErrBranchNotFound)

	_, err = m.Add(ctx, "feature")
	require.NoError(t, err)

	sb, err := m.SearchBranch(ctx, "feature")
	require.NoError(t, err)
	assert.Equal(t, "feature$search", sb.Name)
	assert.Equal(t, models.BranchSearch, sb.Kind)

	again, err := m.SearchBranch(ctx, "feature")
	require.NoError(t, err)
	assert.Equal(t, sb.Collection, again.Collection)
}

func TestManager_AddDuplicateKeepsDocuments(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t, nil)

	feature, err := m.Add(ctx, "feature")
	require.NoError(t, err)

	doc := models.NewDocument(map[string]any{"title": "draft"})
	doc.ID = "doc1"
	require.NoError(t, store.UpsertDocument(ctx, feature.Collection, doc))

	_, err = m.Add(ctx, "feature")
	assert.ErrorIs(t, err, ErrBranchExists)

	got, err := store.GetDocument(ctx, feature.Collection, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Fields["title"])

	// повторное создание ветки поиска тоже не очищает ее результаты
	sb, err := m.SearchBranch(ctx, "feature")
	require.NoError(t, err)
	hit := models.NewDocument(map[string]any{"score": 1})
	hit.ID = "hit1"
	require.NoError(t, store.UpsertDocument(ctx, sb.Collection, hit))

	_, err = m.AddWithKind(ctx, sb.Name, models.BranchSearch)
	assert.ErrorIs(t, err, ErrBranchExists)

	_, err = store.GetDocument(ctx, sb.Collection, "hit1")
	require.NoError(t, err)
}

func TestManager_DeleteCancelsTasksFirst(t *testing.T) {
	ctx := context.Background()

	var order []string
	canceller := &TaskCancellerMock{
		CancelBranchFunc: func(ctx context.Context, branch string) (int, error) {
			order = append(order, "cancel:"+branch)
			return 1, nil
		},
	}
	m, store := newTestManager(t, canceller)

	_, err := m.Add(ctx, "feature")
	require.NoError(t, err)
	_, err = m.SearchBranch(ctx, "feature")
	require.NoError(t, err)

	doc := models.NewDocument(map[string]any{"a": 1})
	doc.ID = "doc-1"
	require.NoError(t, store.UpsertDocument(ctx, "alice/feature", doc))
	require.NoError(t, store.SavePullRequest(ctx, &models.PullRequest{ID: "pr", LocalBranch: "feature"}))

	require.NoError(t, m.Delete(ctx, "feature"))
	assert.Equal(t, []string{"cancel:feature", "cancel:feature$search"}, order)

	list, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	docs, err := store.FindDocuments(ctx, "alice/feature", query.Query{})
	require.NoError(t, err)
	assert.Empty(t, docs)

	prs, err := store.ListPullRequests(ctx, "feature")
	require.NoError(t, err)
	assert.Empty(t, prs)

	// пересоздание ветки начинает с пустой коллекции
	_, err = m.Add(ctx, "feature")
	require.NoError(t, err)
	docs, err = store.FindDocuments(ctx, "alice/feature", query.Query{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestManager_DeleteErrors(t *testing.T) {
	ctx := context.Background()
	failing := errors.New("engine stopped")
	canceller := &TaskCancellerMock{
		CancelBranchFunc: func(ctx context.Context, branch string) (int, error) {
			return 0, failing
		},
	}
	m, _ := newTestManager(t, canceller)

	assert.ErrorIs(t, m.Delete(ctx, models.DefaultBranch), ErrBranchCheckedOut)
	assert.ErrorIs(t, m.Delete(ctx, "missing"), ErrBranchNotFound)

	_, err := m.Add(ctx, "feature")
	require.NoError(t, err)
	assert.ErrorIs(t, m.Delete(ctx, "feature"), failing)

	// ветка не удалена, если задачи не отменены
	list, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
