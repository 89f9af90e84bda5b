package search

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/branches"
	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

type fixture struct {
	repo    repository.Repository
	service *Service
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "search.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewRepository("alice", repository.Deps{
		Documents: store,
		Branches:  store,
		Metadata:  store,
	}, logger)
	require.NoError(t, repo.Setup(ctx))

	manager := branches.NewManager("alice", store, store, store, store, nil, logger)

	f := &fixture{repo: repo, now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	f.service = NewService(repo, manager, logger)
	f.service.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) commit(t *testing.T, id string, fields map[string]any) {
	t.Helper()
	doc := models.NewDocument(fields)
	require.NoError(t, doc.SetID(id))
	_, err := f.repo.Commit(context.Background(), models.DefaultBranch, doc, "add "+id, "")
	require.NoError(t, err)
}

func TestGetSearchEntry_StoresResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.commit(t, "b1", map[string]any{"kind": "book", "title": "Dune"})
	f.commit(t, "b2", map[string]any{"kind": "book", "title": "Emma"})
	f.commit(t, "f1", map[string]any{"kind": "film", "title": "Heat"})

	filter := query.Filter{"kind": "book"}
	sort := []query.SortField{{Field: "title"}}
	entry, err := f.service.GetSearchEntry(ctx, models.DefaultBranch, "books", filter, time.Minute, nil, sort, 0, 0)
	require.NoError(t, err)

	assert.False(t, entry.Cached)
	assert.Equal(t, 2, entry.Total)
	assert.Equal(t, SourceLocal, entry.Source)
	require.Len(t, entry.Results, 2)
	assert.Equal(t, "b1", entry.Results[0]["id"])
	assert.Equal(t, "Emma", entry.Results[1]["title"])

	// запись лежит в ветке поиска под id ссылки
	stored, err := f.repo.Get(ctx, models.SearchBranchName(models.DefaultBranch), "books")
	require.NoError(t, err)
	assert.Equal(t, "books", stored.Fields[fieldReference])
	assert.Len(t, stored.Meta.Commits, 1)
}

func TestGetSearchEntry_FreshEntryIsCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.commit(t, "b1", map[string]any{"kind": "book"})

	filter := query.Filter{"kind": "book"}
	_, err := f.service.GetSearchEntry(ctx, models.DefaultBranch, "books", filter, time.Minute, nil, nil, 0, 0)
	require.NoError(t, err)

	f.commit(t, "b2", map[string]any{"kind": "book"})
	f.now = f.now.Add(30 * time.Second)

	entry, err := f.service.GetSearchEntry(ctx, models.DefaultBranch, "books", filter, time.Minute, nil, nil, 0, 0)
	require.NoError(t, err)
	assert.True(t, entry.Cached)
	assert.Equal(t, 1, entry.Total)
	assert.Equal(t, query.Filter{"kind": "book"}, entry.Query)

	// после refreshTime запрос выполняется заново
	f.now = f.now.Add(time.Minute)
	entry, err = f.service.GetSearchEntry(ctx, models.DefaultBranch, "books", filter, time.Minute, nil, nil, 0, 0)
	require.NoError(t, err)
	assert.False(t, entry.Cached)
	assert.Equal(t, 2, entry.Total)

	stored, err := f.repo.Get(ctx, models.SearchBranchName(models.DefaultBranch), "books")
	require.NoError(t, err)
	assert.Len(t, stored.Meta.Commits, 2)
}

func TestGetSearchEntry_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.GetSearchEntry(ctx, models.DefaultBranch, "", nil, 0, nil, nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = f.service.GetSearchEntry(ctx, "missing", "ref", nil, 0, nil, nil, 0, 0)
	assert.ErrorIs(t, err, branches.ErrBranchNotFound)
}

func TestStoreRemoteResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.commit(t, "b1", map[string]any{"kind": "book", "title": "Dune"})

	_, err := f.service.GetSearchEntry(ctx, models.DefaultBranch, "books", query.Filter{"kind": "book"}, 0, nil, nil, 0, 0)
	require.NoError(t, err)

	remote := []*models.Document{
		{ID: "b1", Fields: map[string]any{"kind": "book", "title": "Dune (2nd ed.)"}},
		{ID: "r9", Fields: map[string]any{"kind": "book", "title": "Remote"}},
	}
	entry, err := f.service.StoreRemoteResults(ctx, models.DefaultBranch, "books", nil, remote)
	require.NoError(t, err)

	assert.Equal(t, SourceRemote, entry.Source)
	assert.Equal(t, 2, entry.Total)
	require.Len(t, entry.Results, 2)
	assert.Equal(t, "Dune (2nd ed.)", entry.Results[0]["title"])
	assert.Equal(t, "r9", entry.Results[1]["id"])
	assert.Equal(t, query.Filter{"kind": "book"}, entry.Query)
}

func TestMergeSearchResults(t *testing.T) {
	base := []map[string]any{
		{"id": "a", "v": 1},
		{"id": "b", "v": 2},
		{"v": 3},
	}
	draft := []map[string]any{
		{"id": "b", "v": 20},
		{"id": "c", "v": 30},
		{"v": 40},
	}

	got := MergeSearchResults(base, draft)
	assert.Equal(t, []map[string]any{
		{"id": "a", "v": 1},
		{"id": "b", "v": 20},
		{"v": 3},
		{"id": "c", "v": 30},
		{"v": 40},
	}, got)

	// base не изменяется
	assert.Equal(t, 2, base[1]["v"])
}

func TestMergeSearchResultsForIDs(t *testing.T) {
	base := []map[string]any{
		{"owner": "alice", "name": "x", "v": 1},
		{"owner": "bob", "name": "x", "v": 2},
	}
	draft := []map[string]any{
		{"owner": "bob", "name": "x", "v": 3},
		{"owner": "bob", "name": "y", "v": 4},
	}

	got := MergeSearchResultsForIDs(base, draft, []string{"owner", "name"})
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0]["v"])
	assert.Equal(t, 3, got[1]["v"])
	assert.Equal(t, 4, got[2]["v"])

	// без ключей строки только добавляются
	assert.Len(t, MergeSearchResultsForIDs(base, draft, nil), 4)
	// одинаковые значения разных типов не совпадают
	assert.Len(t, MergeSearchResults([]map[string]any{{"id": 1}}, []map[string]any{{"id": "1"}}), 2)
}
