package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

func setupTestDB(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func newDoc(id string, fields map[string]any) *models.Document {
	doc := models.NewDocument(fields)
	doc.ID = id
	doc.Meta.Owner = "alice"
	return doc
}

func TestNew_RunsMigrations(t *testing.T) {
	store := setupTestDB(t)

	var name string
	err := store.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'documents'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "documents", name)
}

func TestDocuments_UpsertGetDelete(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	_, err := store.GetDocument(ctx, "alice/master", "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	doc := newDoc("doc-1", map[string]any{"name": "first"})
	require.NoError(t, store.UpsertDocument(ctx, "alice/master", doc))

	got, err := store.GetDocument(ctx, "alice/master", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Fields["name"])
	assert.Equal(t, "alice", got.Meta.Owner)

	// Upsert заменяет существующий документ
	doc.Fields["name"] = "second"
	require.NoError(t, store.UpsertDocument(ctx, "alice/master", doc))
	got, err = store.GetDocument(ctx, "alice/master", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Fields["name"])

	// Коллекции изолированы
	_, err = store.GetDocument(ctx, "alice/feature", "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	require.NoError(t, store.DeleteDocument(ctx, "alice/master", "doc-1"))
	_, err = store.GetDocument(ctx, "alice/master", "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	assert.Error(t, store.UpsertDocument(ctx, "alice/master", models.NewDocument(nil)))
}

func TestDocuments_FindAndDrop(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	for i, name := range []string{"c", "a", "b"} {
		doc := newDoc(name, map[string]any{"name": name, "rank": float64(i)})
		require.NoError(t, store.UpsertDocument(ctx, "alice/master", doc))
	}
	require.NoError(t, store.UpsertDocument(ctx, "bob/master", newDoc("x", map[string]any{"name": "x"})))

	found, err := store.FindDocuments(ctx, "alice/master", query.Query{
		Filter:      query.Filter{"rank": map[string]any{"$gte": 1}},
		Sort:        []query.SortField{{Field: "name"}},
		Projections: []string{"name"},
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, map[string]any{"name": "a"}, found[0].Fields)
	assert.Equal(t, map[string]any{"name": "b"}, found[1].Fields)

	require.NoError(t, store.DropCollection(ctx, "alice/master"))
	found, err = store.FindDocuments(ctx, "alice/master", query.Query{})
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = store.FindDocuments(ctx, "bob/master", query.Query{})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
