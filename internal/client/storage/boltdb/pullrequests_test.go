package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

func newPullRequest(id, branch string, created time.Time) *models.PullRequest {
	return &models.PullRequest{
		CreatedAt:   created,
		UpdatedAt:   created,
		ID:          id,
		LocalBranch: branch,
		Head:        "c2",
		Remote:      models.Coordinate{Owner: "bob", Branch: "master", ObjectID: "doc-1"},
		Commits:     []models.Commit{{ID: "c1", Hash: "h1"}, {ID: "c2", ParentHash: "h1", Hash: "h2"}},
		Status:      models.PullRequestPending,
	}
}

func TestPullRequests_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetPullRequest(ctx, "master", "pr-1")
	assert.ErrorIs(t, err, storage.ErrPullRequestNotFound)

	pr := newPullRequest("pr-1", "master", time.Unix(100, 0).UTC())
	require.NoError(t, store.SavePullRequest(ctx, pr))

	got, err := store.GetPullRequest(ctx, "master", "pr-1")
	require.NoError(t, err)
	assert.Equal(t, pr, got)

	// Обновление статуса перезаписывает запись
	pr.Status = models.PullRequestAccepted
	require.NoError(t, store.SavePullRequest(ctx, pr))
	got, err = store.GetPullRequest(ctx, "master", "pr-1")
	require.NoError(t, err)
	assert.Equal(t, models.PullRequestAccepted, got.Status)

	_, err = store.GetPullRequest(ctx, "feature", "pr-1")
	assert.ErrorIs(t, err, storage.ErrPullRequestNotFound)
}

func TestPullRequests_ListDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SavePullRequest(ctx, newPullRequest("b", "master", time.Unix(300, 0).UTC())))
	require.NoError(t, store.SavePullRequest(ctx, newPullRequest("a", "master", time.Unix(200, 0).UTC())))
	require.NoError(t, store.SavePullRequest(ctx, newPullRequest("c", "master", time.Unix(200, 0).UTC())))
	require.NoError(t, store.SavePullRequest(ctx, newPullRequest("x", "feature", time.Unix(100, 0).UTC())))

	list, err := store.ListPullRequests(ctx, "master")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "b", list[2].ID)

	require.NoError(t, store.DeletePullRequests(ctx, "master"))
	list, err = store.ListPullRequests(ctx, "master")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Удаление для ветки без записей не ошибка
	require.NoError(t, store.DeletePullRequests(ctx, "master"))

	list, err = store.ListPullRequests(ctx, "feature")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
