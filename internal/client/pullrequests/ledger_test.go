package pullrequests

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/models"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "prs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	l := NewLedger(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	tick := time.Unix(1700000000, 0)
	l.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return l
}

func chain(t *testing.T, ids ...string) []models.Commit {
	t.Helper()
	var out []models.Commit
	parent := ""
	for i, id := range ids {
		d := models.Diff{Changes: []models.Change{{Path: models.Path{"n"}, Kind: models.ChangeAdded, New: float64(i)}}}
		c, err := models.NewCommit(id, d, "", "bob", int64(i), parent, models.SourceLocal)
		require.NoError(t, err)
		out = append(out, c)
		parent = c.Hash
	}
	return out
}

func TestLedger_AddAndTransitions(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	commits := chain(t, "c1", "c2")

	pr, err := l.Add(ctx, "master", "bob", "master", "doc-1", "ref", commits, "c2")
	require.NoError(t, err)
	assert.Equal(t, models.PullRequestPending, pr.Status)
	assert.Equal(t, models.Coordinate{Owner: "bob", Branch: "master", ObjectID: "doc-1"}, pr.Remote)

	// копия коммитов не зависит от исходного среза
	commits[0].Message = "changed"
	got, err := l.Get(ctx, "master", pr.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Commits[0].Message)

	accepted, err := l.Accept(ctx, "master", pr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PullRequestAccepted, accepted.Status)
	assert.True(t, accepted.UpdatedAt.After(accepted.CreatedAt))
	assert.Equal(t, got.Commits, accepted.Commits)

	_, err = l.Reject(ctx, "master", pr.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = l.Accept(ctx, "master", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedger_List(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	first, err := l.Add(ctx, "master", "bob", "master", "doc-1", "", chain(t, "a"), "")
	require.NoError(t, err)
	second, err := l.Add(ctx, "master", "bob", "master", "doc-2", "", chain(t, "b"), "")
	require.NoError(t, err)
	_, err = l.Add(ctx, "feature", "bob", "master", "doc-3", "", chain(t, "c"), "")
	require.NoError(t, err)

	_, err = l.Reject(ctx, "master", first.ID)
	require.NoError(t, err)

	list, err := l.List(ctx, "master")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, models.PullRequestRejected, list[0].Status)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestLedger_AddValidation(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	commits := chain(t, "c1", "c2")

	tampered := chain(t, "c1", "c2")
	tampered[1].Diff.Changes[0].New = "x"

	tests := []struct {
		name    string
		branch  string
		owner   string
		remote  string
		objID   string
		commits []models.Commit
		head    string
	}{
		{name: "bad local branch", branch: "a/b", owner: "bob", remote: "master", objID: "doc", commits: commits},
		{name: "no remote owner", branch: "master", remote: "master", objID: "doc", commits: commits},
		{name: "no object", branch: "master", owner: "bob", remote: "master", commits: commits},
		{name: "no commits", branch: "master", owner: "bob", remote: "master", objID: "doc"},
		{name: "broken chain", branch: "master", owner: "bob", remote: "master", objID: "doc", commits: tampered},
		{name: "unknown head", branch: "master", owner: "bob", remote: "master", objID: "doc", commits: commits, head: "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Add(ctx, tt.branch, tt.owner, tt.remote, tt.objID, "", tt.commits, tt.head)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
