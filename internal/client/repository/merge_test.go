package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
)

// divergentSetup: на ветке X лежат коммиты A и B (B меняет name),
// параллельная ветка Y содержит A и C с изменениями y.
func divergentSetup(t *testing.T, y map[string]any) (Repository, string, []models.Commit) {
	t.Helper()
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	a := map[string]any{"name": "doc", "status": "new"}
	saved, err := repo.Commit(ctx, models.DefaultBranch, models.NewDocument(diff.CopyTree(a)), "A", "A")
	require.NoError(t, err)
	cA := saved.Meta.Commits[0]

	saved.Fields["name"] = "from-x"
	saved, err = repo.Commit(ctx, models.DefaultBranch, saved, "B", "B")
	require.NoError(t, err)
	require.Len(t, saved.Meta.Commits, 2)

	cC, err := models.NewCommit("C", diff.Compute(a, y), "C", "bob", cA.Timestamp+1, cA.Hash, models.SourceLocal)
	require.NoError(t, err)

	return repo, saved.ID, []models.Commit{cA, cC}
}

func TestMergeToBranch_DisjointFields(t *testing.T) {
	ctx := context.Background()
	repo, id, incoming := divergentSetup(t, map[string]any{"name": "doc", "status": "done"})

	candidate, report, err := repo.MergeToBranch(ctx, models.DefaultBranch, id, incoming, MergeOptions{Prefix: "pull"})
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)
	assert.Equal(t, []string{"C"}, report.Applied)
	assert.Equal(t, "C", report.Head)
	assert.Equal(t, "from-x", candidate.Fields["name"])
	assert.Equal(t, "done", candidate.Fields["status"])

	// MergeToBranch ничего не сохраняет
	stored, err := repo.Get(ctx, models.DefaultBranch, id)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Fields["status"])

	merged, err := repo.CommitMerge(ctx, models.DefaultBranch, candidate, report, MergeOptions{Prefix: "pull"})
	require.NoError(t, err)
	require.Len(t, merged.Meta.Commits, 3)
	last := merged.Meta.Commits[2]
	assert.Equal(t, models.SourceMerge, last.Source)
	assert.Equal(t, "pull merge C", last.Message)
	assert.Equal(t, "done", merged.Fields["status"])
	require.NoError(t, merged.Meta.Commits.Verify())
}

func TestMergeToBranch_SameField(t *testing.T) {
	ctx := context.Background()
	repo, id, incoming := divergentSetup(t, map[string]any{"name": "from-y", "status": "done"})

	candidate, report, err := repo.MergeToBranch(ctx, models.DefaultBranch, id, incoming, MergeOptions{})
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)

	conflict := report.Conflicts[0]
	assert.Equal(t, models.Path{"name"}, conflict.Path)
	assert.Equal(t, "from-x", conflict.Local)
	assert.Equal(t, "from-y", conflict.Incoming)
	assert.Equal(t, "from-x", candidate.Fields["name"])
	assert.Equal(t, "done", candidate.Fields["status"])

	preview, err := repo.GetMergeReport(ctx, models.DefaultBranch, id, incoming)
	require.NoError(t, err)
	assert.Equal(t, report.Conflicts, preview.Conflicts)
}

func TestMergeToBranch_TamperedChain(t *testing.T) {
	ctx := context.Background()
	repo, id, incoming := divergentSetup(t, map[string]any{"name": "doc", "status": "done"})

	incoming[1].Diff.Changes[0].New = "tampered"
	_, _, err := repo.MergeToBranch(ctx, models.DefaultBranch, id, incoming, MergeOptions{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommitMerge_Stale(t *testing.T) {
	ctx := context.Background()
	repo, id, incoming := divergentSetup(t, map[string]any{"name": "doc", "status": "done"})

	candidate, report, err := repo.MergeToBranch(ctx, models.DefaultBranch, id, incoming, MergeOptions{})
	require.NoError(t, err)

	// локальный коммит между вычислением и сохранением слияния
	current, err := repo.Get(ctx, models.DefaultBranch, id)
	require.NoError(t, err)
	current.Fields["extra"] = true
	_, err = repo.Commit(ctx, models.DefaultBranch, current, "concurrent", "")
	require.NoError(t, err)

	_, err = repo.CommitMerge(ctx, models.DefaultBranch, candidate, report, MergeOptions{})
	assert.ErrorIs(t, err, ErrStaleMerge)
}

func TestApplyPull_NewDocumentAndHeads(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	remoteTree := map[string]any{"title": "remote"}
	c1, err := models.NewCommit("r1", diff.Compute(map[string]any{}, remoteTree), "r1", "bob", 10, "", models.SourceLocal)
	require.NoError(t, err)
	next := map[string]any{"title": "remote", "tags": []any{"a"}}
	c2, err := models.NewCommit("r2", diff.Compute(remoteTree, next), "r2", "bob", 11, c1.Hash, models.SourceLocal)
	require.NoError(t, err)

	remote := models.Coordinate{Owner: testOwner, Branch: "shared", ObjectID: "obj-1"}
	opts := MergeOptions{Prefix: "pull", Remote: remote}

	doc, report, err := repo.ApplyPull(ctx, models.DefaultBranch, "obj-1", []models.Commit{c1, c2}, opts)
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)
	assert.Equal(t, "remote", doc.Fields["title"])
	assert.Equal(t, []any{"a"}, doc.Fields["tags"])
	require.Len(t, doc.Meta.Commits, 1)
	assert.Equal(t, "r2", doc.Meta.Pulls.GetPullInformation(remote))
	assert.Equal(t, doc.Meta.Commits.Head(), doc.Meta.Pulls.GetBase(remote))

	// повторная доставка тех же коммитов: pull-голова уже r2, ничего не добавляется
	again, report, err := repo.ApplyPull(ctx, models.DefaultBranch, "obj-1", []models.Commit{c1, c2}, opts)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Len(t, again.Meta.Commits, 1)

	// merge(base, []) ничего не меняет
	same, report, err := repo.ApplyPull(ctx, models.DefaultBranch, "obj-1", nil, opts)
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)
	assert.Len(t, same.Meta.Commits, 1)
	assert.Equal(t, "r2", same.Meta.Pulls.GetPullInformation(remote))
}

func TestApplyPull_ConflictPersistsNothing(t *testing.T) {
	ctx := context.Background()
	repo, id, incoming := divergentSetup(t, map[string]any{"name": "from-y", "status": "done"})

	_, report, err := repo.ApplyPull(ctx, models.DefaultBranch, id, incoming, MergeOptions{})
	require.NoError(t, err)
	require.True(t, report.HasConflicts())

	stored, err := repo.Get(ctx, models.DefaultBranch, id)
	require.NoError(t, err)
	assert.Len(t, stored.Meta.Commits, 2)
	assert.Equal(t, "new", stored.Fields["status"])
}

func TestConfirmMergeToBranch(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	saved, err := repo.Commit(ctx, models.DefaultBranch, models.NewDocument(map[string]any{"v": 1}), "one", "")
	require.NoError(t, err)
	saved.Fields["v"] = 2
	saved, err = repo.Commit(ctx, models.DefaultBranch, saved, "two", "")
	require.NoError(t, err)

	remote := models.Coordinate{Owner: "bob", Branch: models.DefaultBranch, ObjectID: saved.ID}

	// новая координата: все коммиты ожидают отправки
	pending, err := repo.PendingPush(ctx, models.DefaultBranch, saved.ID, remote)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, saved.ID, pending, remote))

	doc, err := repo.Get(ctx, models.DefaultBranch, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, pending[1].ID, doc.Meta.Pulls.GetPushInformation(remote))

	pending, err = repo.PendingPush(ctx, models.DefaultBranch, saved.ID, remote)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// повторное подтверждение и подтверждение более раннего коммита ничего не меняют
	all := doc.Meta.Commits.All()
	require.NoError(t, repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, saved.ID, all, remote))
	require.NoError(t, repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, saved.ID, all[:1], remote))

	doc, err = repo.Get(ctx, models.DefaultBranch, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, all[1].ID, doc.Meta.Pulls.GetPushInformation(remote))

	err = repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, saved.ID, []models.Commit{{ID: "unknown"}}, remote)
	assert.ErrorIs(t, err, ErrValidation)

	err = repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, "missing", all, remote)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.ConfirmMergeToBranch(ctx, models.DefaultBranch, saved.ID, all, models.Coordinate{})
	assert.ErrorIs(t, err, ErrValidation)
}
