package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/branches"
	"github.com/iudanet/docsync/internal/client/pullrequests"
	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/client/search"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
	"github.com/iudanet/docsync/pkg/api"
)

func newTestRepository(t *testing.T) (repository.Repository, *boltdb.Storage) {
	t.Helper()
	store := newTestStore(t)
	repo := repository.NewRepository("alice", repository.Deps{
		Documents: store,
		Branches:  store,
		Metadata:  store,
	}, testLogger())
	require.NoError(t, repo.Setup(context.Background()))
	return repo, store
}

type fileMarker struct {
	branch string
	fileID string
}

func (f *fileMarker) MarkCompleted(_ context.Context, branch, fileID string) error {
	f.branch, f.fileID = branch, fileID
	return nil
}

func TestPushThenConfirmSetsPushHead(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	doc, err := repo.Commit(ctx, models.DefaultBranch, models.NewDocument(map[string]any{"name": "a"}), "one", "")
	require.NoError(t, err)
	doc.Fields["name"] = "b"
	doc, err = repo.Commit(ctx, models.DefaultBranch, doc, "two", "")
	require.NoError(t, err)

	remote := models.Coordinate{Owner: "bob", Branch: "shared", ObjectID: doc.ID}
	commits, err := repo.PendingPush(ctx, models.DefaultBranch, doc.ID, remote)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	tr := &transport.TransportMock{
		PushFunc: func(ctx context.Context, req api.PushRequest) (*api.PushResponse, error) {
			// удаленного объекта еще нет
			return &api.PushResponse{Head: req.Commits[len(req.Commits)-1].ID, Created: true}, nil
		},
	}
	rec := &recorder{}
	e := NewEngine(tr, store, NewRepositoryApplier(repo, testLogger()), rec.callback, testConfig(), testLogger())

	_, err = e.Push(ctx, models.DefaultBranch, remote, commits)
	require.NoError(t, err)
	startEngine(t, e)
	waitIdle(t, e)

	calls := rec.all()
	require.Len(t, calls, 1)
	require.NoError(t, calls[0].err)
	assert.True(t, calls[0].response.(*api.PushResponse).Created)

	stored, err := repo.Get(ctx, models.DefaultBranch, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, commits[1].ID, stored.Meta.Pulls.GetPushInformation(remote))

	pending, err := repo.PendingPush(ctx, models.DefaultBranch, doc.ID, remote)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRepositoryApplier_Pull(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	applier := NewRepositoryApplier(repo, testLogger())

	a := map[string]any{"name": "remote", "n": 1.0}
	cA, err := models.NewCommit("A", diff.Compute(map[string]any{}, a), "A", "bob", 10, "", models.SourceLocal)
	require.NoError(t, err)

	task := models.SyncTask{
		Type: models.TaskPullEntry,
		Args: models.TaskArgs{LocalBranch: models.DefaultBranch, RemoteOwner: "bob", RemoteBranch: "shared", RemoteObjectID: "doc-1"},
	}
	resp := &api.PullResponse{Commits: transport.CommitsToAPI([]models.Commit{cA}), Head: "A"}
	require.NoError(t, applier.Apply(ctx, task, resp))

	stored, err := repo.Get(ctx, models.DefaultBranch, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "remote", stored.Fields["name"])
	remote := task.Args.Coordinate(task.Type)
	assert.Equal(t, "A", stored.Meta.Pulls.GetPullInformation(remote))

	// пустой ответ ничего не меняет
	require.NoError(t, applier.Apply(ctx, task, &api.PullResponse{}))
}

func TestRepositoryApplier_PullConflictGoesToLedger(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)
	ledger := pullrequests.NewLedger(store, testLogger())
	applier := NewRepositoryApplier(repo, testLogger()).WithLedger(ledger)

	a := map[string]any{"name": "doc"}
	saved, err := repo.Commit(ctx, models.DefaultBranch, models.NewDocument(diff.CopyTree(a)), "A", "A")
	require.NoError(t, err)
	cA := saved.Meta.Commits[0]
	saved.Fields["name"] = "local"
	_, err = repo.Commit(ctx, models.DefaultBranch, saved, "B", "B")
	require.NoError(t, err)

	cC, err := models.NewCommit("C", diff.Compute(a, map[string]any{"name": "remote"}), "C", "bob", cA.Timestamp+1, cA.Hash, models.SourceLocal)
	require.NoError(t, err)

	task := models.SyncTask{
		Type: models.TaskPullEntry,
		Args: models.TaskArgs{
			LocalBranch:    models.DefaultBranch,
			RemoteOwner:    "bob",
			RemoteBranch:   "shared",
			RemoteObjectID: saved.ID,
			Reference:      "review-1",
		},
	}
	resp := &api.PullResponse{Commits: transport.CommitsToAPI([]models.Commit{cA, cC})}
	require.NoError(t, applier.Apply(ctx, task, resp))

	// конфликт: документ не изменен
	stored, err := repo.Get(ctx, models.DefaultBranch, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "local", stored.Fields["name"])

	prs, err := ledger.List(ctx, models.DefaultBranch)
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, "review-1", prs[0].Reference)
	assert.Equal(t, "C", prs[0].Head)
	assert.Len(t, prs[0].Commits, 2)
	assert.Equal(t, models.PullRequestPending, prs[0].Status)
}

func TestRepositoryApplier_Search(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)
	manager := branches.NewManager("alice", store, store, store, store, nil, testLogger())
	searches := search.NewService(repo, manager, testLogger())
	applier := NewRepositoryApplier(repo, testLogger()).WithSearch(searches)

	task := models.SyncTask{
		Type: models.TaskSearchEntry,
		Args: models.TaskArgs{
			LocalBranch:  models.DefaultBranch,
			RemoteOwner:  "bob",
			RemoteBranch: "shared",
			Reference:    "books",
			Query:        query.Filter{"kind": "book"},
		},
	}
	resp := &api.SearchResponse{
		Documents: []api.Document{{ID: "r1", Fields: map[string]any{"kind": "book"}}},
		Total:     1,
	}
	require.NoError(t, applier.Apply(ctx, task, resp))

	stored, err := repo.Get(ctx, models.SearchBranchName(models.DefaultBranch), "books")
	require.NoError(t, err)
	assert.Equal(t, search.SourceRemote, stored.Fields["source"])
	rows, ok := stored.Fields["results"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].(map[string]any)["id"])
}

func TestRepositoryApplier_MergeFileChunk(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	marker := &fileMarker{}
	applier := NewRepositoryApplier(repo, testLogger()).WithFiles(marker)

	task := models.SyncTask{
		Type: models.TaskMergeFileChunk,
		Args: models.TaskArgs{LocalBranch: "main", RemoteOwner: "bob", RemoteBranch: "shared", FileID: "f1", ChunkCount: 2},
	}
	require.NoError(t, applier.Apply(ctx, task, &api.MergeChunksResponse{FileID: "f1"}))
	assert.Equal(t, "main", marker.branch)
	assert.Equal(t, "f1", marker.fileID)

	// куски файла ничего не применяют
	chunk := models.SyncTask{Type: models.TaskPostFileChunk, Args: task.Args}
	require.NoError(t, applier.Apply(ctx, chunk, &api.ChunkResponse{}))
}

func TestRepositoryApplier_UnexpectedResponse(t *testing.T) {
	repo, _ := newTestRepository(t)
	applier := NewRepositoryApplier(repo, testLogger())

	for _, tt := range []models.TaskType{models.TaskPullEntry, models.TaskPushEntry, models.TaskSearchEntry, models.TaskMergeFileChunk} {
		err := applier.Apply(context.Background(), models.SyncTask{Type: tt}, &api.ChunkResponse{})
		assert.ErrorIs(t, err, ErrUnexpectedResponse, tt.String())
	}
}
