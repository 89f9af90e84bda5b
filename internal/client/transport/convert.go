package transport

import (
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
	"github.com/iudanet/docsync/pkg/api"
)

var changeKinds = map[string]models.ChangeKind{
	models.ChangeAdded.String():    models.ChangeAdded,
	models.ChangeRemoved.String():  models.ChangeRemoved,
	models.ChangeModified.String(): models.ChangeModified,
}

var commitSources = map[string]models.CommitSource{
	models.SourceLocal.String(): models.SourceLocal,
	models.SourceMerge.String(): models.SourceMerge,
}

// CommitsToAPI converts commits to the wire form.
func CommitsToAPI(commits []models.Commit) []api.Commit {
	out := make([]api.Commit, 0, len(commits))
	for _, c := range commits {
		changes := make([]api.Change, 0, len(c.Diff.Changes))
		for _, ch := range c.Diff.Changes {
			changes = append(changes, api.Change{
				Path: append([]string(nil), ch.Path...),
				Kind: ch.Kind.String(),
				Old:  ch.Old,
				New:  ch.New,
			})
		}
		out = append(out, api.Commit{
			ID:         c.ID,
			Message:    c.Message,
			AuthorID:   c.AuthorID,
			Hash:       c.Hash,
			ParentHash: c.ParentHash,
			Source:     c.Source.String(),
			Changes:    changes,
			Timestamp:  c.Timestamp,
		})
	}
	return out
}

// CommitsFromAPI converts wire commits back to the model.
// Неизвестный вид изменения делает хеш коммита неверным, это ловит VerifyChain.
func CommitsFromAPI(commits []api.Commit) []models.Commit {
	out := make([]models.Commit, 0, len(commits))
	for _, c := range commits {
		diff := models.Diff{Changes: make([]models.Change, 0, len(c.Changes))}
		for _, ch := range c.Changes {
			diff.Changes = append(diff.Changes, models.Change{
				Path: models.Path(append([]string(nil), ch.Path...)),
				Kind: changeKinds[ch.Kind],
				Old:  ch.Old,
				New:  ch.New,
			})
		}
		source, ok := commitSources[c.Source]
		if !ok {
			source = models.SourceLocal
		}
		out = append(out, models.Commit{
			ID:         c.ID,
			Message:    c.Message,
			AuthorID:   c.AuthorID,
			Hash:       c.Hash,
			ParentHash: c.ParentHash,
			Source:     source,
			Diff:       diff,
			Timestamp:  c.Timestamp,
		})
	}
	return out
}

// PermissionsToAPI converts an ACL map to the wire form.
func PermissionsToAPI(perms map[string]models.Permission) map[string]api.Permission {
	if perms == nil {
		return nil
	}
	out := make(map[string]api.Permission, len(perms))
	for k, p := range perms {
		out[k] = api.Permission{Read: p.Read, Write: p.Write}
	}
	return out
}

func permissionsFromAPI(perms map[string]api.Permission) map[string]models.Permission {
	if perms == nil {
		return nil
	}
	out := make(map[string]models.Permission, len(perms))
	for k, p := range perms {
		out[k] = models.Permission{Read: p.Read, Write: p.Write}
	}
	return out
}

// SortToAPI converts sort keys.
func SortToAPI(sort []query.SortField) []api.SortField {
	if len(sort) == 0 {
		return nil
	}
	out := make([]api.SortField, 0, len(sort))
	for _, s := range sort {
		out = append(out, api.SortField{Field: s.Field, Desc: s.Desc})
	}
	return out
}

// DocumentsFromAPI converts search results to documents without commit logs.
func DocumentsFromAPI(docs []api.Document) []*models.Document {
	out := make([]*models.Document, 0, len(docs))
	for _, d := range docs {
		doc := models.NewDocument(d.Fields)
		doc.ID = d.ID
		doc.Meta.Owner = d.Owner
		doc.Meta.Users = permissionsFromAPI(d.Users)
		doc.Meta.Groups = permissionsFromAPI(d.Groups)
		out = append(out, doc)
	}
	return out
}

// PullRequestFor builds the pull request of a pull task.
func PullRequestFor(args models.TaskArgs) api.PullRequest {
	return api.PullRequest{
		Owner:    args.RemoteOwner,
		Branch:   args.RemoteBranch,
		ObjectID: args.RemoteObjectID,
		Start:    args.Start,
		End:      args.End,
	}
}

// PushRequestFor builds the push request of a push task.
func PushRequestFor(args models.TaskArgs) api.PushRequest {
	return api.PushRequest{
		Owner:    args.RemoteOwner,
		Branch:   args.RemoteBranch,
		ObjectID: args.RemoteObjectID,
		Commits:  CommitsToAPI(args.Commits),
	}
}

// SearchRequestFor builds the search request of a search task.
func SearchRequestFor(args models.TaskArgs) api.SearchRequest {
	return api.SearchRequest{
		Query:       args.Query,
		Owner:       args.RemoteOwner,
		Branch:      args.RemoteBranch,
		Reference:   args.Reference,
		Projections: args.Projections,
		Sort:        SortToAPI(args.Sort),
		Offset:      args.Offset,
		Limit:       args.Limit,
	}
}

// CreateBranchRequestFor builds the create-branch request.
func CreateBranchRequestFor(args models.TaskArgs) api.CreateBranchRequest {
	return api.CreateBranchRequest{
		Users:  PermissionsToAPI(args.Users),
		Groups: PermissionsToAPI(args.Groups),
		Owner:  args.RemoteOwner,
		Branch: args.RemoteBranch,
	}
}

// ChunkRequestFor builds the request uploading one file chunk.
func ChunkRequestFor(args models.TaskArgs) api.ChunkRequest {
	return api.ChunkRequest{
		Owner:       args.RemoteOwner,
		Branch:      args.RemoteBranch,
		FileID:      args.FileID,
		Checksum:    args.Checksum,
		Data:        args.Chunk,
		ChunkNumber: args.ChunkNumber,
	}
}

// MergeChunksRequestFor builds the request assembling an uploaded file.
func MergeChunksRequestFor(args models.TaskArgs) api.MergeChunksRequest {
	return api.MergeChunksRequest{
		Owner:      args.RemoteOwner,
		Branch:     args.RemoteBranch,
		FileID:     args.FileID,
		Checksum:   args.Checksum,
		ChunkCount: args.ChunkCount,
	}
}
