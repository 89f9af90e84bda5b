package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

//go:generate moq -out documentstore_mock.go . DocumentStore

// DocumentStore defines collection-scoped document persistence
type DocumentStore interface {
	// GetDocument returns a document by id
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, collection, id string) (*models.Document, error)

	// UpsertDocument stores or replaces a document keyed by its id
	UpsertDocument(ctx context.Context, collection string, doc *models.Document) error

	// DeleteDocument removes a document; missing document is not an error
	DeleteDocument(ctx context.Context, collection, id string) error

	// FindDocuments evaluates filter, sort, offset/limit and projection over Fields
	// Empty result is not an error
	FindDocuments(ctx context.Context, collection string, q query.Query) ([]*models.Document, error)

	// DropCollection removes all documents of the collection
	DropCollection(ctx context.Context, collection string) error
}

// ApplyQuery runs the query over loaded documents. Shared by store implementations.
func ApplyQuery(docs []*models.Document, q query.Query) ([]*models.Document, error) {
	found, err := query.Run(docs, func(d *models.Document) map[string]any { return d.Fields }, q)
	if err != nil {
		return nil, err
	}
	if len(q.Projections) > 0 {
		for _, d := range found {
			d.Fields = query.Project(d.Fields, q.Projections)
		}
	}
	return found, nil
}
