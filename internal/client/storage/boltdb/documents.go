package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

// GetDocument returns a document of the collection by id
func (s *Storage) GetDocument(ctx context.Context, collection, id string) (*models.Document, error) {
	var doc *models.Document

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(collection))
		if bucket == nil {
			return storage.ErrDocumentNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// UpsertDocument stores or replaces a document keyed by its id
func (s *Storage) UpsertDocument(ctx context.Context, collection string, doc *models.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id is empty")
	}

	// Сериализуем документ в JSON
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(collectionBucket(collection))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put([]byte(doc.ID), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteDocument removes a document from the collection
func (s *Storage) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(collection))
		if bucket == nil {
			return nil
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		return nil
	})
}

// FindDocuments loads the collection and evaluates the query over document fields
func (s *Storage) FindDocuments(ctx context.Context, collection string, q query.Query) ([]*models.Document, error) {
	var docs []*models.Document

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(collection))
		if bucket == nil {
			// Нет bucket - пустая коллекция
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document %s: %w", k, err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	return storage.ApplyQuery(docs, q)
}

// DropCollection removes the collection bucket
func (s *Storage) DropCollection(ctx context.Context, collection string) error {
	return s.update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket(collectionBucket(collection))
		if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to drop collection: %w", err)
		}
		return nil
	})
}
