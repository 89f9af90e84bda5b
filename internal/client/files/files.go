// Package files keeps folder and file documents and uploads file content in chunks.
package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/client/repository"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

var (
	// ErrInvalidName пустое имя файла или папки
	ErrInvalidName = errors.New("invalid file name")
	// ErrNotDirectory родитель не является папкой
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotFile документ не является файлом
	ErrNotFile = errors.New("not a file")
	// ErrUploadInProgress загрузка файла уже идет
	ErrUploadInProgress = errors.New("upload is already in progress")
	// ErrEmptyFile нечего загружать
	ErrEmptyFile = errors.New("file is empty")
)

// Type тип записи файловой системы.
type Type string

const (
	TypeDirectory Type = "directory"
	TypeFile      Type = "file"
)

// UploadStatus состояние загрузки содержимого файла.
type UploadStatus string

const (
	UploadNotStarted UploadStatus = "not_started"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
)

// ChunkSize размер куска при загрузке
const ChunkSize = 512 * 1024

// Поля документов файлов
const (
	FieldType         = "type"
	FieldName         = "name"
	FieldParentID     = "parent_id"
	FieldHash         = "hash"
	FieldModified     = "modified"
	FieldSize         = "size"
	FieldExt          = "ext"
	FieldUploadStatus = "upload_status"
	FieldChunkCount   = "chunk_count"
)

//go:generate moq -out uploader_mock.go . Uploader

// Uploader ставит задачи загрузки кусков и сборки файла.
type Uploader interface {
	ChunkForFile(ctx context.Context, localBranch string, remote models.Coordinate, fileID string, chunkNumber int, chunk []byte, checksum string) (*syncengine.Submission, error)
	MergeChunksForFile(ctx context.Context, localBranch string, remote models.Coordinate, fileID string, chunkCount int, checksum string) (*syncengine.Submission, error)
}

// Manager работает с папками и файлами одной ветки.
type Manager struct {
	repo      repository.Repository
	uploader  Uploader
	logger    *slog.Logger
	branch    string
	chunkSize int
}

// NewManager creates a file manager for branch
func NewManager(repo repository.Repository, uploader Uploader, branch string, logger *slog.Logger) *Manager {
	return &Manager{
		repo:      repo,
		uploader:  uploader,
		logger:    logger,
		branch:    branch,
		chunkSize: ChunkSize,
	}
}

// WithChunkSize sets the upload chunk size; non-positive values keep the default.
func (m *Manager) WithChunkSize(n int) *Manager {
	if n > 0 {
		m.chunkSize = n
	}
	return m
}

// NewFolder creates a folder document under parentID (empty for the root)
func (m *Manager) NewFolder(ctx context.Context, name, parentID string) (*models.Document, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := m.checkParent(ctx, parentID); err != nil {
		return nil, err
	}

	doc := models.NewDocument(map[string]any{
		FieldType:     string(TypeDirectory),
		FieldName:     name,
		FieldParentID: parentID,
	})
	saved, err := m.repo.Commit(ctx, m.branch, doc, "create folder "+name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	m.logger.Info("Folder created", "id", saved.ID, "name", name, "parent_id", parentID)
	return saved, nil
}

// NewFile creates a file document. fileID может быть пустым, тогда id назначается.
// uploaded отмечает файл, содержимое которого уже есть на удаленной стороне.
func (m *Manager) NewFile(ctx context.Context, name, fileID, hash string, modified time.Time, size int64, ext, parentID string, uploaded bool) (*models.Document, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := m.checkParent(ctx, parentID); err != nil {
		return nil, err
	}

	status := UploadNotStarted
	if uploaded {
		status = UploadCompleted
	}
	doc := models.NewDocument(map[string]any{
		FieldType:         string(TypeFile),
		FieldName:         name,
		FieldParentID:     parentID,
		FieldHash:         hash,
		FieldModified:     modified.UnixMilli(),
		FieldSize:         size,
		FieldExt:          ext,
		FieldUploadStatus: string(status),
	})
	if fileID != "" {
		if err := doc.SetID(fileID); err != nil {
			return nil, fmt.Errorf("%w: %w", repository.ErrValidation, err)
		}
	}

	saved, err := m.repo.Commit(ctx, m.branch, doc, "create file "+name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	m.logger.Info("File created", "id", saved.ID, "name", name, "size", size, "status", status)
	return saved, nil
}

// List returns entries of the folder parentID ordered by name
func (m *Manager) List(ctx context.Context, parentID string) ([]*models.Document, error) {
	docs, err := m.repo.Search(ctx, m.branch, query.Filter{FieldParentID: parentID}, nil, []query.SortField{{Field: FieldName}}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder: %w", err)
	}
	return docs, nil
}

// MarkCompleted sets the upload status of a file to completed
func (m *Manager) MarkCompleted(ctx context.Context, branch, fileID string) error {
	if branch == "" {
		branch = m.branch
	}
	if _, err := m.setStatus(ctx, branch, fileID, UploadCompleted, nil); err != nil {
		return err
	}
	m.logger.Info("Upload completed", "file_id", fileID)
	return nil
}

// Status returns the upload status of a file
func (m *Manager) Status(ctx context.Context, fileID string) (UploadStatus, error) {
	doc, err := m.file(ctx, m.branch, fileID)
	if err != nil {
		return "", err
	}
	return statusOf(doc), nil
}

func (m *Manager) checkParent(ctx context.Context, parentID string) error {
	if parentID == "" {
		return nil
	}
	parent, err := m.repo.Get(ctx, m.branch, parentID)
	if err != nil {
		return fmt.Errorf("failed to get parent folder: %w", err)
	}
	if parent.Fields[FieldType] != string(TypeDirectory) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, parentID)
	}
	return nil
}

func (m *Manager) file(ctx context.Context, branch, fileID string) (*models.Document, error) {
	doc, err := m.repo.Get(ctx, branch, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if doc.Fields[FieldType] != string(TypeFile) {
		return nil, fmt.Errorf("%w: %s", ErrNotFile, fileID)
	}
	return doc, nil
}

// setStatus меняет статус загрузки и дополнительные поля одним коммитом.
func (m *Manager) setStatus(ctx context.Context, branch, fileID string, status UploadStatus, extra map[string]any) (*models.Document, error) {
	doc, err := m.file(ctx, branch, fileID)
	if err != nil {
		return nil, err
	}
	doc.Fields[FieldUploadStatus] = string(status)
	for k, v := range extra {
		doc.Fields[k] = v
	}

	saved, err := m.repo.Commit(ctx, branch, doc, fmt.Sprintf("upload %s", status), "")
	if err != nil {
		return nil, fmt.Errorf("failed to update upload status: %w", err)
	}
	return saved, nil
}

func statusOf(doc *models.Document) UploadStatus {
	s, _ := doc.Fields[FieldUploadStatus].(string)
	if s == "" {
		return UploadNotStarted
	}
	return UploadStatus(s)
}
