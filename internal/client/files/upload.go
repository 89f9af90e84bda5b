package files

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/iudanet/docsync/internal/crypto"
	"github.com/iudanet/docsync/internal/models"
)

// UploadResult итог постановки загрузки в очередь.
type UploadResult struct {
	FileID     string
	Checksum   string
	Size       int64
	ChunkCount int
}

// Upload читает r кусками по ChunkSize и ставит задачи загрузки кусков,
// затем одну задачу сборки на той же координате. Файл переходит в статус Processing.
func (m *Manager) Upload(ctx context.Context, fileID string, r io.Reader, remote models.Coordinate) (*UploadResult, error) {
	if err := remote.Validate(); err != nil {
		return nil, fmt.Errorf("invalid upload target: %w", err)
	}

	doc, err := m.file(ctx, m.branch, fileID)
	if err != nil {
		return nil, err
	}
	if statusOf(doc) == UploadProcessing {
		return nil, fmt.Errorf("%w: %s", ErrUploadInProgress, fileID)
	}

	hasher, err := crypto.NewFileHasher()
	if err != nil {
		return nil, err
	}
	if _, err := m.setStatus(ctx, m.branch, fileID, UploadProcessing, nil); err != nil {
		return nil, err
	}

	result, err := m.enqueue(ctx, fileID, io.TeeReader(r, hasher), remote, func() string {
		return hex.EncodeToString(hasher.Sum(nil))
	})
	if err != nil {
		// загрузку можно повторить
		if _, rerr := m.setStatus(ctx, m.branch, fileID, UploadNotStarted, nil); rerr != nil {
			m.logger.Warn("Failed to reset upload status", "file_id", fileID, "error", rerr)
		}
		return nil, err
	}

	if _, err := m.setStatus(ctx, m.branch, fileID, UploadProcessing, map[string]any{
		FieldHash:       result.Checksum,
		FieldSize:       result.Size,
		FieldChunkCount: result.ChunkCount,
	}); err != nil {
		return nil, err
	}

	m.logger.Info("Upload queued",
		"file_id", fileID,
		"chunks", result.ChunkCount,
		"size", result.Size,
		"remote", remote.Key(),
	)
	return result, nil
}

func (m *Manager) enqueue(ctx context.Context, fileID string, r io.Reader, remote models.Coordinate, checksum func() string) (*UploadResult, error) {
	result := &UploadResult{FileID: fileID}
	buf := make([]byte, m.chunkSize)

	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			if _, qerr := m.uploader.ChunkForFile(ctx, m.branch, remote, fileID, result.ChunkCount, chunk, crypto.ChunkChecksum(chunk)); qerr != nil {
				return nil, fmt.Errorf("failed to queue chunk %d: %w", result.ChunkCount, qerr)
			}
			result.ChunkCount++
			result.Size += int64(n)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file content: %w", err)
		}
	}

	if result.ChunkCount == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, fileID)
	}

	result.Checksum = checksum()
	if _, err := m.uploader.MergeChunksForFile(ctx, m.branch, remote, fileID, result.ChunkCount, result.Checksum); err != nil {
		return nil, fmt.Errorf("failed to queue merge: %w", err)
	}
	return result, nil
}
