// Package transport describes the remote surface the sync engine talks to.
package transport

import (
	"context"
	"errors"

	"github.com/iudanet/docsync/pkg/api"
)

// Transport errors
var (
	// ErrRejected удаленная сторона отклонила запрос (4xx); повтор не поможет
	ErrRejected = errors.New("request rejected by remote")

	// ErrUnavailable удаленная сторона недоступна или ответила ошибкой сервера
	ErrUnavailable = errors.New("remote unavailable")

	// ErrNotConnected вызов до Connect или после Disconnect
	ErrNotConnected = errors.New("transport is not connected")
)

//go:generate moq -out transport_mock.go . Transport

// Transport удаленные вызовы, которые выполняет движок синхронизации.
// Реализации: socket.Client (websocket RPC) и api.Client (HTTP).
type Transport interface {
	Pull(ctx context.Context, req api.PullRequest) (*api.PullResponse, error)
	Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error)
	Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error)
	CreateBranch(ctx context.Context, req api.CreateBranchRequest) (*api.CreateBranchResponse, error)
	ChunkForFile(ctx context.Context, req api.ChunkRequest) (*api.ChunkResponse, error)
	MergeChunksForFile(ctx context.Context, req api.MergeChunksRequest) (*api.MergeChunksResponse, error)
}

// ConnectionState состояние соединения транспорта.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnected
)

// String returns the name of the state.
func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// StatusError maps a remote status code onto ErrRejected or ErrUnavailable.
func StatusError(code int) error {
	if api.Retryable(code) {
		return ErrUnavailable
	}
	return ErrRejected
}
