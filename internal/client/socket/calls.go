package socket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/docsync/internal/async"
	"github.com/iudanet/docsync/pkg/api"
)

// invoke вызывает метод и декодирует результат в T.
func invoke[T any](ctx context.Context, c *Client, method string, params any) *async.Future[*T] {
	raw := c.call(ctx, method, params)
	return async.Go(ctx, func(ctx context.Context) (*T, error) {
		data, err := raw.Wait(ctx)
		if err != nil {
			return nil, err
		}
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode %s result: %w", method, err)
		}
		return &out, nil
	})
}

// PullAsync запрашивает коммиты удаленного объекта
func (c *Client) PullAsync(ctx context.Context, req api.PullRequest) *async.Future[*api.PullResponse] {
	return invoke[api.PullResponse](ctx, c, api.MethodPull, req)
}

// PushAsync отправляет локальные коммиты
func (c *Client) PushAsync(ctx context.Context, req api.PushRequest) *async.Future[*api.PushResponse] {
	return invoke[api.PushResponse](ctx, c, api.MethodPush, req)
}

// SearchAsync выполняет поиск в удаленной ветке
func (c *Client) SearchAsync(ctx context.Context, req api.SearchRequest) *async.Future[*api.SearchResponse] {
	return invoke[api.SearchResponse](ctx, c, api.MethodSearch, req)
}

// CreateBranchAsync создает удаленную ветку
func (c *Client) CreateBranchAsync(ctx context.Context, req api.CreateBranchRequest) *async.Future[*api.CreateBranchResponse] {
	return invoke[api.CreateBranchResponse](ctx, c, api.MethodCreateBranch, req)
}

// ChunkForFileAsync загружает кусок файла
func (c *Client) ChunkForFileAsync(ctx context.Context, req api.ChunkRequest) *async.Future[*api.ChunkResponse] {
	return invoke[api.ChunkResponse](ctx, c, api.MethodChunkForFile, req)
}

// MergeChunksForFileAsync собирает файл из кусков
func (c *Client) MergeChunksForFileAsync(ctx context.Context, req api.MergeChunksRequest) *async.Future[*api.MergeChunksResponse] {
	return invoke[api.MergeChunksResponse](ctx, c, api.MethodMergeChunksForFile, req)
}

// Pull implements transport.Transport.
func (c *Client) Pull(ctx context.Context, req api.PullRequest) (*api.PullResponse, error) {
	resp, err := c.PullAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("pull call failed: %w", err)
	}
	return resp, nil
}

// Push implements transport.Transport.
func (c *Client) Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error) {
	resp, err := c.PushAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("push call failed: %w", err)
	}
	return resp, nil
}

// Search implements transport.Transport.
func (c *Client) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	resp, err := c.SearchAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("search call failed: %w", err)
	}
	return resp, nil
}

// CreateBranch implements transport.Transport.
func (c *Client) CreateBranch(ctx context.Context, req api.CreateBranchRequest) (*api.CreateBranchResponse, error) {
	resp, err := c.CreateBranchAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("create branch call failed: %w", err)
	}
	return resp, nil
}

// ChunkForFile implements transport.Transport.
func (c *Client) ChunkForFile(ctx context.Context, req api.ChunkRequest) (*api.ChunkResponse, error) {
	resp, err := c.ChunkForFileAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("chunk call failed: %w", err)
	}
	return resp, nil
}

// MergeChunksForFile implements transport.Transport.
func (c *Client) MergeChunksForFile(ctx context.Context, req api.MergeChunksRequest) (*api.MergeChunksResponse, error) {
	resp, err := c.MergeChunksForFileAsync(ctx, req).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("merge chunks call failed: %w", err)
	}
	return resp, nil
}
