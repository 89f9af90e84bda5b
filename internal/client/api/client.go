// Package api implements the request/response transport over HTTP with OAuth2 authorization.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/pkg/api"
)

const (
	tokenPath              = "/api/v1/auth/token"
	pullPath               = "/api/v1/sync/pull"
	pushPath               = "/api/v1/sync/push"
	searchPath             = "/api/v1/sync/search"
	createBranchPath       = "/api/v1/branches"
	chunkForFilePath       = "/api/v1/files/chunks"
	mergeChunksForFilePath = "/api/v1/files/merge"
)

var _ transport.Transport = (*Client)(nil)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	logger       *slog.Logger
	baseClient   *http.Client // без авторизации, используется для получения токенов
	httpClient   *http.Client // с авторизацией после Connect
	tokens       oauth2.TokenSource
	baseURL      string
	clientID     string
	clientSecret string
	username     string
	mu           sync.RWMutex
}

// NewClient создает новый API клиент
func NewClient(baseURL, clientID, clientSecret string, logger *slog.Logger) *Client {
	return &Client{
		logger:       logger,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		baseClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// WithTimeout sets the timeout of a single HTTP request; non-positive values keep the default.
// Вызывается до Connect: авторизованный клиент копирует таймаут при подключении.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.baseClient.Timeout = d
	}
	return c
}

func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// tokenContext контекст для oauth2: базовый клиент и без отмены,
// потому что TokenSource хранит его для последующих обновлений.
func (c *Client) tokenContext(ctx context.Context) context.Context {
	return context.WithValue(context.WithoutCancel(ctx), oauth2.HTTPClient, c.baseClient)
}

// Connect получает токен: client credentials при пустом username, иначе password grant
func (c *Client) Connect(ctx context.Context, username, password string) (*oauth2.Token, error) {
	tctx := c.tokenContext(ctx)

	var (
		tok *oauth2.Token
		src oauth2.TokenSource
		err error
	)
	if username == "" {
		cc := &clientcredentials.Config{
			ClientID:     c.clientID,
			ClientSecret: c.clientSecret,
			TokenURL:     c.baseURL + tokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		src = cc.TokenSource(tctx)
		tok, err = src.Token()
	} else {
		conf := c.oauthConfig()
		tok, err = conf.PasswordCredentialsToken(tctx, username, password)
		if err == nil {
			src = conf.TokenSource(tctx, tok)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect failed: %w", tokenError(err))
	}

	c.install(tctx, username, src)
	c.logger.Info("Connected", "username", username, "expiry", tok.Expiry)
	return tok, nil
}

// Reconnect восстанавливает сессию из сохраненных токенов.
// При forceRefresh access token считается истекшим и сразу обменивается по refresh token.
func (c *Client) Reconnect(ctx context.Context, username, accessToken, refreshToken string, forceRefresh bool) (*oauth2.Token, error) {
	if accessToken == "" && refreshToken == "" {
		return nil, fmt.Errorf("reconnect failed: %w: no stored tokens", transport.ErrRejected)
	}

	tctx := c.tokenContext(ctx)
	tok := &oauth2.Token{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: "Bearer"}
	if forceRefresh {
		if refreshToken == "" {
			return nil, fmt.Errorf("reconnect failed: %w: no refresh token", transport.ErrRejected)
		}
		tok.Expiry = time.Unix(1, 0)
	}

	src := c.oauthConfig().TokenSource(tctx, tok)
	fresh, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("reconnect failed: %w", tokenError(err))
	}

	c.install(tctx, username, src)
	c.logger.Info("Reconnected", "username", username, "refreshed", forceRefresh)
	return fresh, nil
}

func (c *Client) install(ctx context.Context, username string, src oauth2.TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.username = username
	c.tokens = oauth2.ReuseTokenSource(nil, src)
	c.httpClient = oauth2.NewClient(ctx, c.tokens)
	c.httpClient.Timeout = c.baseClient.Timeout
	c.httpClient.CheckRedirect = c.baseClient.CheckRedirect
}

// Token returns the current (possibly refreshed) token.
func (c *Client) Token() (*oauth2.Token, error) {
	c.mu.RLock()
	src := c.tokens
	c.mu.RUnlock()

	if src == nil {
		return nil, transport.ErrNotConnected
	}
	return src.Token()
}

// Disconnect забывает токены.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tokens = nil
	c.httpClient = nil
	c.logger.Info("Disconnected", "username", c.username)
}

// State returns the connection state.
func (c *Client) State() transport.ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.httpClient == nil {
		return transport.StateDisconnected
	}
	return transport.StateConnected
}

// Pull получает коммиты удаленного объекта
func (c *Client) Pull(ctx context.Context, req api.PullRequest) (*api.PullResponse, error) {
	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodPost, pullPath, req, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет локальные коммиты
func (c *Client) Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, pushPath, req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// Search выполняет поиск в удаленной ветке
func (c *Client) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	var resp api.SearchResponse
	if err := c.doRequest(ctx, http.MethodPost, searchPath, req, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

// CreateBranch создает удаленную ветку
func (c *Client) CreateBranch(ctx context.Context, req api.CreateBranchRequest) (*api.CreateBranchResponse, error) {
	var resp api.CreateBranchResponse
	if err := c.doRequest(ctx, http.MethodPost, createBranchPath, req, &resp); err != nil {
		return nil, fmt.Errorf("create branch request failed: %w", err)
	}
	return &resp, nil
}

// ChunkForFile загружает кусок файла
func (c *Client) ChunkForFile(ctx context.Context, req api.ChunkRequest) (*api.ChunkResponse, error) {
	var resp api.ChunkResponse
	if err := c.doRequest(ctx, http.MethodPost, chunkForFilePath, req, &resp); err != nil {
		return nil, fmt.Errorf("chunk request failed: %w", err)
	}
	return &resp, nil
}

// MergeChunksForFile собирает файл из загруженных кусков
func (c *Client) MergeChunksForFile(ctx context.Context, req api.MergeChunksRequest) (*api.MergeChunksResponse, error) {
	var resp api.MergeChunksResponse
	if err := c.doRequest(ctx, http.MethodPost, mergeChunksForFilePath, req, &resp); err != nil {
		return nil, fmt.Errorf("merge chunks request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	c.mu.RLock()
	httpClient := c.httpClient
	c.mu.RUnlock()
	if httpClient == nil {
		return transport.ErrNotConnected
	}

	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", transport.ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", transport.ErrUnavailable, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%w: server error (%d): %s", transport.StatusError(resp.StatusCode), resp.StatusCode, errResp)
		}
		return fmt.Errorf("%w: request failed with status %d: %s", transport.StatusError(resp.StatusCode), resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// tokenError переводит ошибку token endpoint в ошибку транспорта.
func tokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return fmt.Errorf("%w: %w", transport.StatusError(re.Response.StatusCode), err)
	}
	return fmt.Errorf("%w: %w", transport.ErrUnavailable, err)
}
