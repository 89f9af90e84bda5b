// Package socket implements the remote transport as JSON RPC frames over a websocket.
package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/docsync/internal/async"
	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/pkg/api"
)

// OwnerHeader заголовок с владельцем сессии при установке соединения
const OwnerHeader = "X-Docsync-Owner"

const defaultWriteTimeout = 10 * time.Second

var _ transport.Transport = (*Client)(nil)

// Client RPC клиент поверх websocket. Ответы сопоставляются с запросами по id,
// поэтому вызовы могут выполняться параллельно.
type Client struct {
	logger       *slog.Logger
	dialer       *websocket.Dialer
	conn         *websocket.Conn
	pending      map[string]*async.Future[json.RawMessage]
	stateCh      chan struct{} // закрывается и заменяется при каждой смене состояния
	readDone     chan struct{}
	url          string
	writeTimeout time.Duration
	nextID       atomic.Uint64
	state        transport.ConnectionState
	mu           sync.Mutex
	writeMu      sync.Mutex
}

// NewClient creates a disconnected client for the websocket endpoint url.
func NewClient(url string, logger *slog.Logger) *Client {
	return &Client{
		logger:       logger,
		dialer:       &websocket.Dialer{HandshakeTimeout: 30 * time.Second},
		pending:      make(map[string]*async.Future[json.RawMessage]),
		stateCh:      make(chan struct{}),
		url:          url,
		writeTimeout: defaultWriteTimeout,
		state:        transport.StateDisconnected,
	}
}

// Connect устанавливает соединение от имени owner с access token.
// Повторный Connect при активном соединении ничего не делает.
// Рукопожатие идет без c.mu, чтобы State и ожидающие вызовы не блокировались на время dial.
func (c *Client) Connect(ctx context.Context, owner, token string) error {
	if c.State() == transport.StateConnected {
		return nil
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set(OwnerHeader, owner)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("failed to connect (%d): %w: %w", resp.StatusCode, transport.StatusError(resp.StatusCode), err)
		}
		return fmt.Errorf("failed to connect: %w: %w", transport.ErrUnavailable, err)
	}

	c.mu.Lock()
	if c.state == transport.StateConnected {
		// параллельный Connect успел первым
		c.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	c.conn = conn
	c.readDone = make(chan struct{})
	c.setStateLocked(transport.StateConnected)
	go c.readLoop(conn, c.readDone)
	c.mu.Unlock()

	c.logger.Info("Socket connected", "url", c.url, "owner", owner)
	return nil
}

// Disconnect закрывает соединение и отклоняет незавершенные вызовы.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	conn := c.conn
	done := c.readDone
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.writeTimeout))
	c.writeMu.Unlock()

	err := conn.Close()
	<-done
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// State returns the current connection state.
func (c *Client) State() transport.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// WaitConnected blocks until the client is connected or ctx is done.
func (c *Client) WaitConnected(ctx context.Context) error {
	return c.waitState(ctx, transport.StateConnected)
}

// WaitDisconnected blocks until the client is disconnected or ctx is done.
func (c *Client) WaitDisconnected(ctx context.Context) error {
	return c.waitState(ctx, transport.StateDisconnected)
}

func (c *Client) waitState(ctx context.Context, want transport.ConnectionState) error {
	for {
		c.mu.Lock()
		if c.state == want {
			c.mu.Unlock()
			return nil
		}
		ch := c.stateCh
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Client) setStateLocked(s transport.ConnectionState) {
	if c.state == s {
		return
	}
	c.state = s
	close(c.stateCh)
	c.stateCh = make(chan struct{})
}

// readLoop читает ответы до ошибки чтения, затем переводит клиент в Disconnected.
func (c *Client) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		var resp api.RPCResponse
		if err := conn.ReadJSON(&resp); err != nil {
			c.connectionLost(conn, err)
			return
		}

		c.mu.Lock()
		f, ok := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("Dropping response for unknown call", "id", resp.ID)
			continue
		}
		if resp.Error != nil {
			f.Reject(fmt.Errorf("%w: %w", transport.StatusError(resp.Error.Code), resp.Error))
			continue
		}
		f.Resolve(resp.Result)
	}
}

func (c *Client) connectionLost(conn *websocket.Conn, cause error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[string]*async.Future[json.RawMessage])
	if c.conn == conn {
		c.conn = nil
		c.setStateLocked(transport.StateDisconnected)
	}
	c.mu.Unlock()

	_ = conn.Close()

	if websocket.IsCloseError(cause, websocket.CloseNormalClosure) || errors.Is(cause, net.ErrClosed) {
		c.logger.Info("Socket disconnected", "url", c.url)
	} else {
		c.logger.Warn("Socket connection lost", "url", c.url, "error", cause)
	}

	for id, f := range pending {
		f.Reject(fmt.Errorf("%w: connection closed before response to %s", transport.ErrUnavailable, id))
	}
}

// call отправляет запрос и возвращает future с сырым результатом.
// Отмена ctx до ответа отклоняет future как ошибку транспорта.
func (c *Client) call(ctx context.Context, method string, params any) *async.Future[json.RawMessage] {
	raw, err := json.Marshal(params)
	if err != nil {
		return async.Rejected[json.RawMessage](fmt.Errorf("failed to marshal params: %w", err))
	}

	id := strconv.FormatUint(c.nextID.Add(1), 10)
	f := async.NewFuture[json.RawMessage]()

	c.mu.Lock()
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()
		return async.Rejected[json.RawMessage](transport.ErrNotConnected)
	}
	c.pending[id] = f
	c.mu.Unlock()

	c.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	err = conn.WriteJSON(api.RPCRequest{ID: id, Method: method, Params: raw})
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		f.Reject(fmt.Errorf("%w: failed to write request: %w", transport.ErrUnavailable, err))
		return f
	}

	c.logger.Debug("RPC call sent", "id", id, "method", method)

	go func() {
		select {
		case <-f.Done():
		case <-ctx.Done():
			c.forget(id)
			f.Reject(fmt.Errorf("%w: %s call: %w", transport.ErrUnavailable, method, ctx.Err()))
		}
	}()
	return f
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
