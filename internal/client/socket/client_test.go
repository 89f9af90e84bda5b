package socket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// rpcServer отвечает на кадры RPC; search остается без ответа, а close закрывает соединение
func rpcServer(t *testing.T) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "alice", r.Header.Get(OwnerHeader))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		for {
			var req api.RPCRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			resp := api.RPCResponse{ID: req.ID}
			switch req.Method {
			case api.MethodPull:
				var params api.PullRequest
				_ = json.Unmarshal(req.Params, &params)
				resp.Result, _ = json.Marshal(api.PullResponse{Head: "head-of-" + params.ObjectID})
			case api.MethodPush:
				resp.Error = &api.RPCError{Code: api.CodeForbidden, Message: "access denied"}
			case api.MethodCreateBranch:
				resp.Error = &api.RPCError{Code: api.CodeInternal, Message: "storage down"}
			case api.MethodSearch:
				continue
			case "close":
				return
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func connected(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()

	server := rpcServer(t)
	client := NewClient(wsURL(server), testLogger())
	require.NoError(t, client.Connect(context.Background(), "alice", "good-token"))
	t.Cleanup(func() { _ = client.Disconnect() })
	return client, server
}

// TestClient_ConnectUnauthorized проверяет отказ при неверном токене
func TestClient_ConnectUnauthorized(t *testing.T) {
	server := rpcServer(t)
	client := NewClient(wsURL(server), testLogger())

	err := client.Connect(context.Background(), "alice", "bad-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrRejected)
	assert.Equal(t, transport.StateDisconnected, client.State())
}

// TestClient_StateDuringSlowHandshake проверяет, что медленное рукопожатие не блокирует State
func TestClient_StateDuringSlowHandshake(t *testing.T) {
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-release
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	client := NewClient(wsURL(server), testLogger())
	t.Cleanup(func() { _ = client.Disconnect() })

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { errs <- client.Connect(context.Background(), "alice", "good-token") }()
	}
	<-entered

	state := make(chan transport.ConnectionState, 1)
	go func() { state <- client.State() }()
	select {
	case st := <-state:
		assert.Equal(t, transport.StateDisconnected, st)
	case <-time.After(time.Second):
		close(release)
		t.Fatal("State blocked while the handshake was in progress")
	}

	close(release)
	for i := 0; i < 2; i++ {
		require.NoError(t, <-errs)
	}
	assert.Equal(t, transport.StateConnected, client.State())
}

// TestClient_NotConnected проверяет вызов без соединения
func TestClient_NotConnected(t *testing.T) {
	client := NewClient("ws://127.0.0.1:1", testLogger())

	_, err := client.Pull(context.Background(), api.PullRequest{})
	assert.ErrorIs(t, err, transport.ErrNotConnected)
}

// TestClient_Pull проверяет вызов с результатом
func TestClient_Pull(t *testing.T) {
	client, _ := connected(t)
	assert.Equal(t, transport.StateConnected, client.State())

	resp, err := client.Pull(context.Background(), api.PullRequest{Owner: "bob", Branch: "master", ObjectID: "doc-1"})
	require.NoError(t, err)
	assert.Equal(t, "head-of-doc-1", resp.Head)
}

// TestClient_ConcurrentCalls проверяет сопоставление ответов по id
func TestClient_ConcurrentCalls(t *testing.T) {
	client, _ := connected(t)
	ctx := context.Background()

	first := client.PullAsync(ctx, api.PullRequest{ObjectID: "a"})
	second := client.PullAsync(ctx, api.PullRequest{ObjectID: "b"})

	b, err := second.Wait(ctx)
	require.NoError(t, err)
	a, err := first.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, "head-of-a", a.Head)
	assert.Equal(t, "head-of-b", b.Head)
}

// TestClient_RemoteErrors проверяет классификацию ошибок удаленной стороны
func TestClient_RemoteErrors(t *testing.T) {
	client, _ := connected(t)

	_, err := client.Push(context.Background(), api.PushRequest{})
	assert.ErrorIs(t, err, transport.ErrRejected)
	assert.Contains(t, err.Error(), "access denied")

	_, err = client.CreateBranch(context.Background(), api.CreateBranchRequest{})
	assert.ErrorIs(t, err, transport.ErrUnavailable)
}

// TestClient_Timeout проверяет, что отсутствие ответа завершается по контексту
func TestClient_Timeout(t *testing.T) {
	client, _ := connected(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Search(ctx, api.SearchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Eventually(t, func() bool {
		client.mu.Lock()
		defer client.mu.Unlock()
		return len(client.pending) == 0
	}, time.Second, 10*time.Millisecond)
}

// TestClient_ConnectionLost проверяет отклонение ожидающих вызовов при обрыве
func TestClient_ConnectionLost(t *testing.T) {
	client, _ := connected(t)
	ctx := context.Background()

	waiting := client.SearchAsync(ctx, api.SearchRequest{})
	closing := client.call(ctx, "close", nil)

	_, err := waiting.Wait(ctx)
	assert.ErrorIs(t, err, transport.ErrUnavailable)
	_, err = closing.Wait(ctx)
	assert.ErrorIs(t, err, transport.ErrUnavailable)

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, client.WaitDisconnected(waitCtx))
	assert.Equal(t, transport.StateDisconnected, client.State())
}

// TestClient_Reconnect проверяет повторное подключение после Disconnect
func TestClient_Reconnect(t *testing.T) {
	client, _ := connected(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, client.Disconnect())
	require.NoError(t, client.WaitDisconnected(ctx))

	require.NoError(t, client.Connect(ctx, "alice", "good-token"))
	require.NoError(t, client.WaitConnected(ctx))

	resp, err := client.Pull(ctx, api.PullRequest{ObjectID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "head-of-x", resp.Head)
}
