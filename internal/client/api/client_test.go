package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeServer отвечает на token endpoint и проверяет Bearer токен на остальных путях
type fakeServer struct {
	t        *testing.T
	mux      *http.ServeMux
	issued   atomic.Int32
	lastForm atomic.Value
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()

	fs := &fakeServer{t: t, mux: http.NewServeMux()}
	fs.mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		fs.lastForm.Store(r.PostForm)

		if r.PostForm.Get("grant_type") == "password" && r.PostForm.Get("password") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}

		n := fs.issued.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "access-" + string(rune('0'+n)),
			RefreshToken: "refresh-" + string(rune('0'+n)),
			TokenType:    "Bearer",
			ExpiresIn:    3600,
		})
	})

	server := httptest.NewServer(fs.mux)
	t.Cleanup(server.Close)
	return fs, server
}

func (fs *fakeServer) handle(path string, fn func(w http.ResponseWriter, r *http.Request)) {
	fs.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(fs.t, http.MethodPost, r.Method)
		assert.Equal(fs.t, "application/json", r.Header.Get("Content-Type"))
		assert.Contains(fs.t, r.Header.Get("Authorization"), "Bearer access-")
		fn(w, r)
	})
}

func (fs *fakeServer) form() url.Values {
	v, _ := fs.lastForm.Load().(url.Values)
	return v
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", "id", "secret", testLogger())

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 30*time.Second, client.baseClient.Timeout)
	assert.Equal(t, transport.StateDisconnected, client.State())

	client.WithTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.baseClient.Timeout)
	client.WithTimeout(0)
	assert.Equal(t, 5*time.Second, client.baseClient.Timeout)
}

// TestClient_NotConnected проверяет вызов до Connect
func TestClient_NotConnected(t *testing.T) {
	client := NewClient("http://localhost:1", "id", "secret", testLogger())

	_, err := client.Pull(context.Background(), api.PullRequest{})
	assert.ErrorIs(t, err, transport.ErrNotConnected)

	_, err = client.Token()
	assert.ErrorIs(t, err, transport.ErrNotConnected)
}

// TestClient_ConnectPassword проверяет password grant
func TestClient_ConnectPassword(t *testing.T) {
	fs, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())

	tok, err := client.Connect(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok.AccessToken)
	assert.Equal(t, "refresh-1", tok.RefreshToken)
	assert.Equal(t, transport.StateConnected, client.State())

	form := fs.form()
	assert.Equal(t, []string{"password"}, form["grant_type"])
	assert.Equal(t, []string{"alice"}, form["username"])
	assert.Equal(t, []string{"docsync"}, form["client_id"])
}

// TestClient_ConnectClientCredentials проверяет client credentials при пустом имени
func TestClient_ConnectClientCredentials(t *testing.T) {
	fs, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())

	tok, err := client.Connect(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok.AccessToken)
	assert.Equal(t, []string{"client_credentials"}, fs.form()["grant_type"])
}

// TestClient_ConnectRejected проверяет, что неверный пароль не считается временной ошибкой
func TestClient_ConnectRejected(t *testing.T) {
	_, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())

	_, err := client.Connect(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrRejected)
	assert.Equal(t, transport.StateDisconnected, client.State())
}

// TestClient_Reconnect проверяет восстановление сессии с принудительным обновлением
func TestClient_Reconnect(t *testing.T) {
	fs, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())

	tok, err := client.Reconnect(context.Background(), "alice", "old-access", "old-refresh", false)
	require.NoError(t, err)
	assert.Equal(t, "old-access", tok.AccessToken)
	assert.Equal(t, int32(0), fs.issued.Load())

	tok, err = client.Reconnect(context.Background(), "alice", "old-access", "old-refresh", true)
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok.AccessToken)
	assert.Equal(t, []string{"refresh_token"}, fs.form()["grant_type"])
	assert.Equal(t, []string{"old-refresh"}, fs.form()["refresh_token"])

	_, err = client.Reconnect(context.Background(), "alice", "old-access", "", true)
	assert.ErrorIs(t, err, transport.ErrRejected)
}

// TestClient_Pull проверяет запрос pull
func TestClient_Pull(t *testing.T) {
	fs, server := newFakeServer(t)
	fs.handle(pullPath, func(w http.ResponseWriter, r *http.Request) {
		var req api.PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bob", req.Owner)
		assert.Equal(t, "doc-1", req.ObjectID)
		assert.Equal(t, "c1", req.Start)

		_ = json.NewEncoder(w).Encode(api.PullResponse{
			Commits: []api.Commit{{ID: "c2", Hash: "h2", ParentHash: "h1"}},
			Head:    "c2",
		})
	})

	client := NewClient(server.URL, "docsync", "client-secret", testLogger())
	_, err := client.Connect(context.Background(), "alice", "secret")
	require.NoError(t, err)

	resp, err := client.Pull(context.Background(), api.PullRequest{Owner: "bob", Branch: "master", ObjectID: "doc-1", Start: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c2", resp.Head)
	require.Len(t, resp.Commits, 1)
	assert.Equal(t, "h1", resp.Commits[0].ParentHash)
}

// TestClient_Errors проверяет разделение ошибок на отказ и недоступность
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   error
		status int
	}{
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"access_denied","error_description":"no write access"}`, want: transport.ErrRejected},
		{name: "bad request plain", status: http.StatusBadRequest, body: "bad", want: transport.ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, want: transport.ErrUnavailable},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: "", want: transport.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, server := newFakeServer(t)
			fs.handle(pushPath, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			client := NewClient(server.URL, "docsync", "client-secret", testLogger())
			_, err := client.Connect(context.Background(), "alice", "secret")
			require.NoError(t, err)

			_, err = client.Push(context.Background(), api.PushRequest{Owner: "bob", Branch: "master", ObjectID: "doc-1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestClient_ServerDown проверяет сетевую ошибку
func TestClient_ServerDown(t *testing.T) {
	_, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())
	_, err := client.Connect(context.Background(), "alice", "secret")
	require.NoError(t, err)

	server.Close()

	_, err = client.Search(context.Background(), api.SearchRequest{Owner: "bob", Branch: "master"})
	assert.ErrorIs(t, err, transport.ErrUnavailable)
}

// TestClient_Disconnect проверяет сброс сессии
func TestClient_Disconnect(t *testing.T) {
	_, server := newFakeServer(t)
	client := NewClient(server.URL, "docsync", "client-secret", testLogger())
	_, err := client.Connect(context.Background(), "", "")
	require.NoError(t, err)

	client.Disconnect()
	assert.Equal(t, transport.StateDisconnected, client.State())

	_, err = client.CreateBranch(context.Background(), api.CreateBranchRequest{Owner: "bob", Branch: "dev"})
	assert.ErrorIs(t, err, transport.ErrNotConnected)
}

// TestClient_Files проверяет загрузку куска и сборку файла
func TestClient_Files(t *testing.T) {
	fs, server := newFakeServer(t)
	fs.handle(chunkForFilePath, func(w http.ResponseWriter, r *http.Request) {
		var req api.ChunkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []byte("payload"), req.Data)
		_ = json.NewEncoder(w).Encode(api.ChunkResponse{FileID: req.FileID, ChunkNumber: req.ChunkNumber, Received: 1})
	})
	fs.handle(mergeChunksForFilePath, func(w http.ResponseWriter, r *http.Request) {
		var req api.MergeChunksRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(api.MergeChunksResponse{FileID: req.FileID, Size: 7, Hash: "h"})
	})

	client := NewClient(server.URL, "docsync", "client-secret", testLogger())
	_, err := client.Connect(context.Background(), "alice", "secret")
	require.NoError(t, err)

	chunk, err := client.ChunkForFile(context.Background(), api.ChunkRequest{FileID: "f1", Data: []byte("payload")})
	require.NoError(t, err)
	assert.Equal(t, 1, chunk.Received)

	merged, err := client.MergeChunksForFile(context.Background(), api.MergeChunksRequest{FileID: "f1", ChunkCount: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(7), merged.Size)
}
