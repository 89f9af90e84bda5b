package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(exp)}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return s
}

func newTestService(connector Connector, now time.Time) (*Service, *TokenStore) {
	store := NewTokenStore(memoryAuth(), "client-secret")
	svc := NewService(connector, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestAccessExpiry(t *testing.T) {
	exp := time.Unix(1800000000, 0)

	got, ok := AccessExpiry(signedToken(t, exp))
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = AccessExpiry("opaque-token")
	assert.False(t, ok)
}

func TestSession_Expired(t *testing.T) {
	now := time.Unix(1800000000, 0)

	fresh := &Session{AccessToken: signedToken(t, now.Add(time.Hour))}
	assert.False(t, fresh.Expired(now, DefaultRefreshSkew))

	soon := &Session{AccessToken: signedToken(t, now.Add(10*time.Second))}
	assert.True(t, soon.Expired(now, DefaultRefreshSkew))

	// непрозрачный токен: срок из ответа token endpoint
	opaque := &Session{AccessToken: "opaque", ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, opaque.Expired(now, 0))

	unknown := &Session{AccessToken: "opaque"}
	assert.False(t, unknown.Expired(now, DefaultRefreshSkew))
}

func TestService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	connector := &ConnectorMock{
		ConnectFunc: func(ctx context.Context, username, password string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
		DisconnectFunc: func() {},
	}
	svc, store := newTestService(connector, time.Now())

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Login(ctx, "alice", "alice", "password")
	require.NoError(t, err)
	require.Len(t, connector.ConnectCalls(), 1)
	assert.Equal(t, "password", connector.ConnectCalls()[0].Password)

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh", session.RefreshToken)

	require.NoError(t, svc.Logout(ctx))
	assert.Len(t, connector.DisconnectCalls(), 1)

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_LoginErrors(t *testing.T) {
	ctx := context.Background()
	failing := errors.New("invalid_grant")
	connector := &ConnectorMock{
		ConnectFunc: func(ctx context.Context, username, password string) (*oauth2.Token, error) {
			return nil, failing
		},
	}
	svc, _ := newTestService(connector, time.Now())

	_, err := svc.Login(ctx, "alice", "alice", "bad")
	assert.ErrorIs(t, err, failing)

	_, err = svc.Login(ctx, "", "alice", "password")
	assert.Error(t, err)
	assert.Len(t, connector.ConnectCalls(), 1)
}

func TestService_ResumeValidToken(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1800000000, 0)
	access := signedToken(t, now.Add(time.Hour))

	connector := &ConnectorMock{
		ReconnectFunc: func(ctx context.Context, username, accessToken, refreshToken string, forceRefresh bool) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: accessToken, RefreshToken: refreshToken}, nil
		},
	}
	svc, store := newTestService(connector, now)
	require.NoError(t, store.Save(ctx, "alice", "alice", &oauth2.Token{AccessToken: access, RefreshToken: "refresh"}))

	session, tok, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, access, tok.AccessToken)
	assert.Equal(t, "alice", session.Owner)

	calls := connector.ReconnectCalls()
	require.Len(t, calls, 1)
	assert.False(t, calls[0].ForceRefresh)
	assert.Equal(t, "alice", calls[0].Username)
}

func TestService_ResumeExpiredTokenRefreshes(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1800000000, 0)
	expired := signedToken(t, now.Add(-time.Minute))
	rotated := signedToken(t, now.Add(time.Hour))

	connector := &ConnectorMock{
		ReconnectFunc: func(ctx context.Context, username, accessToken, refreshToken string, forceRefresh bool) (*oauth2.Token, error) {
			// сервер не вернул новый refresh token
			return &oauth2.Token{AccessToken: rotated, Expiry: now.Add(time.Hour)}, nil
		},
	}
	svc, store := newTestService(connector, now)
	require.NoError(t, store.Save(ctx, "alice", "alice", &oauth2.Token{AccessToken: expired, RefreshToken: "refresh"}))

	session, _, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, rotated, session.AccessToken)

	calls := connector.ReconnectCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].ForceRefresh)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rotated, stored.AccessToken)
	assert.Equal(t, "refresh", stored.RefreshToken)
}

func TestService_ResumeWithoutSession(t *testing.T) {
	svc, _ := newTestService(&ConnectorMock{}, time.Now())

	_, _, err := svc.Resume(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}
