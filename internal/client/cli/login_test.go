package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/iudanet/docsync/internal/models"
)

func TestCli_LoginWithPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	f.auth.LoginFunc = func(ctx context.Context, owner, username, password string) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "a", Expiry: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)}, nil
	}

	require.NoError(t, f.cli.Run(ctx, "login", []string{"alice"}))

	calls := f.auth.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Owner)
	assert.Equal(t, "alice", calls[0].Username)
	assert.Equal(t, "secret", calls[0].Password)
	assert.Contains(t, f.out.String(), "✓ Login successful!")
	assert.Contains(t, f.out.String(), "Token expires:")
}

func TestCli_LoginClientCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	f.auth.LoginFunc = func(ctx context.Context, owner, username, password string) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "a"}, nil
	}

	require.NoError(t, f.cli.Run(ctx, "login", nil))

	calls := f.auth.LoginCalls()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Username)
	assert.Empty(t, calls[0].Password)
	assert.NotContains(t, f.out.String(), "Token expires:")
}

func TestCli_LoginFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	denied := errors.New("invalid_grant")
	f.auth.LoginFunc = func(ctx context.Context, owner, username, password string) (*oauth2.Token, error) {
		return nil, denied
	}

	err := f.cli.Run(ctx, "login", []string{"alice"})
	assert.ErrorIs(t, err, denied)
	assert.NotContains(t, f.out.String(), "✓")
}

func TestCli_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.auth.LogoutFunc = func(ctx context.Context) error { return nil }

	require.NoError(t, f.cli.Run(ctx, "logout", nil))
	assert.Len(t, f.auth.LogoutCalls(), 1)
	assert.Contains(t, f.out.String(), "✓ Logout successful!")
}

func TestCli_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated", func(t *testing.T) {
		f := newFixture(t, true)
		f.auth.IsAuthenticatedFunc = func(ctx context.Context) (bool, error) { return true, nil }
		f.engine.PendingSyncFunc = func() int { return 2 }
		f.engine.DeadLettersFunc = func() []models.SyncTask {
			return []models.SyncTask{{Type: models.TaskPullEntry, Queue: "bob/main/doc-1", Attempts: 5, LastError: "remote unavailable"}}
		}

		require.NoError(t, f.cli.Run(ctx, "status", nil))
		out := f.out.String()
		assert.Contains(t, out, "Owner:   alice")
		assert.Contains(t, out, "Branch:  master")
		assert.Contains(t, out, "Session: authenticated")
		assert.NotContains(t, out, "(offline)")
		assert.Contains(t, out, "Pending sync: 2 task(s)")
		assert.Contains(t, out, "bob/main/doc-1 after 5 attempt(s): remote unavailable")
	})

	t.Run("not authenticated", func(t *testing.T) {
		f := newFixture(t, false)
		f.auth.IsAuthenticatedFunc = func(ctx context.Context) (bool, error) { return false, nil }

		require.NoError(t, f.cli.Run(ctx, "status", nil))
		assert.Contains(t, f.out.String(), "Session: not authenticated")
	})
}
