package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/docsync/internal/models"
)

type statusView struct {
	Owner         string
	Branch        string
	DeadLetters   []models.SyncTask
	Pending       int
	Authenticated bool
	Online        bool
}

func (c *Cli) runStatus(ctx context.Context) error {
	isAuth, err := c.auth.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	return c.render("status", statusTemplate, statusView{
		Owner:         c.owner,
		Branch:        c.branches.Current(),
		DeadLetters:   c.engine.DeadLetters(),
		Pending:       c.engine.PendingSync(),
		Authenticated: isAuth,
		Online:        c.online,
	})
}
