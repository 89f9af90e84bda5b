package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/models"
)

type pullRequestView struct {
	ID      string
	Remote  string
	Status  string
	Created string
	Commits int
}

// runPullRequests показывает и решает отложенные конфликтующие слияния
func (c *Cli) runPullRequests(ctx context.Context, args []string) error {
	branch := c.branches.Current()
	if len(args) == 0 || args[0] == "list" {
		prs, err := c.ledger.List(ctx, branch)
		if err != nil {
			return err
		}
		views := make([]pullRequestView, 0, len(prs))
		for _, pr := range prs {
			views = append(views, pullRequestView{
				ID:      pr.ID,
				Remote:  pr.Remote.Key(),
				Status:  pr.Status.String(),
				Created: pr.CreatedAt.Format(time.RFC3339),
				Commits: len(pr.Commits),
			})
		}
		return c.render("prs", pullRequestListTemplate, views)
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: docsync prs [list|accept <id>|reject <id>]", ErrUsage)
	}

	var (
		pr  *models.PullRequest
		err error
	)
	switch args[0] {
	case "accept":
		pr, err = c.ledger.Accept(ctx, branch, args[1])
	case "reject":
		pr, err = c.ledger.Reject(ctx, branch, args[1])
	default:
		return fmt.Errorf("%w: unknown prs command %q", ErrUsage, args[0])
	}
	if err != nil {
		return err
	}

	c.io.Printf("✓ Pull request %s is %s\n", pr.ID, pr.Status)
	return nil
}
