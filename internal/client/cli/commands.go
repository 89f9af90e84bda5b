package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUsage неверные аргументы команды
var ErrUsage = errors.New("usage")

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "branch":
		return c.runBranch(ctx, args)
	case "checkout":
		if len(args) != 1 {
			return fmt.Errorf("%w: docsync checkout <branch>", ErrUsage)
		}
		return c.runCheckout(ctx, args[0])
	case "commit":
		return c.runCommit(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "log":
		return c.runLog(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "pull":
		return c.runPull(ctx, args)
	case "push":
		return c.runPush(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "prs":
		return c.runPullRequests(ctx, args)
	case "mkdir":
		return c.runMkdir(ctx, args)
	case "ls":
		return c.runLs(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	case "user":
		return c.runUser(ctx, args)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
