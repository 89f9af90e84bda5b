package cli

import (
	"context"
	"fmt"
)

type branchView struct {
	Name    string
	Kind    string
	Current bool
}

func (c *Cli) runBranch(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.runBranchList(ctx)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: docsync branch [list|add <name>|delete <name>]", ErrUsage)
	}

	name := args[1]
	switch args[0] {
	case "add":
		if _, err := c.branches.Add(ctx, name); err != nil {
			return err
		}
		c.io.Printf("✓ Branch %s created\n", name)
		return nil
	case "delete":
		if err := c.branches.Delete(ctx, name); err != nil {
			return err
		}
		c.io.Printf("✓ Branch %s deleted\n", name)
		return nil
	default:
		return fmt.Errorf("%w: unknown branch command %q", ErrUsage, args[0])
	}
}

func (c *Cli) runBranchList(ctx context.Context) error {
	list, err := c.branches.List(ctx)
	if err != nil {
		return err
	}

	current := c.branches.Current()
	views := make([]branchView, 0, len(list))
	for _, b := range list {
		views = append(views, branchView{Name: b.Name, Kind: b.Kind.String(), Current: b.Name == current})
	}
	return c.render("branches", branchListTemplate, views)
}

func (c *Cli) runCheckout(ctx context.Context, name string) error {
	if _, err := c.branches.Checkout(ctx, name); err != nil {
		return err
	}
	c.io.Printf("✓ Switched to branch %s\n", name)
	return nil
}
