package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/docsync/internal/client/users"
)

type userView struct {
	Name      string
	EmailOrID string
	GrantType string
	Status    string
}

// userManager учетные записи хранятся в текущей ветке
func (c *Cli) userManager() *users.Manager {
	return users.NewManager(c.repo, c.branches.Current(), c.logger)
}

func (c *Cli) runUser(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.runUserList(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("%w: docsync user add <name> <email|id> [password|client_credentials] [message]", ErrUsage)
		}
		grant := string(users.GrantPassword)
		if len(args) > 3 {
			grant = args[3]
		}
		secret, err := c.readSecret(grant)
		if err != nil {
			return err
		}
		doc, err := c.userManager().AddUser(ctx, args[1], args[2], secret, grant, strings.Join(args[min(len(args), 4):], " "))
		if err != nil {
			return err
		}
		c.io.Printf("✓ User %s added (id %s, inactive)\n", args[2], doc.ID)
		return nil
	case "status":
		if len(args) < 3 {
			return fmt.Errorf("%w: docsync user status <email|id> <inactive|active|blocked> [message]", ErrUsage)
		}
		if err := c.userManager().ChangeUserStatus(ctx, args[1], args[2], strings.Join(args[3:], " ")); err != nil {
			return err
		}
		c.io.Printf("✓ User %s is %s\n", args[1], strings.ToLower(args[2]))
		return nil
	case "passwd":
		if len(args) < 2 {
			return fmt.Errorf("%w: docsync user passwd <email|id> [message]", ErrUsage)
		}
		secret, err := c.readSecret(string(users.GrantPassword))
		if err != nil {
			return err
		}
		if err := c.userManager().ChangeUserPasswordOrSecret(ctx, args[1], secret, strings.Join(args[2:], " ")); err != nil {
			return err
		}
		c.io.Printf("✓ Password of %s changed\n", args[1])
		return nil
	default:
		return fmt.Errorf("%w: unknown user command %q", ErrUsage, args[0])
	}
}

// readSecret запрашивает пароль или client secret без эха
func (c *Cli) readSecret(grant string) (string, error) {
	prompt := "Password: "
	if grant == string(users.GrantClientCredentials) {
		prompt = "Client secret: "
	}
	secret, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return secret, nil
}

func (c *Cli) runUserList(ctx context.Context) error {
	docs, err := c.userManager().List(ctx)
	if err != nil {
		return err
	}

	views := make([]userView, 0, len(docs))
	for _, d := range docs {
		var v userView
		v.Name, _ = d.Fields[users.FieldName].(string)
		v.EmailOrID, _ = d.Fields[users.FieldEmailOrID].(string)
		v.GrantType, _ = d.Fields[users.FieldGrantType].(string)
		v.Status, _ = d.Fields[users.FieldStatus].(string)
		views = append(views, v)
	}
	return c.render("users", userListTemplate, views)
}
