package cli

import (
	"context"
	"fmt"
)

// runLogin входит по паролю, а без имени пользователя по client credentials
func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")

	var username, password string
	if len(args) > 0 {
		username = args[0]
	} else {
		input, err := c.io.ReadInput("Username (empty for client credentials): ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = input
	}

	if username != "" {
		pw, err := c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		if pw == "" {
			return fmt.Errorf("password cannot be empty")
		}
		password = pw
	}

	tok, err := c.auth.Login(ctx, c.owner, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Owner: %s\n", c.owner)
	if !tok.Expiry.IsZero() {
		c.io.Printf("Token expires: %s\n", tok.Expiry.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")
	return nil
}
