package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/models"
)

// newDocumentID аргумент commit для нового документа с назначенным id
const newDocumentID = "-"

type documentView struct {
	ID      string
	Owner   string
	Head    string
	Fields  string
	Commits int
}

type commitView struct {
	Time    string
	ID      string
	Source  string
	Author  string
	Message string
}

// runCommit заменяет поля документа и записывает разницу коммитом
func (c *Cli) runCommit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: docsync commit <id|-> <json-fields> [message]", ErrUsage)
	}

	fields := make(map[string]any)
	if err := json.Unmarshal([]byte(args[1]), &fields); err != nil {
		return fmt.Errorf("%w: fields must be a JSON object: %w", repository.ErrValidation, err)
	}

	branch := c.branches.Current()
	doc, err := c.documentForCommit(ctx, branch, args[0], fields)
	if err != nil {
		return err
	}

	message := strings.Join(args[2:], " ")
	if message == "" {
		message = "update"
	}

	saved, err := c.repo.Commit(ctx, branch, doc, message, "")
	if err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	c.io.Printf("✓ Committed %s on %s (head %s)\n", saved.ID, branch, saved.GetCommits().Head())
	return nil
}

func (c *Cli) documentForCommit(ctx context.Context, branch, id string, fields map[string]any) (*models.Document, error) {
	if id == newDocumentID {
		return models.NewDocument(fields), nil
	}

	doc, err := c.repo.Get(ctx, branch, id)
	if errors.Is(err, repository.ErrNotFound) {
		doc = models.NewDocument(fields)
		if err := doc.SetID(id); err != nil {
			return nil, fmt.Errorf("%w: %w", repository.ErrValidation, err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}

	doc.Fields = fields
	return doc, nil
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: docsync get <id>", ErrUsage)
	}

	doc, err := c.repo.Get(ctx, c.branches.Current(), args[0])
	if err != nil {
		return err
	}

	fields, err := json.MarshalIndent(doc.Fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	return c.render("document", documentTemplate, documentView{
		ID:      doc.ID,
		Owner:   doc.Meta.Owner,
		Head:    doc.GetCommits().Head(),
		Fields:  string(fields),
		Commits: len(doc.GetCommits()),
	})
}

func (c *Cli) runLog(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: docsync log <id>", ErrUsage)
	}

	doc, err := c.repo.Get(ctx, c.branches.Current(), args[0])
	if err != nil {
		return err
	}

	commits := doc.GetCommits().All()
	views := make([]commitView, 0, len(commits))
	// новые сверху
	for i := len(commits) - 1; i >= 0; i-- {
		cm := commits[i]
		views = append(views, commitView{
			Time:    time.UnixMilli(cm.Timestamp).UTC().Format(time.RFC3339),
			ID:      cm.ID,
			Source:  cm.Source.String(),
			Author:  cm.AuthorID,
			Message: cm.Message,
		})
	}
	return c.render("log", commitLogTemplate, views)
}
