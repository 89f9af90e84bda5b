package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iudanet/docsync/internal/client/repository"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/crypto"
	"github.com/iudanet/docsync/internal/query"
)

type searchView struct {
	Reference string
	Source    string
	Rows      []string
	Total     int
	Cached    bool
}

// runSearch ищет в текущей ветке; с --remote сначала получает результаты удаленной ветки
func (c *Cli) runSearch(ctx context.Context, args []string) error {
	var remoteArg string
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--remote" && i+1 < len(args) {
			remoteArg = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}
	if len(rest) == 0 || len(rest) > 2 {
		return fmt.Errorf("%w: docsync search <json-filter> [limit] [--remote owner/branch]", ErrUsage)
	}

	filter := query.Filter{}
	if err := json.Unmarshal([]byte(rest[0]), &filter); err != nil {
		return fmt.Errorf("%w: filter must be a JSON object: %w", repository.ErrValidation, err)
	}
	limit := 0
	if len(rest) == 2 {
		n, err := strconv.Atoi(rest[1])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: invalid limit %q", ErrUsage, rest[1])
		}
		limit = n
	}

	ref, err := searchReference(filter)
	if err != nil {
		return err
	}
	branch := c.branches.Current()

	if remoteArg != "" {
		remote, err := parseRemote(remoteArg, "")
		if err != nil {
			return err
		}
		sub, err := c.engine.Search(ctx, branch, remote, syncengine.SearchParams{Filter: filter, Reference: ref, Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to queue remote search: %w", err)
		}
		if !c.online {
			c.io.Printf("Remote search queued (task %s). Results appear after the next sync.\n", sub.TaskID)
			return nil
		}
		if _, err := sub.Future.Wait(ctx); err != nil {
			return fmt.Errorf("remote search failed: %w", err)
		}
	}

	entry, err := c.search.GetSearchEntry(ctx, branch, ref, filter, c.searchRefresh, nil, nil, 0, limit)
	if err != nil {
		return err
	}

	view := searchView{Reference: entry.Reference, Source: entry.Source, Total: entry.Total, Cached: entry.Cached}
	for _, row := range entry.Results {
		line, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		view.Rows = append(view.Rows, string(line))
	}
	return c.render("search", searchTemplate, view)
}

// searchReference id записи поиска: один и тот же фильтр попадает в одну запись
func searchReference(filter query.Filter) (string, error) {
	canonical, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("failed to encode filter: %w", err)
	}
	return "q-" + crypto.ChunkChecksum(canonical), nil
}
