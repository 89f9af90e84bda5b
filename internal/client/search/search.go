// Package search keeps search results as entries of the search branch paired with a data branch.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

// ErrInvalidReference пустая ссылка на запись поиска
var ErrInvalidReference = errors.New("search reference is empty")

// Поля документа записи поиска
const (
	fieldReference   = "reference"
	fieldQuery       = "query"
	fieldResults     = "results"
	fieldTotal       = "total"
	fieldRefreshedAt = "refreshed_at"
	fieldSource      = "source"
)

// Source откуда получены результаты записи.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// BranchResolver создает или возвращает ветку поиска для ветки данных
type BranchResolver interface {
	SearchBranch(ctx context.Context, name string) (*models.Branch, error)
}

// Entry запись поиска: запрос и его последние результаты.
type Entry struct {
	RefreshedAt time.Time
	Query       query.Filter
	Reference   string
	Source      string
	Results     []map[string]any
	Total       int
	Cached      bool // результат взят из ветки поиска без повторного запроса
}

// Service читает и обновляет записи поиска через репозиторий.
type Service struct {
	repo     repository.Repository
	branches BranchResolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a search service
func NewService(repo repository.Repository, branches BranchResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		branches: branches,
		logger:   logger,
		now:      time.Now,
	}
}

// GetSearchEntry возвращает запись ref из ветки поиска, если она обновлялась не раньше refreshTime назад.
// Иначе выполняет запрос по ветке данных и сохраняет результаты как новую версию записи.
func (s *Service) GetSearchEntry(ctx context.Context, branch, ref string, filter query.Filter, refreshTime time.Duration, projections []string, sort []query.SortField, offset, limit int) (*Entry, error) {
	if ref == "" {
		return nil, ErrInvalidReference
	}

	searchBranch, err := s.branches.SearchBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve search branch: %w", err)
	}

	cached, err := s.load(ctx, searchBranch.Name, ref)
	if err != nil {
		return nil, err
	}
	if cached != nil && s.now().Sub(cached.RefreshedAt) < refreshTime {
		cached.Cached = true
		s.logger.Debug("Search entry is fresh", "branch", branch, "reference", ref)
		return cached, nil
	}

	docs, err := s.repo.Search(ctx, branch, filter, projections, sort, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to run search: %w", err)
	}

	entry := &Entry{
		RefreshedAt: s.now(),
		Query:       filter,
		Reference:   ref,
		Source:      SourceLocal,
		Results:     Rows(docs),
		Total:       len(docs),
	}
	if err := s.save(ctx, searchBranch.Name, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// StoreRemoteResults сливает результаты удаленного поиска с записью ref.
// Строки с тем же id заменяются, новые добавляются в конец.
func (s *Service) StoreRemoteResults(ctx context.Context, branch, ref string, filter query.Filter, docs []*models.Document) (*Entry, error) {
	if ref == "" {
		return nil, ErrInvalidReference
	}

	searchBranch, err := s.branches.SearchBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve search branch: %w", err)
	}

	entry, err := s.load(ctx, searchBranch.Name, ref)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &Entry{Reference: ref}
	}
	if filter != nil {
		entry.Query = filter
	}

	entry.Results = MergeSearchResults(entry.Results, Rows(docs))
	entry.Total = len(entry.Results)
	entry.Source = SourceRemote
	entry.RefreshedAt = s.now()

	if err := s.save(ctx, searchBranch.Name, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) load(ctx context.Context, searchBranch, ref string) (*Entry, error) {
	doc, err := s.repo.Get(ctx, searchBranch, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load search entry %s: %w", ref, err)
	}
	return entryFromFields(ref, doc.Fields), nil
}

func (s *Service) save(ctx context.Context, searchBranch string, entry *Entry) error {
	doc := models.NewDocument(entry.fields())
	if err := doc.SetID(entry.Reference); err != nil {
		return fmt.Errorf("failed to set search entry id: %w", err)
	}
	if _, err := s.repo.Commit(ctx, searchBranch, doc, "search "+entry.Reference, ""); err != nil {
		return fmt.Errorf("failed to store search entry %s: %w", entry.Reference, err)
	}
	s.logger.Debug("Search entry stored",
		"branch", searchBranch,
		"reference", entry.Reference,
		"results", len(entry.Results),
		"source", entry.Source)
	return nil
}

// Rows converts documents to result rows: document fields plus the "id" key.
func Rows(docs []*models.Document) []map[string]any {
	rows := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		row := make(map[string]any, len(d.Fields)+1)
		for k, v := range d.Fields {
			row[k] = v
		}
		row["id"] = d.ID
		rows = append(rows, row)
	}
	return rows
}

func (e *Entry) fields() map[string]any {
	results := make([]any, 0, len(e.Results))
	for _, r := range e.Results {
		results = append(results, r)
	}
	fields := map[string]any{
		fieldReference:   e.Reference,
		fieldResults:     results,
		fieldTotal:       e.Total,
		fieldRefreshedAt: e.RefreshedAt.UnixMilli(),
		fieldSource:      e.Source,
	}
	if len(e.Query) > 0 {
		fields[fieldQuery] = map[string]any(e.Query)
	}
	return fields
}

func entryFromFields(ref string, fields map[string]any) *Entry {
	e := &Entry{Reference: ref}
	if src, ok := fields[fieldSource].(string); ok {
		e.Source = src
	}
	if q, ok := fields[fieldQuery].(map[string]any); ok {
		e.Query = query.Filter(q)
	}
	if n, ok := query.ToFloat(fields[fieldTotal]); ok {
		e.Total = int(n)
	}
	if ms, ok := query.ToFloat(fields[fieldRefreshedAt]); ok {
		e.RefreshedAt = time.UnixMilli(int64(ms))
	}
	if rows, ok := fields[fieldResults].([]any); ok {
		for _, r := range rows {
			if m, ok := r.(map[string]any); ok {
				e.Results = append(e.Results, m)
			}
		}
	}
	return e
}
