// Package cli implements the docsync commands on top of the client services.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"golang.org/x/oauth2"

	"github.com/iudanet/docsync/internal/client/branches"
	"github.com/iudanet/docsync/internal/client/files"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/pullrequests"
	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/client/search"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/models"
)

// DefaultSearchRefresh сохраненный результат поиска моложе этого срока не пересчитывается
const DefaultSearchRefresh = time.Minute

//go:generate moq -out authservice_mock.go . AuthService

// AuthService сессия пользователя.
type AuthService interface {
	Login(ctx context.Context, owner, username, password string) (*oauth2.Token, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
}

//go:generate moq -out syncengine_mock.go . SyncEngine

// SyncEngine очередь задач синхронизации.
type SyncEngine interface {
	files.Uploader
	Pull(ctx context.Context, localBranch string, remote models.Coordinate, start, end string) (*syncengine.Submission, error)
	Push(ctx context.Context, localBranch string, remote models.Coordinate, commits []models.Commit) (*syncengine.Submission, error)
	Search(ctx context.Context, localBranch string, remote models.Coordinate, p syncengine.SearchParams) (*syncengine.Submission, error)
	NotifyData(ctx context.Context, queueURL string, remote models.Coordinate, payload []byte, listeners []string) (*syncengine.Submission, error)
	PendingSync() int
	DeadLetters() []models.SyncTask
	WaitIdle(ctx context.Context) error
}

// Deps зависимости команд.
type Deps struct {
	IO            iocli.IO
	Auth          AuthService
	Engine        SyncEngine
	Repo          repository.Repository
	Branches      *branches.Manager
	Ledger        *pullrequests.Ledger
	Search        *search.Service
	Logger        *slog.Logger
	Owner         string
	QueueURL      string
	ChunkSize     int
	SearchRefresh time.Duration
	// Online движок запущен с действующей сессией; иначе задачи только ставятся в очередь
	Online bool
}

// Cli выполняет команды.
type Cli struct {
	io            iocli.IO
	auth          AuthService
	engine        SyncEngine
	repo          repository.Repository
	branches      *branches.Manager
	ledger        *pullrequests.Ledger
	search        *search.Service
	logger        *slog.Logger
	owner         string
	queueURL      string
	chunkSize     int
	searchRefresh time.Duration
	online        bool
}

// New creates the command set
func New(deps Deps) *Cli {
	if deps.SearchRefresh == 0 {
		deps.SearchRefresh = DefaultSearchRefresh
	}
	return &Cli{
		io:            deps.IO,
		auth:          deps.Auth,
		engine:        deps.Engine,
		repo:          deps.Repo,
		branches:      deps.Branches,
		ledger:        deps.Ledger,
		search:        deps.Search,
		logger:        deps.Logger,
		owner:         deps.Owner,
		queueURL:      deps.QueueURL,
		chunkSize:     deps.ChunkSize,
		searchRefresh: deps.SearchRefresh,
		online:        deps.Online,
	}
}

// Usage returns the command reference
func Usage() string {
	return strings.TrimSpace(usageText) + "\n"
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println(strings.TrimSpace(usageText))
}

// render выводит шаблон в c.io
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// fileManager файловый менеджер текущей ветки
func (c *Cli) fileManager() *files.Manager {
	return files.NewManager(c.repo, c.engine, c.branches.Current(), c.logger).WithChunkSize(c.chunkSize)
}

// parseRemote разбирает "owner/branch" и дополняет координату id объекта
func parseRemote(arg, objectID string) (models.Coordinate, error) {
	owner, branch, ok := strings.Cut(arg, "/")
	remote := models.Coordinate{Owner: owner, Branch: branch, ObjectID: objectID}
	if !ok || strings.Contains(branch, "/") {
		return models.Coordinate{}, fmt.Errorf("%w: expected owner/branch, got %q", models.ErrInvalidCoordinate, arg)
	}
	if err := remote.Validate(); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %q", err, arg)
	}
	return remote, nil
}
