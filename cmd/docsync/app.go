package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/auth"
	"github.com/iudanet/docsync/internal/client/branches"
	"github.com/iudanet/docsync/internal/client/cli"
	"github.com/iudanet/docsync/internal/client/files"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/pullrequests"
	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/client/search"
	"github.com/iudanet/docsync/internal/client/socket"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/client/storage/sqlite"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/internal/config"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/queue"
	"github.com/iudanet/docsync/internal/validation"
)

// app связывает хранилища, транспорт, движок синхронизации и команды.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []io.Closer
	cli     *cli.Cli
	engine  *syncengine.Engine
	queue   queue.Queue
	socket  *socket.Client
	online  bool
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (a *app, err error) {
	a = &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	bolt, err := boltdb.New(ctx, cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, bolt)

	var documents storage.DocumentStore = bolt
	if cfg.StoreDriver == config.StoreSQLite {
		lite, err := sqlite.New(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		a.closers = append(a.closers, lite)
		documents = lite
	}

	apiClient := api.NewClient(cfg.ServerURL, cfg.ClientID, cfg.ClientSecret, logger).WithTimeout(cfg.RequestTimeout)
	authService := auth.NewService(apiClient, auth.NewTokenStore(bolt, tokenSecret(cfg)), logger)

	owner := cfg.Owner
	var tr transport.Transport = apiClient
	session, tok, rerr := authService.Resume(ctx)
	switch {
	case rerr == nil:
		if owner == "" {
			owner = session.Owner
		}
		a.online = owner == session.Owner
		if !a.online {
			logger.Warn("Stored session belongs to another owner", "owner", owner, "session_owner", session.Owner)
		}
	case errors.Is(rerr, auth.ErrNoSession):
		logger.Debug("No stored session, working offline")
	default:
		logger.Warn("Failed to resume session, working offline", "error", rerr)
	}
	if owner == "" {
		return nil, fmt.Errorf("owner is not configured: use -owner or DOCSYNC_OWNER")
	}
	if err := validation.ValidateOwner(owner); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	if a.online && cfg.Transport == config.TransportSocket {
		wsURL, err := socketURL(cfg.ServerURL)
		if err != nil {
			return nil, err
		}
		a.socket = socket.NewClient(wsURL, logger)
		if err := a.socket.Connect(ctx, owner, tok.AccessToken); err != nil {
			logger.Warn("Socket is unavailable, working offline", "error", err)
			a.online = false
		} else {
			tr = a.socket
		}
	}

	repo := repository.NewRepository(owner, repository.Deps{
		Documents: documents,
		Branches:  bolt,
		Metadata:  bolt,
	}, logger)
	if err := repo.Setup(ctx); err != nil {
		return nil, fmt.Errorf("failed to set up repository: %w", err)
	}

	bm := branches.NewManager(owner, bolt, documents, bolt, bolt, nil, logger)
	if err := bm.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load branches: %w", err)
	}
	ledger := pullrequests.NewLedger(bolt, logger)
	searches := search.NewService(repo, bm, logger)

	applier := syncengine.NewRepositoryApplier(repo, logger).
		WithSearch(searches).
		WithFiles(files.NewManager(repo, nil, bm.Current(), logger)).
		WithLedger(ledger)

	a.engine = syncengine.NewEngine(tr, bolt, applier, a.report, syncengine.Config{
		Concurrency: cfg.SyncConcurrency,
		MaxAttempts: cfg.MaxAttempts,
		BaseBackoff: cfg.BaseBackoff,
		MaxBackoff:  cfg.MaxBackoff,
	}, logger)
	bm.SetCanceller(a.engine)

	if a.queue, err = newQueue(ctx, cfg, logger); err != nil {
		return nil, err
	}
	a.engine.SetQueue(a.queue)

	a.cli = cli.New(cli.Deps{
		IO:        iocli.NewStdio(),
		Auth:      authService,
		Engine:    a.engine,
		Repo:      repo,
		Branches:  bm,
		Ledger:    ledger,
		Search:    searches,
		Logger:    logger,
		Owner:     owner,
		QueueURL:  cfg.QueueURL,
		ChunkSize: cfg.ChunkSize,
		Online:    a.online,
	})
	return a, nil
}

// run выполняет команду. Движок работает только при действующей сессии.
func (a *app) run(ctx context.Context, command string, args []string) error {
	if !a.online {
		return a.dispatch(ctx, command, args)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- a.engine.Run(ctx)
	}()

	err := a.dispatch(ctx, command, args)
	cancel()
	if rerr := <-done; rerr != nil && !errors.Is(rerr, context.Canceled) {
		a.logger.Error("Sync engine stopped", "error", rerr)
	}
	return err
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	if command != "watch" {
		return a.cli.Run(ctx, command, args)
	}
	if !a.online {
		return fmt.Errorf("watch requires a session: run 'docsync login'")
	}

	a.logger.Info("Watching notifications", "queue", a.cfg.QueueURL)
	err := queue.NewConsumer(a.queue, a.cfg.QueueURL, a.cli.HandleNotification, a.logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// report логирует результат каждой задачи синхронизации
func (a *app) report(err error, _ any, task models.SyncTask) {
	if err != nil {
		a.logger.Warn("Sync task failed", "type", task.Type.String(), "id", task.ID, "error", err)
		return
	}
	a.logger.Debug("Sync task done", "type", task.Type.String(), "id", task.ID)
}

// Close отключает транспорт и закрывает хранилища в обратном порядке.
func (a *app) Close() error {
	var errs []error
	if a.socket != nil {
		if err := a.socket.Disconnect(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newQueue(ctx context.Context, cfg *config.Config, logger *slog.Logger) (queue.Queue, error) {
	if cfg.QueueDriver != config.QueueSQS {
		return queue.NewLocalQueue(logger), nil
	}
	client, err := queue.NewSQSClient(ctx, queue.SQSConfig{
		Region:          cfg.SQS.Region,
		Endpoint:        cfg.SQS.Endpoint,
		AccessKeyID:     cfg.SQS.AccessKeyID,
		SecretAccessKey: cfg.SQS.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	return queue.NewSQSQueue(client, logger), nil
}

// tokenSecret секрет ключа шифрования сессии. У публичного клиента секрета нет,
// тогда ключ привязан к client id и адресу сервера.
func tokenSecret(cfg *config.Config) string {
	if cfg.ClientSecret != "" {
		return cfg.ClientSecret
	}
	return cfg.ClientID + "@" + cfg.ServerURL
}

// socketURL переводит адрес сервера в адрес websocket: http -> ws, https -> wss, путь /ws.
func socketURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("%w: bad server url: %w", config.ErrInvalidConfig, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("%w: unsupported server scheme %q", config.ErrInvalidConfig, u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String(), nil
}
