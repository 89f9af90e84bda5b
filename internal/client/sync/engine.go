// Package sync runs the durable queue of remote synchronization tasks.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/iudanet/docsync/internal/async"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/transport"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/queue"
)

var (
	// ErrValidation аргументы задачи некорректны, задача не ставится в очередь
	ErrValidation = errors.New("invalid sync task")
	// ErrTransportFailure задача исчерпала попытки и ушла в dead letter
	ErrTransportFailure = errors.New("transport failure")
	// ErrCancelled задача отменена удалением ветки
	ErrCancelled = errors.New("sync task cancelled")
	// ErrAlreadyRunning Run уже запущен
	ErrAlreadyRunning = errors.New("sync engine is already running")
)

// Config параметры движка синхронизации.
type Config struct {
	// Concurrency максимум задач в полете для разных координат
	Concurrency int
	// MaxAttempts попыток до перевода задачи в dead letter
	MaxAttempts int
	// BaseBackoff задержка перед первым повтором, дальше удваивается
	BaseBackoff time.Duration
	// MaxBackoff верхняя граница задержки
	MaxBackoff time.Duration
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Concurrency: 4,
		MaxAttempts: 5,
		BaseBackoff: 500 * time.Millisecond,
		MaxBackoff:  30 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Concurrency <= 0 {
		c.Concurrency = def.Concurrency
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = def.BaseBackoff
	}
	if c.MaxBackoff < c.BaseBackoff {
		c.MaxBackoff = c.BaseBackoff
	}
	return c
}

// Callback вызывается по завершении задачи: (nil, ответ, задача) при успехе
// или (ошибка, nil, задача) при отказе. Отмененные задачи callback не получают.
type Callback func(err error, response any, task models.SyncTask)

// Submission принятая задача и ее результат.
type Submission struct {
	Future *async.Future[any]
	TaskID string
}

type entry struct {
	task      *models.SyncTask
	future    *async.Future[any]
	cancelled bool
}

// Engine выполняет задачи синхронизации: не более одной задачи в полете на координату,
// задачи одной координаты строго в порядке постановки.
type Engine struct {
	transport   transport.Transport
	store       storage.TaskStorage
	applier     Applier
	callback    Callback
	publisher   queue.Queue
	logger      *slog.Logger
	sem         *semaphore.Weighted
	now         func() time.Time
	lanes       map[string][]*entry
	busy        map[string]*entry
	deadLetters []models.SyncTask
	wake        chan struct{}
	changed     chan struct{}
	cfg         Config
	pending     int
	running     atomic.Bool
	mu          sync.Mutex
	// applying держат на чтение на время проверки отмены и Apply,
	// CancelBranch берет на запись, чтобы дождаться начатых применений
	applying    sync.RWMutex
}

// NewEngine creates a sync engine
// applier и callback могут быть nil.
func NewEngine(tr transport.Transport, store storage.TaskStorage, applier Applier, callback Callback, cfg Config, logger *slog.Logger) *Engine {
	cfg = cfg.withDefaults()
	if applier == nil {
		applier = noopApplier{}
	}
	if callback == nil {
		callback = func(error, any, models.SyncTask) {}
	}
	return &Engine{
		transport: tr,
		store:     store,
		applier:   applier,
		callback:  callback,
		logger:    logger,
		sem:       semaphore.NewWeighted(int64(cfg.Concurrency)),
		now:       time.Now,
		lanes:     make(map[string][]*entry),
		busy:      make(map[string]*entry),
		wake:      make(chan struct{}, 1),
		changed:   make(chan struct{}),
		cfg:       cfg,
	}
}

// SetQueue подключает очередь, через которую публикуются задачи NotifyData.
func (e *Engine) SetQueue(q queue.Queue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publisher = q
}

// Add validates and persists a task and returns without waiting for it
func (e *Engine) Add(ctx context.Context, taskType models.TaskType, args models.TaskArgs) (*Submission, error) {
	if err := args.Validate(taskType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	args.Commits = append([]models.Commit(nil), args.Commits...)

	seq, err := e.store.NextTaskSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate task sequence: %w", err)
	}

	now := e.now().UTC()
	task := &models.SyncTask{
		CreatedAt: now,
		UpdatedAt: now,
		ID:        uuid.New().String(),
		Queue:     args.Coordinate(taskType).Key(),
		Args:      args,
		Seq:       seq,
		Type:      taskType,
		State:     models.TaskQueued,
	}
	if err := e.store.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to persist task: %w", err)
	}

	en := &entry{task: task, future: async.NewFuture[any]()}
	e.mu.Lock()
	e.enqueueLocked(en)
	e.mu.Unlock()
	e.signal()

	e.logger.Debug("Sync task queued",
		"task_id", task.ID,
		"type", task.Type.String(),
		"coordinate", task.Queue,
		"seq", task.Seq,
	)
	return &Submission{TaskID: task.ID, Future: en.future}, nil
}

// Run restores persisted tasks and dispatches them until ctx is cancelled
// Задачи в полете дорабатывают; незавершенные по отмене возвращаются в очередь.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	if err := e.restore(ctx); err != nil {
		return err
	}

	e.logger.Info("Sync engine started",
		"concurrency", e.cfg.Concurrency,
		"max_attempts", e.cfg.MaxAttempts,
		"pending", e.PendingSync(),
	)

	g, gctx := errgroup.WithContext(ctx)
	for {
		wakeAt := e.dispatch(gctx, g)

		var timer *time.Timer
		var fire <-chan time.Time
		if !wakeAt.IsZero() {
			timer = time.NewTimer(wakeAt.Sub(e.now()))
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			_ = g.Wait()
			e.logger.Info("Sync engine stopped", "pending", e.PendingSync())
			return nil
		case <-e.wake:
		case <-fire:
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

// restore поднимает задачи из хранилища: InFlight снова Queued, dead letter откладываются.
func (e *Engine) restore(ctx context.Context) error {
	tasks, err := e.store.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore sync tasks: %w", err)
	}

	e.mu.Lock()
	known := make(map[string]bool)
	for _, lane := range e.lanes {
		for _, en := range lane {
			known[en.task.ID] = true
		}
	}
	for _, dl := range e.deadLetters {
		known[dl.ID] = true
	}

	var requeued []*models.SyncTask
	restored := 0
	for _, t := range tasks {
		if known[t.ID] {
			continue
		}
		switch t.State {
		case models.TaskDeadLetter:
			e.deadLetters = append(e.deadLetters, *t)
			continue
		case models.TaskInFlight:
			t.State = models.TaskQueued
			requeued = append(requeued, t)
		case models.TaskQueued, models.TaskRetryWait:
		default:
			continue
		}
		e.enqueueLocked(&entry{task: t, future: async.NewFuture[any]()})
		restored++
	}
	for _, lane := range e.lanes {
		sort.SliceStable(lane, func(i, j int) bool { return lane[i].task.Seq < lane[j].task.Seq })
	}
	e.mu.Unlock()

	for _, t := range requeued {
		e.save(ctx, t)
	}
	if restored > 0 {
		e.logger.Info("Sync tasks restored", "count", restored, "dead_letters", len(e.DeadLetters()))
	}
	return nil
}

// dispatch запускает головы свободных очередей и возвращает время ближайшего повтора.
func (e *Engine) dispatch(ctx context.Context, g *errgroup.Group) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]string, 0, len(e.lanes))
	for key := range e.lanes {
		if e.busy[key] == nil {
			keys = append(keys, key)
		}
	}
	// раньше поставленные задачи запускаются первыми
	sort.Slice(keys, func(i, j int) bool {
		return e.lanes[keys[i]][0].task.Seq < e.lanes[keys[j]][0].task.Seq
	})

	now := e.now()
	var wakeAt time.Time
	for _, key := range keys {
		head := e.lanes[key][0]
		if head.task.State == models.TaskRetryWait && head.task.NextAttemptAt.After(now) {
			if wakeAt.IsZero() || head.task.NextAttemptAt.Before(wakeAt) {
				wakeAt = head.task.NextAttemptAt
			}
			continue
		}
		if !e.sem.TryAcquire(1) {
			break
		}
		head.task.State = models.TaskInFlight
		head.task.UpdatedAt = now.UTC()
		e.busy[key] = head
		snapshot := *head.task

		g.Go(func() error {
			e.execute(ctx, key, head, snapshot)
			return nil
		})
	}
	return wakeAt
}

func (e *Engine) execute(ctx context.Context, key string, en *entry, task models.SyncTask) {
	defer func() {
		e.sem.Release(1)
		e.signal()
	}()
	// результат фиксируется даже при остановке движка
	bg := context.WithoutCancel(ctx)

	e.save(bg, &task)
	e.logger.Debug("Sync task started",
		"task_id", task.ID,
		"type", task.Type.String(),
		"coordinate", key,
		"attempt", task.Attempts+1,
	)

	response, err := e.perform(ctx, task)
	switch {
	case err == nil:
		e.applying.RLock()
		if e.isCancelled(en) {
			e.applying.RUnlock()
			e.finish(bg, key, en, nil, nil)
			return
		}
		applyErr := e.applier.Apply(bg, task, response)
		e.applying.RUnlock()
		if applyErr != nil {
			e.finish(bg, key, en, fmt.Errorf("failed to apply %s result: %w", task.Type, applyErr), nil)
			return
		}
		e.finish(bg, key, en, nil, response)
	case ctx.Err() != nil:
		e.requeue(bg, key, en)
	case errors.Is(err, transport.ErrRejected):
		e.finish(bg, key, en, fmt.Errorf("%s rejected: %w", task.Type, err), nil)
	default:
		e.fail(bg, key, en, err)
	}
}

// finish удаляет задачу и сообщает результат.
func (e *Engine) finish(ctx context.Context, key string, en *entry, err error, response any) {
	e.mu.Lock()
	e.removeLocked(key, en)
	cancelled := en.cancelled
	if err == nil {
		en.task.State = models.TaskCompleted
	}
	snapshot := *en.task
	e.mu.Unlock()

	if derr := e.store.DeleteTask(ctx, &snapshot); derr != nil {
		e.logger.Warn("Failed to delete finished sync task", "task_id", snapshot.ID, "error", derr)
	}

	if cancelled {
		e.logger.Debug("Discarding result of cancelled sync task", "task_id", snapshot.ID)
		en.future.Reject(ErrCancelled)
		return
	}

	if err != nil {
		e.logger.Warn("Sync task failed",
			"task_id", snapshot.ID,
			"type", snapshot.Type.String(),
			"coordinate", key,
			"error", err,
		)
		e.callback(err, nil, snapshot)
		en.future.Reject(err)
		return
	}

	e.logger.Debug("Sync task completed",
		"task_id", snapshot.ID,
		"type", snapshot.Type.String(),
		"coordinate", key,
	)
	e.callback(nil, response, snapshot)
	en.future.Resolve(response)
}

// fail считает неудачную попытку: RetryWait с задержкой или dead letter.
func (e *Engine) fail(ctx context.Context, key string, en *entry, cause error) {
	e.mu.Lock()
	if en.cancelled {
		e.mu.Unlock()
		e.finish(ctx, key, en, nil, nil)
		return
	}

	now := e.now().UTC()
	en.task.Attempts++
	en.task.LastError = cause.Error()
	en.task.UpdatedAt = now
	delete(e.busy, key)

	if en.task.Attempts >= e.cfg.MaxAttempts {
		en.task.State = models.TaskDeadLetter
		en.task.NextAttemptAt = time.Time{}
		e.removeLocked(key, en)
		snapshot := *en.task
		e.deadLetters = append(e.deadLetters, snapshot)
		e.mu.Unlock()

		e.save(ctx, &snapshot)
		err := fmt.Errorf("%w: %s after %d attempts: %w", ErrTransportFailure, snapshot.Type, snapshot.Attempts, cause)
		e.logger.Warn("Sync task moved to dead letter",
			"task_id", snapshot.ID,
			"type", snapshot.Type.String(),
			"coordinate", key,
			"attempts", snapshot.Attempts,
			"error", cause,
		)
		e.callback(err, nil, snapshot)
		en.future.Reject(err)
		return
	}

	delay := e.backoff(en.task.Attempts)
	en.task.State = models.TaskRetryWait
	en.task.NextAttemptAt = now.Add(delay)
	snapshot := *en.task
	e.mu.Unlock()

	e.save(ctx, &snapshot)
	e.logger.Info("Sync task will be retried",
		"task_id", snapshot.ID,
		"type", snapshot.Type.String(),
		"attempt", snapshot.Attempts,
		"delay", delay,
		"error", cause,
	)
}

// requeue возвращает задачу, прерванную остановкой движка, без учета попытки.
func (e *Engine) requeue(ctx context.Context, key string, en *entry) {
	e.mu.Lock()
	delete(e.busy, key)
	en.task.State = models.TaskQueued
	snapshot := *en.task
	e.mu.Unlock()

	e.save(ctx, &snapshot)
}

// backoff задержка перед повтором после attempt неудачных попыток.
func (e *Engine) backoff(attempt int) time.Duration {
	b := retry.WithCappedDuration(e.cfg.MaxBackoff, retry.NewExponential(e.cfg.BaseBackoff))
	var d time.Duration
	for i := 0; i < attempt; i++ {
		d, _ = b.Next()
	}
	return d
}

// CancelBranch удаляет ожидающие задачи локальной ветки без вызова callback.
// Задача в полете дорабатывает, но ее результат отбрасывается.
// Возвращается только после завершения начатых Apply, так что после нее
// в ветку уже ничего не пишется.
func (e *Engine) CancelBranch(ctx context.Context, branch string) (int, error) {
	e.mu.Lock()
	var removed []*entry
	marked := 0
	for key, lane := range e.lanes {
		kept := lane[:0]
		for _, en := range lane {
			switch {
			case en.task.Args.LocalBranch != branch:
				kept = append(kept, en)
			case e.busy[key] == en:
				en.cancelled = true
				marked++
				kept = append(kept, en)
			default:
				en.task.State = models.TaskCancelled
				removed = append(removed, en)
				e.pending--
			}
		}
		if len(kept) == 0 {
			delete(e.lanes, key)
		} else {
			e.lanes[key] = kept
		}
	}

	var dead []models.SyncTask
	keptDead := e.deadLetters[:0]
	for _, t := range e.deadLetters {
		if t.Args.LocalBranch == branch {
			dead = append(dead, t)
			continue
		}
		keptDead = append(keptDead, t)
	}
	e.deadLetters = keptDead
	if len(removed) > 0 {
		e.notifyChangedLocked()
	}
	e.mu.Unlock()

	if marked > 0 {
		e.applying.Lock()
		e.applying.Unlock() //nolint:staticcheck // барьер для Apply в полете
	}

	var firstErr error
	for _, en := range removed {
		if err := e.store.DeleteTask(ctx, en.task); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to delete cancelled task: %w", err)
		}
		en.future.Reject(ErrCancelled)
	}
	for i := range dead {
		if err := e.store.DeleteTask(ctx, &dead[i]); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to delete dead letter: %w", err)
		}
	}
	e.signal()

	if len(removed)+marked > 0 {
		e.logger.Info("Sync tasks cancelled", "branch", branch, "queued", len(removed), "in_flight", marked)
	}
	return len(removed) + marked, firstErr
}

// PendingSync returns the number of queued, retrying and in-flight tasks
func (e *Engine) PendingSync() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// WaitIdle blocks until no work remains or ctx is done
func (e *Engine) WaitIdle(ctx context.Context) error {
	for {
		e.mu.Lock()
		if e.pending == 0 {
			e.mu.Unlock()
			return nil
		}
		ch := e.changed
		e.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// DeadLetters returns tasks that exhausted their attempts
func (e *Engine) DeadLetters() []models.SyncTask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.SyncTask(nil), e.deadLetters...)
}

// Tasks returns a snapshot of outstanding tasks ordered by sequence
func (e *Engine) Tasks() []models.SyncTask {
	e.mu.Lock()
	out := make([]models.SyncTask, 0, e.pending)
	for _, lane := range e.lanes {
		for _, en := range lane {
			out = append(out, *en.task)
		}
	}
	e.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func (e *Engine) enqueueLocked(en *entry) {
	key := en.task.Queue
	e.lanes[key] = append(e.lanes[key], en)
	e.pending++
	e.notifyChangedLocked()
}

func (e *Engine) removeLocked(key string, en *entry) {
	if e.busy[key] == en {
		delete(e.busy, key)
	}
	lane := e.lanes[key]
	for i, cur := range lane {
		if cur == en {
			lane = append(lane[:i], lane[i+1:]...)
			e.pending--
			e.notifyChangedLocked()
			break
		}
	}
	if len(lane) == 0 {
		delete(e.lanes, key)
	} else {
		e.lanes[key] = lane
	}
}

func (e *Engine) isCancelled(en *entry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return en.cancelled
}

func (e *Engine) notifyChangedLocked() {
	close(e.changed)
	e.changed = make(chan struct{})
}

func (e *Engine) signal() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *Engine) save(ctx context.Context, task *models.SyncTask) {
	if err := e.store.SaveTask(ctx, task); err != nil {
		e.logger.Warn("Failed to persist sync task", "task_id", task.ID, "state", task.State.String(), "error", err)
	}
}
