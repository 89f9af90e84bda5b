package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/docsync/internal/client/repository"
	syncengine "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/queue"
)

// notification тело сообщения NotifyData
type notification struct {
	ObjectID string `json:"object_id"`
	Head     string `json:"head"`
}

type syncView struct {
	DeadLetters []models.SyncTask
	Pending     int
	Online      bool
}

// runPull получает новые коммиты документа из удаленной ветки
func (c *Cli) runPull(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: docsync pull <id> <owner/branch>", ErrUsage)
	}
	remote, err := parseRemote(args[1], args[0])
	if err != nil {
		return err
	}

	branch := c.branches.Current()
	sub, err := c.pull(ctx, branch, remote)
	if err != nil {
		return err
	}
	if err := c.await(ctx, "Pull", sub); err != nil {
		return err
	}

	return c.reportPending(ctx, branch)
}

// pull ставит задачу с коммитами после последней полученной головы
func (c *Cli) pull(ctx context.Context, branch string, remote models.Coordinate) (*syncengine.Submission, error) {
	var start string
	doc, err := c.repo.Get(ctx, branch, remote.ObjectID)
	switch {
	case err == nil:
		start = doc.GetPulls().GetPullInformation(remote)
	case errors.Is(err, repository.ErrNotFound):
		// документа еще нет, получаем всю цепочку
	default:
		return nil, err
	}

	sub, err := c.engine.Pull(ctx, branch, remote, start, "")
	if err != nil {
		return nil, fmt.Errorf("failed to queue pull: %w", err)
	}
	return sub, nil
}

// runPush отправляет неподтвержденные коммиты и уведомляет подписчиков
func (c *Cli) runPush(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: docsync push <id> <owner/branch>", ErrUsage)
	}
	remote, err := parseRemote(args[1], args[0])
	if err != nil {
		return err
	}

	branch := c.branches.Current()
	commits, err := c.repo.PendingPush(ctx, branch, remote.ObjectID, remote)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		c.io.Println("Nothing to push.")
		return nil
	}

	sub, err := c.engine.Push(ctx, branch, remote, commits)
	if err != nil {
		return fmt.Errorf("failed to queue push: %w", err)
	}
	c.io.Printf("Pushing %d commit(s) to %s\n", len(commits), remote.Key())
	if err := c.await(ctx, "Push", sub); err != nil {
		return err
	}

	if c.queueURL == "" {
		return nil
	}
	payload, err := json.Marshal(notification{ObjectID: remote.ObjectID, Head: commits[len(commits)-1].ID})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	// коммиты уже отправлены; без уведомления подписчики получат их при следующем pull
	note, err := c.engine.NotifyData(ctx, c.queueURL, remote, payload, nil)
	if err != nil {
		c.logger.Warn("Failed to queue notification", "remote", remote.Key(), "error", err)
		return nil
	}
	// уведомление дожидается здесь же: после команды движок останавливается
	if err := c.await(ctx, "Notify", note); err != nil {
		c.logger.Warn("Notification failed", "remote", remote.Key(), "error", err)
		c.io.Printf("⚠️  %v\n", err)
	}
	return nil
}

// await ждет результат задачи, если движок запущен
func (c *Cli) await(ctx context.Context, what string, sub *syncengine.Submission) error {
	if !c.online {
		c.io.Printf("%s queued (task %s). Run 'docsync login' to synchronize.\n", what, sub.TaskID)
		return nil
	}
	if _, err := sub.Future.Wait(ctx); err != nil {
		return fmt.Errorf("%s failed: %w", what, err)
	}
	c.io.Printf("✓ %s completed\n", what)
	return nil
}

// reportPending сообщает о конфликтующих слияниях, ожидающих решения
func (c *Cli) reportPending(ctx context.Context, branch string) error {
	prs, err := c.ledger.List(ctx, branch)
	if err != nil {
		return err
	}
	pending := 0
	for _, pr := range prs {
		if pr.Status == models.PullRequestPending {
			pending++
		}
	}
	if pending > 0 {
		c.io.Printf("⚠️  %d pull request(s) need review. Run 'docsync prs'.\n", pending)
	}
	return nil
}

// runSync ждет завершения всех задач и показывает оставшиеся
func (c *Cli) runSync(ctx context.Context) error {
	if c.online {
		c.io.Println("Waiting for sync tasks...")
		if err := c.engine.WaitIdle(ctx); err != nil {
			return fmt.Errorf("sync interrupted: %w", err)
		}
	}
	return c.render("sync", syncTemplate, syncView{
		DeadLetters: c.engine.DeadLetters(),
		Pending:     c.engine.PendingSync(),
		Online:      c.online,
	})
}

// HandleNotification ставит pull объекта, о новых коммитах которого сообщил другой клиент.
// Подходит как queue.Handler.
func (c *Cli) HandleNotification(ctx context.Context, msg queue.Message) error {
	remote := models.Coordinate{
		Owner:    msg.Attributes[syncengine.AttrOwner],
		Branch:   msg.Attributes[syncengine.AttrBranch],
		ObjectID: msg.Attributes[syncengine.AttrObjectID],
	}
	if err := remote.Validate(); err != nil || remote.ObjectID == "" {
		return fmt.Errorf("%w: notification %s", models.ErrInvalidCoordinate, msg.ID)
	}

	sub, err := c.pull(ctx, c.branches.Current(), remote)
	if err != nil {
		return err
	}
	c.logger.Info("Pull queued by notification", "remote", remote.Key(), "task_id", sub.TaskID)
	return nil
}
