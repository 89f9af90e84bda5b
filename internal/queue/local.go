package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Queue = (*LocalQueue)(nil)

type localEntry struct {
	visibleAt time.Time
	msg       Message
}

// LocalQueue очередь в памяти процесса. Отправка сразу будит ожидающих получателей,
// сообщение удаляется при получении.
type LocalQueue struct {
	logger *slog.Logger
	queues map[string][]localEntry
	signal chan struct{} // закрывается при каждой отправке
	mu     sync.Mutex
}

// NewLocalQueue creates an empty in-process queue.
func NewLocalQueue(logger *slog.Logger) *LocalQueue {
	return &LocalQueue{
		logger: logger,
		queues: make(map[string][]localEntry),
		signal: make(chan struct{}),
	}
}

// SendMessage implements Queue.
func (q *LocalQueue) SendMessage(_ context.Context, queueURL string, messages []Message, delaySeconds int, groupID string) ([]string, error) {
	if err := validateSend(messages, delaySeconds); err != nil {
		return nil, err
	}

	now := time.Now()
	visibleAt := now.Add(time.Duration(delaySeconds) * time.Second)
	ids := make([]string, 0, len(messages))

	q.mu.Lock()
	for _, m := range messages {
		m.ID = uuid.New().String()
		m.SentAt = now
		if groupID != "" {
			m.GroupID = groupID
		}
		q.queues[queueURL] = append(q.queues[queueURL], localEntry{visibleAt: visibleAt, msg: m})
		ids = append(ids, m.ID)
	}
	close(q.signal)
	q.signal = make(chan struct{})
	q.mu.Unlock()

	q.logger.Debug("Messages queued", "queue", queueURL, "count", len(ids), "delay", delaySeconds)
	return ids, nil
}

// ReceiveMessage implements Queue.
func (q *LocalQueue) ReceiveMessage(ctx context.Context, queueURL string, waitTime time.Duration, maxMessages int, attribute string) ([]Message, error) {
	limit := clampBatch(maxMessages)
	deadline := time.Now().Add(waitTime)

	for {
		q.mu.Lock()
		out, nextVisible := q.takeLocked(queueURL, limit, attribute)
		signal := q.signal
		q.mu.Unlock()

		if len(out) > 0 {
			return out, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return []Message{}, nil
		}
		if !nextVisible.IsZero() {
			if d := time.Until(nextVisible); d < remaining {
				remaining = d
			}
		}

		timer := time.NewTimer(remaining)
		select {
		case <-signal:
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
		timer.Stop()
	}
}

// takeLocked забирает видимые сообщения по порядку отправки.
// Возвращает также момент, когда станет видимым ближайшее отложенное сообщение.
func (q *LocalQueue) takeLocked(queueURL string, limit int, attribute string) ([]Message, time.Time) {
	now := time.Now()
	entries := q.queues[queueURL]

	var (
		out         []Message
		rest        = entries[:0]
		nextVisible time.Time
	)
	for _, e := range entries {
		if len(out) < limit && !e.visibleAt.After(now) {
			m := e.msg
			m.Attributes = selectAttributes(m.Attributes, attribute)
			out = append(out, m)
			continue
		}
		if e.visibleAt.After(now) && (nextVisible.IsZero() || e.visibleAt.Before(nextVisible)) {
			nextVisible = e.visibleAt
		}
		rest = append(rest, e)
	}

	if len(rest) == 0 {
		delete(q.queues, queueURL)
	} else {
		q.queues[queueURL] = rest
	}
	return out, nextVisible
}

// Len returns the number of messages waiting in the queue, delayed ones included.
func (q *LocalQueue) Len(queueURL string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.queues[queueURL])
}
