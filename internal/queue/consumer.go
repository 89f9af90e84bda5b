package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// defaultSeenLimit сколько последних id сообщений помнит Consumer
const defaultSeenLimit = 10000

// Handler обрабатывает одно сообщение. Ошибка обработки логируется,
// сообщение считается обработанным: очередь уже удалила его при получении.
type Handler func(ctx context.Context, msg Message) error

// Consumer получает сообщения и отбрасывает повторные доставки по id сообщения.
type Consumer struct {
	queue       Queue
	handler     Handler
	logger      *slog.Logger
	seen        map[string]struct{}
	queueURL    string
	attribute   string
	order       []string // кольцо id в порядке получения для вытеснения
	waitTime    time.Duration
	maxMessages int
	seenLimit   int
	next        int
}

// NewConsumer creates a consumer of queueURL.
func NewConsumer(q Queue, queueURL string, handler Handler, logger *slog.Logger) *Consumer {
	return &Consumer{
		queue:       q,
		handler:     handler,
		logger:      logger,
		seen:        make(map[string]struct{}),
		queueURL:    queueURL,
		attribute:   AllAttributes,
		waitTime:    20 * time.Second,
		maxMessages: MaxBatchSize,
		seenLimit:   defaultSeenLimit,
	}
}

// WithWaitTime sets the long polling wait time of a single receive.
func (c *Consumer) WithWaitTime(d time.Duration) *Consumer {
	c.waitTime = d
	return c
}

// Poll выполняет одно получение и возвращает число обработанных (не повторных) сообщений.
func (c *Consumer) Poll(ctx context.Context) (int, error) {
	messages, err := c.queue.ReceiveMessage(ctx, c.queueURL, c.waitTime, c.maxMessages, c.attribute)
	if err != nil {
		return 0, fmt.Errorf("failed to receive from %s: %w", c.queueURL, err)
	}

	handled := 0
	for _, msg := range messages {
		if c.markSeen(msg.ID) {
			c.logger.Debug("Skipping duplicate delivery", "queue", c.queueURL, "message_id", msg.ID)
			continue
		}
		if err := c.handler(ctx, msg); err != nil {
			c.logger.Warn("Message handler failed", "queue", c.queueURL, "message_id", msg.ID, "error", err)
		}
		handled++
	}
	return handled, nil
}

// Run опрашивает очередь до отмены ctx.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Queue consumer started", "queue", c.queueURL)
	defer c.logger.Info("Queue consumer stopped", "queue", c.queueURL)

	for {
		if _, err := c.Poll(ctx); err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Warn("Queue poll failed", "queue", c.queueURL, "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return nil
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// markSeen запоминает id и сообщает, встречался ли он раньше.
func (c *Consumer) markSeen(id string) bool {
	if _, ok := c.seen[id]; ok {
		return true
	}
	if len(c.order) < c.seenLimit {
		c.order = append(c.order, id)
	} else {
		delete(c.seen, c.order[c.next])
		c.order[c.next] = id
		c.next = (c.next + 1) % c.seenLimit
	}
	c.seen[id] = struct{}{}
	return false
}
