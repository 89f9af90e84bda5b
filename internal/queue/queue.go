// Package queue provides at-least-once message delivery with an in-process and an SQS backed implementation.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Queue errors
var (
	// ErrInvalidDelay задержка вне диапазона [0, MaxDelaySeconds]
	ErrInvalidDelay = errors.New("delay seconds out of range")

	// ErrEmptyBatch попытка отправить пустой набор сообщений
	ErrEmptyBatch = errors.New("no messages to send")

	// ErrPartialSend часть сообщений пакета не принята очередью
	ErrPartialSend = errors.New("some messages were not sent")
)

const (
	// MaxDelaySeconds максимальная задержка доставки сообщения
	MaxDelaySeconds = 900

	// MaxBatchSize максимум сообщений в одном запросе отправки или получения
	MaxBatchSize = 10

	// AllAttributes запрашивает все атрибуты сообщения при получении
	AllAttributes = "All"
)

// Message сообщение очереди. ID назначается очередью при отправке
// и сохраняется при повторной доставке.
type Message struct {
	SentAt     time.Time         `json:"sent_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
	ID         string            `json:"id"`
	GroupID    string            `json:"group_id,omitempty"`
	Body       string            `json:"body"`
}

//go:generate moq -out queue_mock.go . Queue

// Queue контракт очереди доставки.
type Queue interface {
	// SendMessage отправляет сообщения с задержкой delaySeconds и возвращает их id
	SendMessage(ctx context.Context, queueURL string, messages []Message, delaySeconds int, groupID string) ([]string, error)

	// ReceiveMessage ждет до waitTime и возвращает не более maxMessages сообщений.
	// attribute ограничивает набор возвращаемых атрибутов; пустая строка означает без атрибутов.
	ReceiveMessage(ctx context.Context, queueURL string, waitTime time.Duration, maxMessages int, attribute string) ([]Message, error)
}

func validateSend(messages []Message, delaySeconds int) error {
	if len(messages) == 0 {
		return ErrEmptyBatch
	}
	if delaySeconds < 0 || delaySeconds > MaxDelaySeconds {
		return fmt.Errorf("%w: %d", ErrInvalidDelay, delaySeconds)
	}
	return nil
}

func clampBatch(n int) int {
	if n <= 0 {
		return 1
	}
	if n > MaxBatchSize {
		return MaxBatchSize
	}
	return n
}

// selectAttributes оставляет только запрошенные атрибуты.
func selectAttributes(attrs map[string]string, attribute string) map[string]string {
	switch {
	case attribute == "" || len(attrs) == 0:
		return nil
	case attribute == AllAttributes:
		out := make(map[string]string, len(attrs))
		for k, v := range attrs {
			out[k] = v
		}
		return out
	default:
		v, ok := attrs[attribute]
		if !ok {
			return nil
		}
		return map[string]string{attribute: v}
	}
}
