package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// maxWaitSeconds предел long polling в SQS
const maxWaitSeconds = 20

var _ Queue = (*SQSQueue)(nil)

//go:generate moq -out sqsapi_mock.go . sqsAPI

// sqsAPI методы клиента SQS, которые использует очередь
type sqsAPI interface {
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessageBatch(ctx context.Context, params *sqs.DeleteMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageBatchOutput, error)
}

// SQSConfig параметры подключения к SQS
type SQSConfig struct {
	Region          string
	Endpoint        string // пустой для AWS, иначе совместимый сервис (localstack, elasticmq)
	AccessKeyID     string
	SecretAccessKey string
}

// NewSQSClient создает клиент SQS. Без явных ключей используется цепочка учетных данных AWS по умолчанию.
func NewSQSClient(ctx context.Context, cfg SQSConfig) (*sqs.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// SQSQueue очередь поверх Amazon SQS: доставка at-least-once, сообщение удаляется сразу после получения.
type SQSQueue struct {
	client sqsAPI
	logger *slog.Logger
}

// NewSQSQueue creates a queue backed by the SQS client.
func NewSQSQueue(client sqsAPI, logger *slog.Logger) *SQSQueue {
	return &SQSQueue{client: client, logger: logger}
}

// SendMessage implements Queue. Сообщения отправляются пакетами по MaxBatchSize.
func (q *SQSQueue) SendMessage(ctx context.Context, queueURL string, messages []Message, delaySeconds int, groupID string) ([]string, error) {
	if err := validateSend(messages, delaySeconds); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(messages))
	for start := 0; start < len(messages); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(messages))

		entries := make([]types.SendMessageBatchRequestEntry, 0, end-start)
		for i, m := range messages[start:end] {
			entry := types.SendMessageBatchRequestEntry{
				Id:                aws.String(strconv.Itoa(i)),
				MessageBody:       aws.String(m.Body),
				MessageAttributes: toAttributeValues(m.Attributes),
			}
			// FIFO очереди не принимают задержку на уровне сообщения
			if groupID != "" {
				entry.MessageGroupId = aws.String(groupID)
				if m.ID != "" {
					entry.MessageDeduplicationId = aws.String(m.ID)
				}
			} else {
				entry.DelaySeconds = int32(delaySeconds)
			}
			entries = append(entries, entry)
		}

		out, err := q.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: aws.String(queueURL),
			Entries:  entries,
		})
		if err != nil {
			return ids, fmt.Errorf("failed to send message batch: %w", err)
		}
		for _, s := range out.Successful {
			ids = append(ids, aws.ToString(s.MessageId))
		}
		if len(out.Failed) > 0 {
			f := out.Failed[0]
			return ids, fmt.Errorf("%w: %d failed, first %s: %s", ErrPartialSend, len(out.Failed), aws.ToString(f.Code), aws.ToString(f.Message))
		}
	}

	q.logger.Debug("Messages sent to SQS", "queue", queueURL, "count", len(ids))
	return ids, nil
}

// ReceiveMessage implements Queue. Использует long polling и удаляет полученные сообщения.
func (q *SQSQueue) ReceiveMessage(ctx context.Context, queueURL string, waitTime time.Duration, maxMessages int, attribute string) ([]Message, error) {
	wait := min(int32(waitTime/time.Second), maxWaitSeconds)

	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: int32(clampBatch(maxMessages)),
		WaitTimeSeconds:     wait,
		MessageSystemAttributeNames: []types.MessageSystemAttributeName{
			types.MessageSystemAttributeNameSentTimestamp,
			types.MessageSystemAttributeNameMessageGroupId,
		},
	}
	if attribute != "" {
		input.MessageAttributeNames = []string{attribute}
	}

	out, err := q.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]Message, 0, len(out.Messages))
	deletes := make([]types.DeleteMessageBatchRequestEntry, 0, len(out.Messages))
	for i, m := range out.Messages {
		messages = append(messages, fromSQSMessage(m))
		deletes = append(deletes, types.DeleteMessageBatchRequestEntry{
			Id:            aws.String(strconv.Itoa(i)),
			ReceiptHandle: m.ReceiptHandle,
		})
	}

	if len(deletes) > 0 {
		// при неудачном удалении сообщение придет повторно, это допустимо для at-least-once
		if _, err := q.client.DeleteMessageBatch(ctx, &sqs.DeleteMessageBatchInput{
			QueueUrl: aws.String(queueURL),
			Entries:  deletes,
		}); err != nil {
			q.logger.Warn("Failed to delete received messages", "queue", queueURL, "error", err)
		}
	}

	return messages, nil
}

func toAttributeValues(attrs map[string]string) map[string]types.MessageAttributeValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]types.MessageAttributeValue, len(attrs))
	for k, v := range attrs {
		out[k] = types.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
	}
	return out
}

func fromSQSMessage(m types.Message) Message {
	msg := Message{
		ID:      aws.ToString(m.MessageId),
		Body:    aws.ToString(m.Body),
		GroupID: m.Attributes[string(types.MessageSystemAttributeNameMessageGroupId)],
	}
	if ts, err := strconv.ParseInt(m.Attributes[string(types.MessageSystemAttributeNameSentTimestamp)], 10, 64); err == nil {
		msg.SentAt = time.UnixMilli(ts)
	}
	if len(m.MessageAttributes) > 0 {
		msg.Attributes = make(map[string]string, len(m.MessageAttributes))
		for k, v := range m.MessageAttributes {
			msg.Attributes[k] = aws.ToString(v.StringValue)
		}
	}
	return msg
}
