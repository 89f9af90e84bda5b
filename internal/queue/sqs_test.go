package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQSQueue_SendBatches(t *testing.T) {
	sent := 0
	mock := &sqsAPIMock{
		SendMessageBatchFunc: func(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
			out := &sqs.SendMessageBatchOutput{}
			for _, e := range params.Entries {
				sent++
				out.Successful = append(out.Successful, types.SendMessageBatchResultEntry{
					Id:        e.Id,
					MessageId: aws.String(fmt.Sprintf("m-%d", sent)),
				})
			}
			return out, nil
		},
	}
	q := NewSQSQueue(mock, testLogger())

	messages := make([]Message, 23)
	for i := range messages {
		messages[i] = Message{Body: fmt.Sprintf("body-%d", i), Attributes: map[string]string{"n": fmt.Sprint(i)}}
	}

	ids, err := q.SendMessage(context.Background(), "https://sqs/queue", messages, 30, "")
	require.NoError(t, err)
	assert.Len(t, ids, 23)
	assert.Equal(t, "m-23", ids[22])

	calls := mock.SendMessageBatchCalls()
	require.Len(t, calls, 3)
	assert.Len(t, calls[0].Params.Entries, 10)
	assert.Len(t, calls[2].Params.Entries, 3)
	assert.Equal(t, "https://sqs/queue", aws.ToString(calls[0].Params.QueueUrl))

	first := calls[0].Params.Entries[0]
	assert.Equal(t, int32(30), first.DelaySeconds)
	assert.Nil(t, first.MessageGroupId)
	assert.Equal(t, "0", aws.ToString(first.MessageAttributes["n"].StringValue))
}

func TestSQSQueue_SendFIFO(t *testing.T) {
	mock := &sqsAPIMock{
		SendMessageBatchFunc: func(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
			return &sqs.SendMessageBatchOutput{
				Successful: []types.SendMessageBatchResultEntry{{Id: params.Entries[0].Id, MessageId: aws.String("m-1")}},
			}, nil
		},
	}
	q := NewSQSQueue(mock, testLogger())

	_, err := q.SendMessage(context.Background(), "q.fifo", []Message{{ID: "dedup-1", Body: "x"}}, 10, "alice/master/doc-1")
	require.NoError(t, err)

	entry := mock.SendMessageBatchCalls()[0].Params.Entries[0]
	assert.Equal(t, "alice/master/doc-1", aws.ToString(entry.MessageGroupId))
	assert.Equal(t, "dedup-1", aws.ToString(entry.MessageDeduplicationId))
	assert.Zero(t, entry.DelaySeconds)
}

func TestSQSQueue_SendFailures(t *testing.T) {
	q := NewSQSQueue(&sqsAPIMock{
		SendMessageBatchFunc: func(context.Context, *sqs.SendMessageBatchInput, ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
			return &sqs.SendMessageBatchOutput{
				Failed: []types.BatchResultErrorEntry{{Id: aws.String("0"), Code: aws.String("InvalidMessageContents"), Message: aws.String("bad")}},
			}, nil
		},
	}, testLogger())

	_, err := q.SendMessage(context.Background(), "q", []Message{{Body: "x"}}, 0, "")
	assert.ErrorIs(t, err, ErrPartialSend)

	_, err = q.SendMessage(context.Background(), "q", []Message{{Body: "x"}}, MaxDelaySeconds+1, "")
	assert.ErrorIs(t, err, ErrInvalidDelay)

	boom := errors.New("network down")
	q = NewSQSQueue(&sqsAPIMock{
		SendMessageBatchFunc: func(context.Context, *sqs.SendMessageBatchInput, ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
			return nil, boom
		},
	}, testLogger())
	_, err = q.SendMessage(context.Background(), "q", []Message{{Body: "x"}}, 0, "")
	assert.ErrorIs(t, err, boom)
}

func TestSQSQueue_ReceiveDeletes(t *testing.T) {
	mock := &sqsAPIMock{
		ReceiveMessageFunc: func(_ context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			return &sqs.ReceiveMessageOutput{Messages: []types.Message{
				{
					MessageId:     aws.String("m-1"),
					Body:          aws.String("hello"),
					ReceiptHandle: aws.String("r-1"),
					Attributes:    map[string]string{"SentTimestamp": "1700000000000", "MessageGroupId": "g"},
					MessageAttributes: map[string]types.MessageAttributeValue{
						"object_id": {DataType: aws.String("String"), StringValue: aws.String("doc-1")},
					},
				},
				{MessageId: aws.String("m-2"), Body: aws.String("world"), ReceiptHandle: aws.String("r-2")},
			}}, nil
		},
		DeleteMessageBatchFunc: func(context.Context, *sqs.DeleteMessageBatchInput, ...func(*sqs.Options)) (*sqs.DeleteMessageBatchOutput, error) {
			return &sqs.DeleteMessageBatchOutput{}, nil
		},
	}
	q := NewSQSQueue(mock, testLogger())

	got, err := q.ReceiveMessage(context.Background(), "q", time.Minute, 50, "object_id")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m-1", got[0].ID)
	assert.Equal(t, "g", got[0].GroupID)
	assert.Equal(t, time.UnixMilli(1700000000000), got[0].SentAt)
	assert.Equal(t, map[string]string{"object_id": "doc-1"}, got[0].Attributes)

	in := mock.ReceiveMessageCalls()[0].Params
	assert.Equal(t, int32(20), in.WaitTimeSeconds)
	assert.Equal(t, int32(10), in.MaxNumberOfMessages)
	assert.Equal(t, []string{"object_id"}, in.MessageAttributeNames)

	deletes := mock.DeleteMessageBatchCalls()
	require.Len(t, deletes, 1)
	require.Len(t, deletes[0].Params.Entries, 2)
	assert.Equal(t, "r-2", aws.ToString(deletes[0].Params.Entries[1].ReceiptHandle))
}

func TestSQSQueue_ReceiveEmpty(t *testing.T) {
	mock := &sqsAPIMock{
		ReceiveMessageFunc: func(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			return &sqs.ReceiveMessageOutput{}, nil
		},
	}
	q := NewSQSQueue(mock, testLogger())

	got, err := q.ReceiveMessage(context.Background(), "q", 0, 1, "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, mock.DeleteMessageBatchCalls())
}
