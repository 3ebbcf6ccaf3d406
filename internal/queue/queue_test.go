package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
	"github.com/remitflow/escrow-api-service/tests/mocks"
)

func TestEmitContributionMadeEvent(t *testing.T) {
	metrics.Init(0)
	mockClient := new(mocks.QueueClient)
	queues := &Queues{EventQueueClient: mockClient}

	var sent string
	mockClient.On("SendMessage", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.String(1)
	}).Return(nil)

	event := client.NewContributionMadeEvent(1, "0x3333333333333333333333333333333333333333", 4000, 10000)
	err := queues.EmitContributionMadeEvent(context.Background(), event)
	require.NoError(t, err)

	var decoded client.ContributionMadeEvent
	require.NoError(t, json.Unmarshal([]byte(sent), &decoded))
	assert.Equal(t, client.ContributionMadeEventType, decoded.EventType)
	assert.Equal(t, uint64(1), decoded.RemittanceID)
	assert.Equal(t, uint64(10000), decoded.NewTotal)
}

func TestEmitEventSendFailure(t *testing.T) {
	metrics.Init(0)
	mockClient := new(mocks.QueueClient)
	queues := &Queues{EventQueueClient: mockClient}

	mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	mockClient.On("GetQueueName").Return("escrow_event_queue")

	event := client.NewRemittanceCreatedEvent(0, "0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222", 10000, "school fees")
	err := queues.EmitRemittanceCreatedEvent(context.Background(), event)
	assert.Error(t, err)
}

func TestIsConnectionHealthy(t *testing.T) {
	mockClient := new(mocks.QueueClient)
	queues := &Queues{EventQueueClient: mockClient}

	mockClient.On("Ping").Return(nil).Once()
	assert.NoError(t, queues.IsConnectionHealthy())

	mockClient.On("Ping").Return(errors.New("connection closed")).Once()
	assert.Error(t, queues.IsConnectionHealthy())
}
