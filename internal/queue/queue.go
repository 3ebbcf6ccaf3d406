package queue

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
)

// EventEmitter publishes escrow domain events for off-chain observers.
// Emission is best-effort: it happens after the state change has committed
// and a failure never rolls the operation back.
type EventEmitter interface {
	EmitRemittanceCreatedEvent(ctx context.Context, event client.RemittanceCreatedEvent) error
	EmitContributionMadeEvent(ctx context.Context, event client.ContributionMadeEvent) error
	EmitFundsReleasedEvent(ctx context.Context, event client.FundsReleasedEvent) error
	EmitRemittanceCancelledEvent(ctx context.Context, event client.RemittanceCancelledEvent) error
}

type Queues struct {
	EventQueueClient client.QueueClient
}

func New(cfg *config.QueueConfig) *Queues {
	eventQueueClient, err := client.NewQueueClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating event queue client")
	}
	return &Queues{
		EventQueueClient: eventQueueClient,
	}
}

// IsConnectionHealthy reports whether the underlying queue connection is
// still usable. Consumed by the health check cron.
func (q *Queues) IsConnectionHealthy() error {
	return q.EventQueueClient.Ping()
}

func (q *Queues) Stop() {
	if err := q.EventQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping event queue client")
	}
}

func (q *Queues) EmitRemittanceCreatedEvent(ctx context.Context, event client.RemittanceCreatedEvent) error {
	return q.sendEvent(ctx, event)
}

func (q *Queues) EmitContributionMadeEvent(ctx context.Context, event client.ContributionMadeEvent) error {
	return q.sendEvent(ctx, event)
}

func (q *Queues) EmitFundsReleasedEvent(ctx context.Context, event client.FundsReleasedEvent) error {
	return q.sendEvent(ctx, event)
}

func (q *Queues) EmitRemittanceCancelledEvent(ctx context.Context, event client.RemittanceCancelledEvent) error {
	return q.sendEvent(ctx, event)
}

func (q *Queues) sendEvent(ctx context.Context, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := q.EventQueueClient.SendMessage(ctx, string(body)); err != nil {
		metrics.RecordEventEmissionFailure(q.EventQueueClient.GetQueueName())
		return err
	}
	return nil
}
