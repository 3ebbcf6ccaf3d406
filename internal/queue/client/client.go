package client

import (
	"context"
	"fmt"

	"github.com/remitflow/escrow-api-service/internal/config"
)

// A common interface for queue clients regardless if it's SQS, RabbitMQ, etc.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	GetQueueName() string
	Ping() error
	Stop() error
}

func NewQueueClient(cfg *config.QueueConfig) (QueueClient, error) {
	switch cfg.Type {
	case config.QueueTypeRabbitMQ:
		return NewRabbitMqClient(cfg.Url, cfg.User, cfg.Password, cfg.EventQueueName)
	case config.QueueTypeSQS:
		return NewSQSClient(cfg.Url, cfg.Region, cfg.EventQueueName), nil
	default:
		return nil, fmt.Errorf("unsupported queue type: %s", cfg.Type)
	}
}
