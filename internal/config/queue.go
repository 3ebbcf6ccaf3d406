package config

import (
	"fmt"
)

const (
	QueueTypeRabbitMQ = "rabbitmq"
	QueueTypeSQS      = "sqs"
)

// QueueConfig selects the event sink the escrow protocol publishes domain
// events to. The rabbitmq backend uses url/user/password; the sqs backend
// uses url/region.
type QueueConfig struct {
	Type          string `mapstructure:"type"`
	Url           string `mapstructure:"url"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Region        string `mapstructure:"region"`
	EventQueueName string `mapstructure:"event-queue-name"`
}

func (cfg *QueueConfig) Validate() error {
	switch cfg.Type {
	case QueueTypeRabbitMQ:
		if cfg.User == "" || cfg.Password == "" {
			return fmt.Errorf("missing rabbitmq credentials")
		}
	case QueueTypeSQS:
		if cfg.Region == "" {
			return fmt.Errorf("missing queue region")
		}
	default:
		return fmt.Errorf("unsupported queue type: %s", cfg.Type)
	}

	if cfg.Url == "" {
		return fmt.Errorf("missing queue URL")
	}

	if cfg.EventQueueName == "" {
		return fmt.Errorf("missing event queue name")
	}
	return nil
}
