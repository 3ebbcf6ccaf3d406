package client

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

type SQSClient struct {
	client    *sqs.SQS
	queueURL  string
	queueName string
}

func NewSQSClient(queueURL, region, queueName string) *SQSClient {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	client := sqs.New(sess)

	return &SQSClient{
		client:    client,
		queueURL:  queueURL,
		queueName: queueName,
	}
}

func (c *SQSClient) SendMessage(ctx context.Context, messageBody string) error {
	_, err := c.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    &c.queueURL,
		MessageBody: aws.String(messageBody),
	})
	return err
}

func (c *SQSClient) GetQueueName() string {
	return c.queueName
}

func (c *SQSClient) Ping() error {
	_, err := c.client.GetQueueAttributes(&sqs.GetQueueAttributesInput{
		QueueUrl: &c.queueURL,
	})
	return err
}

func (c *SQSClient) Stop() error {
	// The SQS client holds no long-lived connection.
	return nil
}
