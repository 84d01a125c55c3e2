package client

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Enqueuer is the write side of the task queue. Services depend on it
// instead of the asynq client so tests can swap in a double.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

type Client struct {
	client *asynq.Client
}

func New(opt asynq.RedisConnOpt) *Client {
	return &Client{
		client: asynq.NewClient(opt),
	}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task) error {
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue task %s failed: %w", task.Type(), err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
