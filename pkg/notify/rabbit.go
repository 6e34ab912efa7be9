package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/tikket/tikket-server/internal/metrics"
	"github.com/tikket/tikket-server/pkg/config"
)

// Client is a thin AMQP wrapper bound to the confirmation queue.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewClient dials the broker and declares the durable confirmation queue.
func NewClient(cfg *config.MailConfig, logger *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	if _, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", cfg.Queue, err)
	}

	logger.Info("AMQP client connected", zap.String("queue", cfg.Queue))

	return &Client{
		conn:    conn,
		channel: channel,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// PublishRegistrationConfirmation enqueues a confirmation message on the
// default exchange.
func (c *Client) PublishRegistrationConfirmation(ctx context.Context, msg *RegistrationConfirmation) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation message: %w", err)
	}

	err = c.channel.PublishWithContext(ctx, "", c.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
	if err != nil {
		metrics.MailPublishedTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to publish confirmation message: %w", err)
	}

	metrics.MailPublishedTotal.WithLabelValues("success").Inc()
	return nil
}

// Consume delivers queue messages to handler until ctx is cancelled. A handler
// error requeues the message once via nack.
func (c *Client) Consume(ctx context.Context, handler func([]byte) error) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming from %q: %w", c.queue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handler(d.Body); err != nil {
					c.logger.Warn("failed to process confirmation message", zap.Error(err))
					_ = d.Nack(false, !d.Redelivered)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	c.logger.Info("consuming confirmation messages", zap.String("queue", c.queue))
	return nil
}
