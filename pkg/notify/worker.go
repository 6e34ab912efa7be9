package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// sender is the slice of Mailer the worker needs.
type sender interface {
	SendRegistrationConfirmation(msg *RegistrationConfirmation) error
}

// Worker consumes confirmation messages and hands them to the mailer.
type Worker struct {
	client *Client
	mailer sender
	logger *zap.Logger
}

func NewWorker(client *Client, mailer *Mailer, logger *zap.Logger) *Worker {
	return &Worker{
		client: client,
		mailer: mailer,
		logger: logger,
	}
}

// Start begins consuming in the background until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.client.Consume(ctx, w.handle); err != nil {
		return fmt.Errorf("failed to start mail worker: %w", err)
	}
	w.logger.Info("mail worker started")
	return nil
}

func (w *Worker) handle(body []byte) error {
	var msg RegistrationConfirmation
	if err := json.Unmarshal(body, &msg); err != nil {
		w.logger.Error("failed to unmarshal confirmation message",
			zap.ByteString("body", body),
			zap.Error(err))
		// Malformed messages are dropped, not requeued.
		return nil
	}

	if err := w.mailer.SendRegistrationConfirmation(&msg); err != nil {
		return err
	}
	return nil
}
