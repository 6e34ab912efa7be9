package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tikket/tikket-server/pkg/event"
)

const serviceName = "EventService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the event Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Create(ctx context.Context, organizerID string, req *event.CreateRequest) (evt *event.Event, err error) {
	start := time.Now()

	ls.logger.Info("Create started",
		zap.String("service", serviceName),
		zap.String("method", "Create"),
		zap.String("organizer_id", organizerID),
		zap.String("title", req.Title),
		zap.Bool("is_token_gated", req.IsTokenGated),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Create failed",
				zap.String("service", serviceName),
				zap.String("method", "Create"),
				zap.String("organizer_id", organizerID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Create completed",
				zap.String("service", serviceName),
				zap.String("method", "Create"),
				zap.String("event_id", evt.ID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Create(ctx, organizerID, req)
}

func (ls *logService) Get(ctx context.Context, id string) (evt *event.Event, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Get failed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("event_id", id),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("Get completed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("event_id", id),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Get(ctx, id)
}

func (ls *logService) List(ctx context.Context) (events []*event.Event, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("List failed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("List completed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.Int("count", len(events)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.List(ctx)
}

func (ls *logService) MyEvents(ctx context.Context, userID string) (resp *event.MyEventsResponse, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("MyEvents failed",
				zap.String("service", serviceName),
				zap.String("method", "MyEvents"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("MyEvents completed",
				zap.String("service", serviceName),
				zap.String("method", "MyEvents"),
				zap.String("user_id", userID),
				zap.Int("upcoming", len(resp.Upcoming)),
				zap.Int("past", len(resp.Past)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.MyEvents(ctx, userID)
}
