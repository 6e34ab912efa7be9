package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tikket/tikket-server/pkg/registration"
)

const serviceName = "RegistrationService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the registration Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Join(ctx context.Context, eventID, userID string, req *registration.JoinRequest) (resp *registration.JoinResponse, err error) {
	start := time.Now()

	ls.logger.Info("Join started",
		zap.String("service", serviceName),
		zap.String("method", "Join"),
		zap.String("event_id", eventID),
		zap.String("user_id", userID),
		zap.String("type", req.Type),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Join failed",
				zap.String("service", serviceName),
				zap.String("method", "Join"),
				zap.String("event_id", eventID),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Join completed",
				zap.String("service", serviceName),
				zap.String("method", "Join"),
				zap.String("event_id", eventID),
				zap.String("user_id", userID),
				zap.Bool("minted", resp.NFTDetails != nil),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Join(ctx, eventID, userID, req)
}

func (ls *logService) Status(ctx context.Context, eventID, userID string) (resp *registration.StatusResponse, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Status failed",
				zap.String("service", serviceName),
				zap.String("method", "Status"),
				zap.String("event_id", eventID),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("Status completed",
				zap.String("service", serviceName),
				zap.String("method", "Status"),
				zap.String("event_id", eventID),
				zap.String("user_id", userID),
				zap.Bool("is_registered", resp.IsRegistered),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Status(ctx, eventID, userID)
}
