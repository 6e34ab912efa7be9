package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tikket/tikket-server/pkg/wallet"
)

const serviceName = "WalletService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the wallet Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Record(ctx context.Context, userID string, req *wallet.CreateRequest) (w *wallet.Wallet, err error) {
	start := time.Now()

	ls.logger.Info("Record started",
		zap.String("service", serviceName),
		zap.String("method", "Record"),
		zap.String("user_id", userID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Record failed",
				zap.String("service", serviceName),
				zap.String("method", "Record"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Record completed",
				zap.String("service", serviceName),
				zap.String("method", "Record"),
				zap.String("user_id", userID),
				zap.String("public_key", w.PublicKey),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Record(ctx, userID, req)
}

func (ls *logService) List(ctx context.Context, userID string) (wallets []*wallet.Wallet, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("List failed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("List completed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.String("user_id", userID),
				zap.Int("count", len(wallets)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.List(ctx, userID)
}
