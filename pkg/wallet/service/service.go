// Package service implements the wallet business logic.
package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	"github.com/tikket/tikket-server/pkg/wallet"
	"github.com/tikket/tikket-server/pkg/wallet/store"
)

// weiDecimals converts wei into whole-coin units.
const weiDecimals = 18

// BalanceReader reads the native balance of an address from the chain.
type BalanceReader interface {
	NativeBalance(ctx context.Context, address string) (*big.Int, error)
}

// Service defines the interface for the wallet business logic
type Service interface {
	Record(ctx context.Context, userID string, req *wallet.CreateRequest) (*wallet.Wallet, error)
	List(ctx context.Context, userID string) ([]*wallet.Wallet, error)
}

type walletService struct {
	store   store.Store
	balance BalanceReader
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new wallet service
func NewService(store store.Store, balance BalanceReader, logger *zap.Logger) Service {
	return &walletService{
		store:   store,
		balance: balance,
		logger:  logger,
		now:     time.Now,
	}
}

// Record captures the caller's wallet with a fresh native-balance snapshot.
// Re-submitting an already-recorded key refreshes the snapshot in place.
func (s *walletService) Record(ctx context.Context, userID string, req *wallet.CreateRequest) (*wallet.Wallet, error) {
	if req.PublicKey == "" {
		return nil, apperrors.BadRequestError(nil, "public_key is required")
	}
	if !common.IsHexAddress(req.PublicKey) {
		return nil, apperrors.BadRequestError(nil, "public_key is not a valid address")
	}
	address := common.HexToAddress(req.PublicKey).Hex()

	wei, err := s.balance.NativeBalance(ctx, address)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to read wallet balance")
	}

	w := &wallet.Wallet{
		ID:        uuid.NewString(),
		UserID:    userID,
		PublicKey: address,
		Balance:   decimal.NewFromBigInt(wei, -weiDecimals).String(),
		CreatedAt: s.now(),
	}

	if err := s.store.Upsert(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}
	return w, nil
}

func (s *walletService) List(ctx context.Context, userID string) ([]*wallet.Wallet, error) {
	wallets, err := s.store.ListWallets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}
