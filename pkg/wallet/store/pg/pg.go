// Package pg implements the wallet store over PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/wallet"
	"github.com/tikket/tikket-server/pkg/wallet/store"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the wallet store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

func (s *pgStore) Upsert(ctx context.Context, w *wallet.Wallet) error {
	_, err := s.db.NewInsert().
		Model(toWalletDao(w)).
		On("CONFLICT (user_id, public_key) DO UPDATE").
		Set("balance = EXCLUDED.balance").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}
	return nil
}

func (s *pgStore) GetWallet(ctx context.Context, userID, publicKey string) (*wallet.Wallet, error) {
	dao := new(WalletDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wd.user_id = ?", userID).
		Where("wd.public_key = ?", publicKey).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return toWallet(dao), nil
}

func (s *pgStore) ListWallets(ctx context.Context, userID string) ([]*wallet.Wallet, error) {
	var daos []*WalletDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wd.user_id = ?", userID).
		Order("wd.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	wallets := make([]*wallet.Wallet, 0, len(daos))
	for _, dao := range daos {
		wallets = append(wallets, toWallet(dao))
	}
	return wallets, nil
}
