// Package store defines the persistence interface for wallet details.
package store

import (
	"context"
	"errors"

	"github.com/tikket/tikket-server/pkg/wallet"
)

// ErrWalletNotFound is returned when a wallet lookup finds no matching record.
var ErrWalletNotFound = errors.New("wallet not found")

// Store defines the interface for wallet persistence.
type Store interface {
	// Upsert inserts the wallet or, when the (user_id, public_key) pair
	// already exists, refreshes its balance snapshot.
	Upsert(ctx context.Context, w *wallet.Wallet) error

	GetWallet(ctx context.Context, userID, publicKey string) (*wallet.Wallet, error)
	ListWallets(ctx context.Context, userID string) ([]*wallet.Wallet, error)
}
