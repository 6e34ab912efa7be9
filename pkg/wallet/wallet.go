// Package wallet holds the domain model for captured wallet details.
package wallet

import "time"

// Wallet is one user's recorded wallet address with a native-balance snapshot
// in whole-coin units. The pair (UserID, PublicKey) is unique; re-submitting
// refreshes the snapshot.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PublicKey string    `json:"public_key"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the payload for recording a wallet.
type CreateRequest struct {
	PublicKey string `json:"public_key" validate:"required"`
}
