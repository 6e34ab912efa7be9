// Package registration holds the domain model for event participation and
// minted event passes.
package registration

import (
	"time"

	"github.com/tikket/tikket-server/pkg/nft"
)

// Registration types accepted by the join endpoint.
const (
	TypeSimple = "simple"
	TypeNFT    = "nft"
)

// Participant is one user's registration for one event. The pair
// (EventID, UserID) is unique.
type Participant struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	IsRegistered bool      `json:"is_registered"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pass records the minted NFT pass backing a token-gated registration.
// Claimed is persisted but never transitioned.
type Pass struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	MintTxHash string    `json:"mint_tx_hash"`
	TokenID    string    `json:"token_id"`
	Claimed    bool      `json:"claimed"`
	CreatedAt  time.Time `json:"created_at"`
}

// JoinRequest is the join payload. Type defaults to "simple" when absent.
type JoinRequest struct {
	Type string `json:"type"`
}

// JoinResponse is the success payload for a join. NFTDetails is present only
// for token-gated registrations.
type JoinResponse struct {
	Status     int             `json:"status"`
	Message    string          `json:"message"`
	NFTDetails *nft.MintResult `json:"nft_details,omitempty"`
}

// PassDetails is the pass subset exposed by the status endpoint.
type PassDetails struct {
	MintTxHash string `json:"mint_tx_hash"`
	TokenID    string `json:"token_id"`
}

// StatusResponse describes the caller's standing for one event. NFTDetails is
// null unless the caller is a registered non-organizer holding a pass.
type StatusResponse struct {
	Status       int          `json:"status"`
	IsRegistered bool         `json:"is_registered"`
	IsOrganizer  bool         `json:"is_organizer"`
	NFTDetails   *PassDetails `json:"nft_details"`
}
