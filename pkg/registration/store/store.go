// Package store defines the persistence interface for registrations.
package store

import (
	"context"
	"errors"

	"github.com/tikket/tikket-server/pkg/registration"
)

// ErrAlreadyRegistered is returned when a registration for the same
// (event, user) pair already exists.
var ErrAlreadyRegistered = errors.New("already registered for event")

// ErrParticipantNotFound is returned when no registration exists for the pair.
var ErrParticipantNotFound = errors.New("participant not found")

// ErrPassNotFound is returned when no minted pass exists for the pair.
var ErrPassNotFound = errors.New("nft pass not found")

// Store defines the interface for registration persistence.
type Store interface {
	// Register persists the participation row, the optional pass row, and the
	// event's participant-counter bump in a single transaction.
	Register(ctx context.Context, participant *registration.Participant, pass *registration.Pass) error

	GetParticipant(ctx context.Context, eventID, userID string) (*registration.Participant, error)
	GetPass(ctx context.Context, eventID, userID string) (*registration.Pass, error)
}
