// Package store defines the persistence interface for events.
package store

import (
	"context"
	"errors"

	"github.com/tikket/tikket-server/pkg/event"
)

// ErrEventNotFound is returned when an event lookup finds no matching record.
var ErrEventNotFound = errors.New("event not found")

// Store defines the interface for event persistence
type Store interface {
	CreateEvent(ctx context.Context, evt *event.Event) error
	GetEvent(ctx context.Context, id string) (*event.Event, error)
	ListEvents(ctx context.Context) ([]*event.Event, error)
	// ListEventsForParticipant returns events where the given user holds an
	// active registration.
	ListEventsForParticipant(ctx context.Context, userID string) ([]*event.Event, error)
}
