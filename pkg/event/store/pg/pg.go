// Package pg is the postgres implementation of the event store.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/event"
	"github.com/tikket/tikket-server/pkg/event/store"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the event store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

func (s *pgStore) CreateEvent(ctx context.Context, evt *event.Event) error {
	dao := toEventDao(evt)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *pgStore) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	dao := new(EventDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("e.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return toEvent(dao), nil
}

func (s *pgStore) ListEvents(ctx context.Context) ([]*event.Event, error) {
	var daos []EventDao
	err := s.db.NewSelect().Model(&daos).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events := make([]*event.Event, len(daos))
	for i := range daos {
		events[i] = toEvent(&daos[i])
	}
	return events, nil
}

func (s *pgStore) ListEventsForParticipant(ctx context.Context, userID string) ([]*event.Event, error) {
	var daos []EventDao
	err := s.db.NewSelect().
		Model(&daos).
		Join("JOIN event_participants AS ep ON ep.event_id = e.id").
		Where("ep.user_id = ?", userID).
		Where("ep.is_registered = TRUE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for participant: %w", err)
	}
	events := make([]*event.Event, len(daos))
	for i := range daos {
		events[i] = toEvent(&daos[i])
	}
	return events, nil
}
