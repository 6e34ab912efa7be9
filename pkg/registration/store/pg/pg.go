// Package pg implements the registration store over PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/tikket/tikket-server/pkg/registration"
	"github.com/tikket/tikket-server/pkg/registration/store"
)

const uniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the registration store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

// Register inserts the participation row, the optional pass row, and bumps the
// event's text participant counter, all in one transaction. A duplicate
// (event_id, user_id) pair surfaces as ErrAlreadyRegistered.
func (s *pgStore) Register(ctx context.Context, participant *registration.Participant, pass *registration.Pass) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(toParticipantDao(participant)).
			Exec(ctx)
		if err != nil {
			if isUniqueViolation(err) {
				return store.ErrAlreadyRegistered
			}
			return fmt.Errorf("failed to insert participant: %w", err)
		}

		if pass != nil {
			if _, err := tx.NewInsert().Model(toPassDao(pass)).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert nft pass: %w", err)
			}
		}

		// The counter is stored as text; non-numeric values count as zero.
		_, err = tx.NewUpdate().
			TableExpr("events").
			Set("participants_count = ((CASE WHEN participants_count ~ '^[0-9]+$' THEN participants_count::int ELSE 0 END) + 1)::text").
			Where("id = ?", participant.EventID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to increment participant count: %w", err)
		}
		return nil
	})
}

func (s *pgStore) GetParticipant(ctx context.Context, eventID, userID string) (*registration.Participant, error) {
	dao := new(EventParticipantDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("ep.event_id = ?", eventID).
		Where("ep.user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return toParticipant(dao), nil
}

func (s *pgStore) GetPass(ctx context.Context, eventID, userID string) (*registration.Pass, error) {
	dao := new(NFTPassDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("np.event_id = ?", eventID).
		Where("np.user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrPassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nft pass: %w", err)
	}
	return toPass(dao), nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}
