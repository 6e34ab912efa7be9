// Package service implements the registration workflow.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tikket/tikket-server/internal/metrics"
	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	"github.com/tikket/tikket-server/pkg/event"
	eventstore "github.com/tikket/tikket-server/pkg/event/store"
	"github.com/tikket/tikket-server/pkg/nft"
	"github.com/tikket/tikket-server/pkg/notify"
	"github.com/tikket/tikket-server/pkg/registration"
	"github.com/tikket/tikket-server/pkg/registration/store"
	"github.com/tikket/tikket-server/pkg/user"
	"github.com/tikket/tikket-server/pkg/userstore"
)

// Store is the registration persistence the service depends on.
type Store interface {
	Register(ctx context.Context, participant *registration.Participant, pass *registration.Pass) error
	GetParticipant(ctx context.Context, eventID, userID string) (*registration.Participant, error)
	GetPass(ctx context.Context, eventID, userID string) (*registration.Pass, error)
}

// Events is the event lookup the service depends on.
type Events interface {
	GetEvent(ctx context.Context, id string) (*event.Event, error)
}

// Users is the user lookup used to address confirmation mail.
type Users interface {
	GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
}

// Minter mints the NFT pass for token-gated registrations.
type Minter interface {
	MintPass(ctx context.Context, meta *nft.EventMetadata) (*nft.MintResult, error)
}

// Publisher enqueues registration-confirmation messages.
type Publisher interface {
	PublishRegistrationConfirmation(ctx context.Context, msg *notify.RegistrationConfirmation) error
}

// Service defines the interface for the registration business logic
type Service interface {
	Join(ctx context.Context, eventID, userID string, req *registration.JoinRequest) (*registration.JoinResponse, error)
	Status(ctx context.Context, eventID, userID string) (*registration.StatusResponse, error)
}

type registrationService struct {
	store     Store
	events    Events
	users     Users
	minter    Minter
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new registration service. publisher may be nil when
// confirmation mail is disabled.
func NewService(
	store Store,
	events Events,
	users Users,
	minter Minter,
	publisher Publisher,
	logger *zap.Logger,
) Service {
	return &registrationService{
		store:     store,
		events:    events,
		users:     users,
		minter:    minter,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Join registers the caller for an event. Token-gated events require
// type "nft" and mint a pass before anything is persisted; the participation
// row, pass row, and counter bump commit together.
func (s *registrationService) Join(ctx context.Context, eventID, userID string, req *registration.JoinRequest) (*registration.JoinResponse, error) {
	regType := req.Type
	if regType == "" {
		regType = registration.TypeSimple
	}
	if regType != registration.TypeSimple && regType != registration.TypeNFT {
		return nil, apperrors.BadRequestError(nil, fmt.Sprintf("unknown registration type %q", regType))
	}

	evt, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventstore.ErrEventNotFound) {
			metrics.RegistrationsTotal.WithLabelValues("event_not_found").Inc()
			return nil, apperrors.ResourceNotFoundError(err, "Event not found")
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	existing, err := s.store.GetParticipant(ctx, eventID, userID)
	if err != nil && !errors.Is(err, store.ErrParticipantNotFound) {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	if existing != nil && existing.IsRegistered {
		metrics.RegistrationsTotal.WithLabelValues("already_registered").Inc()
		return nil, apperrors.ConflictError(nil, "Already registered for this event")
	}

	if evt.IsTokenGated && regType != registration.TypeNFT {
		metrics.RegistrationsTotal.WithLabelValues("gating_violation").Inc()
		return nil, apperrors.BadRequestError(nil, "This event requires NFT registration")
	}

	var mintResult *nft.MintResult
	if evt.IsTokenGated {
		mintResult, err = s.minter.MintPass(ctx, &nft.EventMetadata{
			Title:       evt.Title,
			Description: evt.Description,
			StartDate:   evt.StartDate,
			EndDate:     evt.EndDate,
			Location:    evt.Location,
			EventID:     evt.ID,
		})
		if err != nil {
			metrics.RegistrationsTotal.WithLabelValues("mint_failure").Inc()
			return nil, apperrors.DependencyError(err, "Failed to mint event pass")
		}
	}

	now := s.now()
	participant := &registration.Participant{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       userID,
		IsRegistered: true,
		CreatedAt:    now,
	}
	var pass *registration.Pass
	if mintResult != nil {
		pass = &registration.Pass{
			ID:         uuid.NewString(),
			EventID:    eventID,
			UserID:     userID,
			MintTxHash: mintResult.Mint,
			TokenID:    mintResult.TokenID,
			CreatedAt:  now,
		}
	}

	if err := s.store.Register(ctx, participant, pass); err != nil {
		if errors.Is(err, store.ErrAlreadyRegistered) {
			metrics.RegistrationsTotal.WithLabelValues("already_registered").Inc()
			return nil, apperrors.ConflictError(err, "Already registered for this event")
		}
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	s.publishConfirmation(ctx, userID, evt)

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return &registration.JoinResponse{
		Status:     http.StatusOK,
		Message:    "Successfully registered for event",
		NFTDetails: mintResult,
	}, nil
}

// Status reports the caller's standing for an event. Pass details are exposed
// only for registered non-organizers.
func (s *registrationService) Status(ctx context.Context, eventID, userID string) (*registration.StatusResponse, error) {
	evt, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventstore.ErrEventNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Event not found")
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	resp := &registration.StatusResponse{
		Status:      http.StatusOK,
		IsOrganizer: evt.OrganizerID == userID,
	}

	participant, err := s.store.GetParticipant(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, store.ErrParticipantNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	resp.IsRegistered = participant.IsRegistered

	if !resp.IsRegistered || resp.IsOrganizer {
		return resp, nil
	}

	pass, err := s.store.GetPass(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, store.ErrPassNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to load nft pass: %w", err)
	}
	resp.NFTDetails = &registration.PassDetails{
		MintTxHash: pass.MintTxHash,
		TokenID:    pass.TokenID,
	}
	return resp, nil
}

// publishConfirmation enqueues the confirmation email. Best-effort: a failure
// here never fails the registration.
func (s *registrationService) publishConfirmation(ctx context.Context, userID string, evt *event.Event) {
	if s.publisher == nil {
		return
	}

	usr, err := s.users.GetUser(ctx, userstore.WithID(userID))
	if err != nil {
		s.logger.Warn("failed to load user for confirmation email",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	err = s.publisher.PublishRegistrationConfirmation(ctx, &notify.RegistrationConfirmation{
		Email:         usr.Email,
		Name:          usr.Name,
		EventID:       evt.ID,
		EventTitle:    evt.Title,
		EventLocation: evt.Location,
		StartDate:     evt.StartDate,
		EndDate:       evt.EndDate,
	})
	if err != nil {
		s.logger.Warn("failed to publish confirmation message",
			zap.String("user_id", userID),
			zap.String("event_id", evt.ID),
			zap.Error(err))
	}
}
