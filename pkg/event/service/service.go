// Package service implements the event business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tikket/tikket-server/internal/metrics"
	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	"github.com/tikket/tikket-server/pkg/event"
	"github.com/tikket/tikket-server/pkg/event/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service defines the interface for the event business logic
type Service interface {
	Create(ctx context.Context, organizerID string, req *event.CreateRequest) (*event.Event, error)
	Get(ctx context.Context, id string) (*event.Event, error)
	List(ctx context.Context) ([]*event.Event, error)
	MyEvents(ctx context.Context, userID string) (*event.MyEventsResponse, error)
}

type eventService struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new event service
func NewService(store store.Store, logger *zap.Logger) Service {
	return &eventService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the payload and persists a new event with the caller as
// organizer. The participant counter starts at "0".
func (s *eventService) Create(ctx context.Context, organizerID string, req *event.CreateRequest) (*event.Event, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.ValidationError(err, "invalid event payload", validationFields(err))
	}

	evt := &event.Event{
		ID:                uuid.NewString(),
		OrganizerID:       organizerID,
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		IsTokenGated:      req.IsTokenGated,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		ParticipantsCount: "0",
		CreatedAt:         s.now(),
	}

	if err := s.store.CreateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	metrics.EventsCreatedTotal.Inc()
	return evt, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*event.Event, error) {
	evt, err := s.store.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "event not found")
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return evt, nil
}

func (s *eventService) List(ctx context.Context) ([]*event.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// MyEvents returns the caller's registered events split into upcoming and past.
func (s *eventService) MyEvents(ctx context.Context, userID string) (*event.MyEventsResponse, error) {
	events, err := s.store.ListEventsForParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered events: %w", err)
	}

	resp := &event.MyEventsResponse{
		Upcoming: []*event.Event{},
		Past:     []*event.Event{},
	}
	now := s.now()
	for _, evt := range events {
		if evt.Ended(now) {
			resp.Past = append(resp.Past, evt)
		} else {
			resp.Upcoming = append(resp.Upcoming, evt)
		}
	}
	return resp, nil
}

// validationFields converts validator errors into field/message pairs keyed by
// the snake_case JSON field names.
func validationFields(err error) []apperrors.FieldError {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}

	fields := make([]apperrors.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, apperrors.FieldError{
			Field:   toSnakeCase(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gtfield", "gtefield":
		return fmt.Sprintf("must be after %s", toSnakeCase(fe.Param()))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
