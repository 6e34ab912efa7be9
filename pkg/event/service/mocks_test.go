package service

// TODO: remove the mock impl and use mockery to generate mock

import (
	"context"

	"github.com/tikket/tikket-server/pkg/event"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	CreateEventFunc              func(ctx context.Context, evt *event.Event) error
	GetEventFunc                 func(ctx context.Context, id string) (*event.Event, error)
	ListEventsFunc               func(ctx context.Context) ([]*event.Event, error)
	ListEventsForParticipantFunc func(ctx context.Context, userID string) ([]*event.Event, error)
}

func (m *MockStore) CreateEvent(ctx context.Context, evt *event.Event) error {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, evt)
	}
	return nil
}

func (m *MockStore) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) ListEvents(ctx context.Context) ([]*event.Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) ListEventsForParticipant(ctx context.Context, userID string) ([]*event.Event, error) {
	if m.ListEventsForParticipantFunc != nil {
		return m.ListEventsForParticipantFunc(ctx, userID)
	}
	return nil, nil
}
