package service

// TODO: remove the mock impl and use mockery to generate mock

import (
	"context"

	"github.com/tikket/tikket-server/pkg/event"
	"github.com/tikket/tikket-server/pkg/nft"
	"github.com/tikket/tikket-server/pkg/notify"
	"github.com/tikket/tikket-server/pkg/registration"
	"github.com/tikket/tikket-server/pkg/user"
	"github.com/tikket/tikket-server/pkg/userstore"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	RegisterFunc       func(ctx context.Context, participant *registration.Participant, pass *registration.Pass) error
	GetParticipantFunc func(ctx context.Context, eventID, userID string) (*registration.Participant, error)
	GetPassFunc        func(ctx context.Context, eventID, userID string) (*registration.Pass, error)
}

func (m *MockStore) Register(ctx context.Context, participant *registration.Participant, pass *registration.Pass) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, participant, pass)
	}
	return nil
}

func (m *MockStore) GetParticipant(ctx context.Context, eventID, userID string) (*registration.Participant, error) {
	if m.GetParticipantFunc != nil {
		return m.GetParticipantFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockStore) GetPass(ctx context.Context, eventID, userID string) (*registration.Pass, error) {
	if m.GetPassFunc != nil {
		return m.GetPassFunc(ctx, eventID, userID)
	}
	return nil, nil
}

// MockEvents is a mock implementation of Events
type MockEvents struct {
	GetEventFunc func(ctx context.Context, id string) (*event.Event, error)
}

func (m *MockEvents) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return nil, nil
}

// MockUsers is a mock implementation of Users
type MockUsers struct {
	GetUserFunc func(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
}

func (m *MockUsers) GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, opts...)
	}
	return &user.User{}, nil
}

// MockMinter is a mock implementation of Minter
type MockMinter struct {
	MintPassFunc func(ctx context.Context, meta *nft.EventMetadata) (*nft.MintResult, error)
}

func (m *MockMinter) MintPass(ctx context.Context, meta *nft.EventMetadata) (*nft.MintResult, error) {
	if m.MintPassFunc != nil {
		return m.MintPassFunc(ctx, meta)
	}
	return nil, nil
}

// MockPublisher is a mock implementation of Publisher
type MockPublisher struct {
	PublishFunc func(ctx context.Context, msg *notify.RegistrationConfirmation) error
}

func (m *MockPublisher) PublishRegistrationConfirmation(ctx context.Context, msg *notify.RegistrationConfirmation) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, msg)
	}
	return nil
}
