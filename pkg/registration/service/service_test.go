package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

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

func testEvent(gated bool) *event.Event {
	return &event.Event{
		ID:           "evt-1",
		OrganizerID:  "org-1",
		Title:        "GopherCon Lagos",
		Description:  "A conference about Go",
		Location:     "Lagos",
		IsTokenGated: gated,
		StartDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	}
}

func newTestService(st Store, ev Events, us Users, mi Minter, pub Publisher) Service {
	if us == nil {
		us = &MockUsers{}
	}
	return NewService(st, ev, us, mi, pub, zap.NewNop())
}

func notFoundStore() *MockStore {
	return &MockStore{
		GetParticipantFunc: func(context.Context, string, string) (*registration.Participant, error) {
			return nil, store.ErrParticipantNotFound
		},
	}
}

func TestJoinSimpleSuccess(t *testing.T) {
	st := notFoundStore()
	var savedParticipant *registration.Participant
	var savedPass *registration.Pass
	st.RegisterFunc = func(_ context.Context, p *registration.Participant, pass *registration.Pass) error {
		savedParticipant = p
		savedPass = pass
		return nil
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}

	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	resp, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{})
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if resp.Status != 200 {
		t.Errorf("expected status 200, got %d", resp.Status)
	}
	if resp.Message != "Successfully registered for event" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.NFTDetails != nil {
		t.Error("simple registration should not carry nft details")
	}
	if savedParticipant == nil {
		t.Fatal("participant was not persisted")
	}
	if savedParticipant.EventID != "evt-1" || savedParticipant.UserID != "user-1" {
		t.Errorf("unexpected participant: %+v", savedParticipant)
	}
	if !savedParticipant.IsRegistered {
		t.Error("participant should be marked registered")
	}
	if savedPass != nil {
		t.Error("simple registration should not persist a pass")
	}
}

func TestJoinEventNotFound(t *testing.T) {
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return nil, eventstore.ErrEventNotFound
	}}
	svc := newTestService(notFoundStore(), ev, nil, &MockMinter{}, nil)

	_, err := svc.Join(context.Background(), "missing", "user-1", &registration.JoinRequest{})
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected resource-not-found error, got %v", err)
	}
}

func TestJoinAlreadyRegistered(t *testing.T) {
	st := &MockStore{
		GetParticipantFunc: func(context.Context, string, string) (*registration.Participant, error) {
			return &registration.Participant{IsRegistered: true}, nil
		},
		RegisterFunc: func(context.Context, *registration.Participant, *registration.Pass) error {
			t.Fatal("Register must not be called for a duplicate")
			return nil
		},
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	_, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{})
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestJoinRegisterRaceMapsToConflict(t *testing.T) {
	st := notFoundStore()
	st.RegisterFunc = func(context.Context, *registration.Participant, *registration.Pass) error {
		return store.ErrAlreadyRegistered
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	_, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{})
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestJoinGatedRequiresNFTType(t *testing.T) {
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(true), nil
	}}
	minter := &MockMinter{MintPassFunc: func(context.Context, *nft.EventMetadata) (*nft.MintResult, error) {
		t.Fatal("MintPass must not be called on a gating violation")
		return nil, nil
	}}
	svc := newTestService(notFoundStore(), ev, nil, minter, nil)

	_, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{Type: registration.TypeSimple})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Message != "This event requires NFT registration" {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestJoinGatedSuccessMintsAndPersistsPass(t *testing.T) {
	st := notFoundStore()
	var savedPass *registration.Pass
	st.RegisterFunc = func(_ context.Context, _ *registration.Participant, pass *registration.Pass) error {
		savedPass = pass
		return nil
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(true), nil
	}}
	var minted *nft.EventMetadata
	minter := &MockMinter{MintPassFunc: func(_ context.Context, meta *nft.EventMetadata) (*nft.MintResult, error) {
		minted = meta
		return &nft.MintResult{
			Mint:         "0xabc",
			TokenID:      "7",
			Metadata:     "https://gateway.irys.xyz/meta",
			ExplorerLink: "https://sepolia.etherscan.io/tx/0xabc",
		}, nil
	}}
	svc := newTestService(st, ev, nil, minter, nil)

	resp, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{Type: registration.TypeNFT})
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if resp.NFTDetails == nil || resp.NFTDetails.Mint != "0xabc" {
		t.Fatalf("expected nft details in response, got %+v", resp.NFTDetails)
	}
	if minted == nil || minted.EventID != "evt-1" || minted.Title != "GopherCon Lagos" {
		t.Fatalf("unexpected mint metadata: %+v", minted)
	}
	if savedPass == nil {
		t.Fatal("pass was not persisted")
	}
	if savedPass.MintTxHash != "0xabc" || savedPass.TokenID != "7" {
		t.Errorf("unexpected pass: %+v", savedPass)
	}
	if savedPass.Claimed {
		t.Error("new pass must not be claimed")
	}
}

func TestJoinMintFailureLeavesNothingPersisted(t *testing.T) {
	st := notFoundStore()
	st.RegisterFunc = func(context.Context, *registration.Participant, *registration.Pass) error {
		t.Fatal("Register must not be called when the mint fails")
		return nil
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(true), nil
	}}
	minter := &MockMinter{MintPassFunc: func(context.Context, *nft.EventMetadata) (*nft.MintResult, error) {
		return nil, errors.New("rpc unreachable")
	}}
	svc := newTestService(st, ev, nil, minter, nil)

	_, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{Type: registration.TypeNFT})
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected dependency-failure error, got %v", err)
	}
}

func TestJoinUnknownTypeRejected(t *testing.T) {
	svc := newTestService(notFoundStore(), &MockEvents{}, nil, &MockMinter{}, nil)

	_, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{Type: "vip"})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestJoinPublishesConfirmation(t *testing.T) {
	st := notFoundStore()
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	us := &MockUsers{GetUserFunc: func(_ context.Context, opts ...userstore.QueryOption) (*user.User, error) {
		return &user.User{ID: "user-1", Name: "Gopher", Email: "gopher@example.com"}, nil
	}}
	var published *notify.RegistrationConfirmation
	pub := &MockPublisher{PublishFunc: func(_ context.Context, msg *notify.RegistrationConfirmation) error {
		published = msg
		return nil
	}}
	svc := newTestService(st, ev, us, &MockMinter{}, pub)

	if _, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{}); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if published == nil {
		t.Fatal("confirmation was not published")
	}
	if published.Email != "gopher@example.com" || published.EventTitle != "GopherCon Lagos" {
		t.Errorf("unexpected confirmation: %+v", published)
	}
}

func TestJoinPublishFailureDoesNotFailRegistration(t *testing.T) {
	st := notFoundStore()
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	pub := &MockPublisher{PublishFunc: func(context.Context, *notify.RegistrationConfirmation) error {
		return errors.New("broker down")
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, pub)

	if _, err := svc.Join(context.Background(), "evt-1", "user-1", &registration.JoinRequest{}); err != nil {
		t.Fatalf("Join failed on publish error: %v", err)
	}
}

func TestStatusNotRegistered(t *testing.T) {
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	svc := newTestService(notFoundStore(), ev, nil, &MockMinter{}, nil)

	resp, err := svc.Status(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if resp.IsRegistered || resp.IsOrganizer {
		t.Errorf("unexpected status: %+v", resp)
	}
	if resp.NFTDetails != nil {
		t.Error("expected null nft details")
	}
}

func TestStatusOrganizerHidesPassDetails(t *testing.T) {
	st := &MockStore{
		GetParticipantFunc: func(context.Context, string, string) (*registration.Participant, error) {
			return &registration.Participant{IsRegistered: true}, nil
		},
		GetPassFunc: func(context.Context, string, string) (*registration.Pass, error) {
			t.Fatal("GetPass must not be called for the organizer")
			return nil, nil
		},
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	resp, err := svc.Status(context.Background(), "evt-1", "org-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !resp.IsOrganizer || !resp.IsRegistered {
		t.Errorf("unexpected status: %+v", resp)
	}
	if resp.NFTDetails != nil {
		t.Error("organizer must not see pass details")
	}
}

func TestStatusRegisteredWithPass(t *testing.T) {
	st := &MockStore{
		GetParticipantFunc: func(context.Context, string, string) (*registration.Participant, error) {
			return &registration.Participant{IsRegistered: true}, nil
		},
		GetPassFunc: func(context.Context, string, string) (*registration.Pass, error) {
			return &registration.Pass{MintTxHash: "0xabc", TokenID: "7"}, nil
		},
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(true), nil
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	resp, err := svc.Status(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !resp.IsRegistered || resp.IsOrganizer {
		t.Errorf("unexpected status: %+v", resp)
	}
	if resp.NFTDetails == nil || resp.NFTDetails.MintTxHash != "0xabc" || resp.NFTDetails.TokenID != "7" {
		t.Errorf("unexpected pass details: %+v", resp.NFTDetails)
	}
}

func TestStatusRegisteredWithoutPass(t *testing.T) {
	st := &MockStore{
		GetParticipantFunc: func(context.Context, string, string) (*registration.Participant, error) {
			return &registration.Participant{IsRegistered: true}, nil
		},
		GetPassFunc: func(context.Context, string, string) (*registration.Pass, error) {
			return nil, store.ErrPassNotFound
		},
	}
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return testEvent(false), nil
	}}
	svc := newTestService(st, ev, nil, &MockMinter{}, nil)

	resp, err := svc.Status(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !resp.IsRegistered {
		t.Error("expected registered status")
	}
	if resp.NFTDetails != nil {
		t.Error("expected null nft details for a simple registration")
	}
}

func TestStatusEventNotFound(t *testing.T) {
	ev := &MockEvents{GetEventFunc: func(context.Context, string) (*event.Event, error) {
		return nil, eventstore.ErrEventNotFound
	}}
	svc := newTestService(notFoundStore(), ev, nil, &MockMinter{}, nil)

	_, err := svc.Status(context.Background(), "missing", "user-1")
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected resource-not-found error, got %v", err)
	}
}
