package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	"github.com/tikket/tikket-server/pkg/wallet"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	UpsertFunc      func(ctx context.Context, w *wallet.Wallet) error
	GetWalletFunc   func(ctx context.Context, userID, publicKey string) (*wallet.Wallet, error)
	ListWalletsFunc func(ctx context.Context, userID string) ([]*wallet.Wallet, error)
}

func (m *MockStore) Upsert(ctx context.Context, w *wallet.Wallet) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, w)
	}
	return nil
}

func (m *MockStore) GetWallet(ctx context.Context, userID, publicKey string) (*wallet.Wallet, error) {
	if m.GetWalletFunc != nil {
		return m.GetWalletFunc(ctx, userID, publicKey)
	}
	return nil, nil
}

func (m *MockStore) ListWallets(ctx context.Context, userID string) ([]*wallet.Wallet, error) {
	if m.ListWalletsFunc != nil {
		return m.ListWalletsFunc(ctx, userID)
	}
	return nil, nil
}

// MockBalanceReader is a mock implementation of BalanceReader
type MockBalanceReader struct {
	NativeBalanceFunc func(ctx context.Context, address string) (*big.Int, error)
}

func (m *MockBalanceReader) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	if m.NativeBalanceFunc != nil {
		return m.NativeBalanceFunc(ctx, address)
	}
	return big.NewInt(0), nil
}

const testAddress = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

func TestRecordWalletSuccess(t *testing.T) {
	var saved *wallet.Wallet
	st := &MockStore{UpsertFunc: func(_ context.Context, w *wallet.Wallet) error {
		saved = w
		return nil
	}}
	// 1.5 coins in wei
	reader := &MockBalanceReader{NativeBalanceFunc: func(context.Context, string) (*big.Int, error) {
		wei, _ := new(big.Int).SetString("1500000000000000000", 10)
		return wei, nil
	}}
	svc := NewService(st, reader, zap.NewNop())

	w, err := svc.Record(context.Background(), "user-1", &wallet.CreateRequest{PublicKey: testAddress})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if w.Balance != "1.5" {
		t.Errorf("expected balance 1.5, got %q", w.Balance)
	}
	if w.PublicKey != testAddress {
		t.Errorf("unexpected public key: %q", w.PublicKey)
	}
	if saved == nil || saved.UserID != "user-1" {
		t.Fatalf("wallet was not persisted: %+v", saved)
	}
}

func TestRecordWalletZeroBalance(t *testing.T) {
	svc := NewService(&MockStore{}, &MockBalanceReader{}, zap.NewNop())

	w, err := svc.Record(context.Background(), "user-1", &wallet.CreateRequest{PublicKey: testAddress})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if w.Balance != "0" {
		t.Errorf("expected balance 0, got %q", w.Balance)
	}
}

func TestRecordWalletMissingKey(t *testing.T) {
	svc := NewService(&MockStore{}, &MockBalanceReader{}, zap.NewNop())

	_, err := svc.Record(context.Background(), "user-1", &wallet.CreateRequest{})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestRecordWalletInvalidAddress(t *testing.T) {
	svc := NewService(&MockStore{}, &MockBalanceReader{}, zap.NewNop())

	_, err := svc.Record(context.Background(), "user-1", &wallet.CreateRequest{PublicKey: "not-an-address"})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestRecordWalletBalanceReadFailure(t *testing.T) {
	reader := &MockBalanceReader{NativeBalanceFunc: func(context.Context, string) (*big.Int, error) {
		return nil, errors.New("rpc unreachable")
	}}
	st := &MockStore{UpsertFunc: func(context.Context, *wallet.Wallet) error {
		t.Fatal("Upsert must not be called when the balance read fails")
		return nil
	}}
	svc := NewService(st, reader, zap.NewNop())

	_, err := svc.Record(context.Background(), "user-1", &wallet.CreateRequest{PublicKey: testAddress})
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected dependency-failure error, got %v", err)
	}
}

func TestListWallets(t *testing.T) {
	st := &MockStore{ListWalletsFunc: func(context.Context, string) ([]*wallet.Wallet, error) {
		return []*wallet.Wallet{{ID: "w-1"}, {ID: "w-2"}}, nil
	}}
	svc := NewService(st, &MockBalanceReader{}, zap.NewNop())

	wallets, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(wallets))
	}
}
