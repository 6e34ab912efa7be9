package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	"github.com/tikket/tikket-server/pkg/auth"
	"github.com/tikket/tikket-server/pkg/wallet"
	"github.com/tikket/tikket-server/pkg/wallet/service/mocks"
)

func newWalletTestServer(svc Service, userID string) http.Handler {
	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), userID)))
			})
		})
	}
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestRecordHTTP_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newWalletTestServer(svc, "")

	req := httptest.NewRequest(http.MethodPost, "/wallet", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRecordHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newWalletTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/wallet", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestRecordHTTP_Success_Returns201(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Record(mock.Anything, "user-1", &wallet.CreateRequest{PublicKey: "0x8ba1f109551bD432803012645Ac136ddd64DBA72"}).
		Return(&wallet.Wallet{
			ID:        "w1",
			UserID:    "user-1",
			PublicKey: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			Balance:   "1.5",
		}, nil)
	handler := newWalletTestServer(svc, "user-1")

	body := `{"public_key":"0x8ba1f109551bD432803012645Ac136ddd64DBA72"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var got wallet.Wallet
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Balance != "1.5" {
		t.Fatalf("unexpected balance: %q", got.Balance)
	}
}

func TestRecordHTTP_BalanceDependencyFailure_Returns502(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Record(mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.DependencyError(nil, "Failed to read wallet balance"))
	handler := newWalletTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/wallet", bytes.NewBufferString(`{"public_key":"0x8ba1f109551bD432803012645Ac136ddd64DBA72"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rec.Code)
	}
}

func TestListHTTP_ReturnsWallets(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		List(mock.Anything, "user-1").
		Return([]*wallet.Wallet{{ID: "w1"}, {ID: "w2"}}, nil)
	handler := newWalletTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got []*wallet.Wallet
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(got))
	}
}

func TestListHTTP_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newWalletTestServer(svc, "")

	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
