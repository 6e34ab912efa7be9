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
	"github.com/tikket/tikket-server/pkg/registration"
	"github.com/tikket/tikket-server/pkg/registration/service/mocks"
)

func newJoinTestServer(svc Service, userID string) http.Handler {
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

func TestJoinHTTP_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newJoinTestServer(svc, "")

	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/join", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestJoinHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newJoinTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/join", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Message != "invalid JSON" {
		t.Fatalf("expected message %q, got %q", "invalid JSON", got.Message)
	}
}

func TestJoinHTTP_EmptyBody_DefaultsToSimple(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Join(mock.Anything, "evt-1", "user-1", &registration.JoinRequest{}).
		Return(&registration.JoinResponse{
			Status:  http.StatusOK,
			Message: "Successfully registered for event",
		}, nil)
	handler := newJoinTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/join", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got registration.JoinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Message != "Successfully registered for event" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestJoinHTTP_NFTRegistration_ResponseCarriesDetails(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Join(mock.Anything, "evt-1", "user-1", &registration.JoinRequest{Type: registration.TypeNFT}).
		Return(&registration.JoinResponse{
			Status:  http.StatusOK,
			Message: "Successfully registered for event",
		}, nil)
	handler := newJoinTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/join", bytes.NewBufferString(`{"type":"nft"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}
}

func TestJoinHTTP_ServiceConflict_Returns409(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Join(mock.Anything, "evt-1", "user-1", mock.Anything).
		Return(nil, apperrors.ConflictError(nil, "Already registered for this event"))
	handler := newJoinTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/join", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}

	var got struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Message != "Already registered for this event" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	if got.Status != http.StatusConflict {
		t.Fatalf("expected status field %d, got %d", http.StatusConflict, got.Status)
	}
}

func TestStatusHTTP_NullPassDetailsSerialized(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Status(mock.Anything, "evt-1", "user-1").
		Return(&registration.StatusResponse{
			Status:       http.StatusOK,
			IsRegistered: false,
			IsOrganizer:  false,
		}, nil)
	handler := newJoinTestServer(svc, "user-1")

	req := httptest.NewRequest(http.MethodGet, "/events/evt-1/registration", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	details, present := got["nft_details"]
	if !present {
		t.Fatal("nft_details must be present in the status payload")
	}
	if details != nil {
		t.Fatalf("expected null nft_details, got %v", details)
	}
}

func TestStatusHTTP_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newJoinTestServer(svc, "")

	req := httptest.NewRequest(http.MethodGet, "/events/evt-1/registration", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
