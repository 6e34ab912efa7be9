package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	apphttp "github.com/tikket/tikket-server/pkg/app/http"
	"github.com/tikket/tikket-server/pkg/auth"
	"github.com/tikket/tikket-server/pkg/registration"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the registration service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/events/{id}/join", apphttp.HandleError(h.join))
	r.Get("/events/{id}/registration", apphttp.HandleError(h.status))
}

// join handles registration requests, including the NFT mint for token-gated
// events.
func (h *HTTP) join(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	var req registration.JoinRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	// An empty body means a simple registration.
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperrors.BadRequestError(err, "invalid JSON")
		}
	}

	resp, err := h.service.Join(r.Context(), chi.URLParam(r, "id"), userID, &req)
	if err != nil {
		return err
	}

	return apphttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	resp, err := h.service.Status(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		return err
	}

	return apphttp.WriteJSON(w, http.StatusOK, resp)
}
