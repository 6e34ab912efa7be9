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
	"github.com/tikket/tikket-server/pkg/wallet"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the wallet service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/wallet", apphttp.HandleError(h.record))
	r.Get("/wallet", apphttp.HandleError(h.list))
}

func (h *HTTP) record(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req wallet.CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	wlt, err := h.service.Record(r.Context(), userID, &req)
	if err != nil {
		return err
	}

	return apphttp.WriteJSON(w, http.StatusCreated, wlt)
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	wallets, err := h.service.List(r.Context(), userID)
	if err != nil {
		return err
	}

	return apphttp.WriteJSON(w, http.StatusOK, wallets)
}
