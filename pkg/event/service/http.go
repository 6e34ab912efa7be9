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
	"github.com/tikket/tikket-server/pkg/event"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the event service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/events", apphttp.HandleError(h.create))
	r.Get("/events", apphttp.HandleError(h.list))
	r.Get("/events/{id}", apphttp.HandleError(h.get))
	r.Get("/me/events", apphttp.HandleError(h.myEvents))
}

// create handles event creation requests
func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req event.CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	evt, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		return err
	}

	return apphttp.WriteJSON(w, http.StatusCreated, evt)
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	events, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, events)
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	evt, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, evt)
}

func (h *HTTP) myEvents(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	resp, err := h.service.MyEvents(r.Context(), userID)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, resp)
}
