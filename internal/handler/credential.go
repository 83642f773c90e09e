package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passvault/internal/model"
	"github.com/vaultpass/passvault/internal/service"
)

// CredentialService is the vault logic behind CredentialHandler.
type CredentialService interface {
	List(ctx context.Context, userID int64) ([]model.CredentialResponse, error)
	Create(ctx context.Context, userID int64, req model.CredentialRequest) (model.CreatedResponse, error)
	Reveal(ctx context.Context, userID, id int64) (model.RevealResponse, error)
	Update(ctx context.Context, userID, id int64, req model.CredentialUpdate) error
	Delete(ctx context.Context, userID, id int64) error
}

// CredentialHandler handles HTTP requests for stored credentials.
type CredentialHandler struct {
	service CredentialService
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(svc CredentialService) *CredentialHandler {
	return &CredentialHandler{service: svc}
}

// HandleList handles GET /api/v1/credentials requests.
func (h *CredentialHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/v1/credentials requests.
func (h *CredentialHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CredentialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleReveal handles GET /api/v1/credentials/{id}/reveal requests.
func (h *CredentialHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Reveal(r.Context(), userID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/credentials/{id} requests.
func (h *CredentialHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	var req model.CredentialUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.service.Update(r.Context(), userID, id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "credential updated"})
}

// HandleDelete handles DELETE /api/v1/credentials/{id} requests.
func (h *CredentialHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CredentialHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrCredentialFieldsRequired),
		errors.Is(err, service.ErrEmptySite),
		errors.Is(err, service.ErrEmptyUsername),
		errors.Is(err, service.ErrEmptyPassword):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrCredentialNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrCredentialExists):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		writeInternalError(w, r, err)
	}
}

func credentialID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid credential id"))
		return 0, false
	}
	return id, true
}
