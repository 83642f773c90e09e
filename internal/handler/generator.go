package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/passvault/internal/generator"
	"github.com/vaultpass/passvault/internal/model"
)

// GeneratorService is the generation logic behind GeneratorHandler.
type GeneratorService interface {
	Generate(req model.GenerateRequest) (model.GenerateResponse, error)
	Strength(req model.StrengthRequest) model.StrengthResponse
}

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrInvalidLength) ||
		errors.Is(err, generator.ErrEmptyCharset)
}
