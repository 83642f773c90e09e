package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passvault/internal/handler"
	"github.com/vaultpass/passvault/internal/middleware"
	"github.com/vaultpass/passvault/internal/model"
	"github.com/vaultpass/passvault/internal/service"
)

const testUserID int64 = 9

func credentialRouter(svc handler.CredentialService) http.Handler {
	h := handler.NewCredentialHandler(svc)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUserID)))
		})
	})
	r.Get("/credentials", h.HandleList)
	r.Post("/credentials", h.HandleCreate)
	r.Get("/credentials/{id}/reveal", h.HandleReveal)
	r.Put("/credentials/{id}", h.HandleUpdate)
	r.Delete("/credentials/{id}", h.HandleDelete)
	return r
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestHandleList_ReturnsMaskedRows(t *testing.T) {
	mockService := new(MockCredentialService)
	rows := []model.CredentialResponse{{ID: 1, Site: "github.com", Username: "alice", Password: model.MaskedPassword}}
	mockService.On("List", mock.Anything, testUserID).Return(rows, nil)

	rec := serve(credentialRouter(mockService), http.MethodGet, "/credentials", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []model.CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, rows[0].Site, got[0].Site)
	assert.Equal(t, model.MaskedPassword, got[0].Password)
}

func TestHandleCreate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "missing fields", err: service.ErrCredentialFieldsRequired, wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: service.ErrCredentialExists, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCredentialService)
			req := model.CredentialRequest{Site: "github.com", Username: "alice", Password: "pw"}
			mockService.On("Create", mock.Anything, testUserID, req).Return(model.CreatedResponse{ID: 3}, tt.err)

			body := `{"site":"github.com","username":"alice","password":"pw"}`
			rec := serve(credentialRouter(mockService), http.MethodPost, "/credentials", bytes.NewBufferString(body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"id":3}`, rec.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleReveal(t *testing.T) {
	mockService := new(MockCredentialService)
	mockService.On("Reveal", mock.Anything, testUserID, int64(4)).
		Return(model.RevealResponse{ID: 4, Site: "github.com", Username: "alice", Password: "hunter2"}, nil)
	mockService.On("Reveal", mock.Anything, testUserID, int64(5)).
		Return(model.RevealResponse{}, service.ErrCredentialNotFound)
	router := credentialRouter(mockService)

	rec := serve(router, http.MethodGet, "/credentials/4/reveal", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"password":"hunter2"`)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/credentials/5/reveal", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/credentials/abc/reveal", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/credentials/0/reveal", nil).Code)
}

func TestHandleUpdate(t *testing.T) {
	mockService := new(MockCredentialService)
	note := "personal"
	empty := ""
	mockService.On("Update", mock.Anything, testUserID, int64(4), model.CredentialUpdate{Note: &note}).Return(nil)
	mockService.On("Update", mock.Anything, testUserID, int64(4), model.CredentialUpdate{Site: &empty}).Return(service.ErrEmptySite)
	router := credentialRouter(mockService)

	rec := serve(router, http.MethodPut, "/credentials/4", bytes.NewBufferString(`{"note":"personal"}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPut, "/credentials/4", bytes.NewBufferString(`{"site":""}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrEmptySite.Error(), errorBody(t, rec))

	mockService.AssertExpectations(t)
}

func TestHandleDelete(t *testing.T) {
	mockService := new(MockCredentialService)
	mockService.On("Delete", mock.Anything, testUserID, int64(4)).Return(nil)
	mockService.On("Delete", mock.Anything, testUserID, int64(5)).Return(service.ErrCredentialNotFound)
	router := credentialRouter(mockService)

	rec := serve(router, http.MethodDelete, "/credentials/4", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/credentials/5", nil).Code)
}

func TestCredentialHandlers_RequireUser(t *testing.T) {
	mockService := new(MockCredentialService)
	h := handler.NewCredentialHandler(mockService)

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/credentials", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
