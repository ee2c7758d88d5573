package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// These tests cover the request paths that are decided before any storage
// access: binding and validation failures must never reach the repository,
// so a handler with a nil repository is enough to exercise them.

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, h(c))
	return rec
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	h := &ClientHandler{}
	rec := postJSON(t, h.Create, "/api/clients", `{"subscriptionDays": "thirty"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	h := &ClientHandler{}
	rec := postJSON(t, h.Create, "/api/clients",
		`{"fullName":"Ana","phone":"(11) 99999-9999","country":"Brasil","macAddress":"00:1B:44:11:3A:B7","entryDate":"2024-01-15","subscriptionDays":30}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nome")
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	h := &ClientHandler{}
	rec := postJSON(t, h.Update, "/api/clients/some-id",
		`{"fullName":"João Silva","phone":"123","country":"Brasil","macAddress":"00:1B:44:11:3A:B7","entryDate":"2024-01-15","subscriptionDays":30}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportRejectsMissingList(t *testing.T) {
	h := &ClientHandler{}
	rec := postJSON(t, h.Import, "/api/clients/import", `{"clients": null}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dados inválidos")
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	h := &AuthHandler{}
	rec := postJSON(t, h.ChangePassword, "/api/auth/change-password",
		`{"currentPassword":"admin","newPassword":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "8 caracteres")
}

func TestListRejectsUnknownSortField(t *testing.T) {
	h := &ClientHandler{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clients?sort=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRejectsUnknownQuickFilter(t *testing.T) {
	h := &ClientHandler{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clients?filter=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CRM API is running")
}
