package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

func newTestAuth() *Auth {
	return &Auth{
		SessionStore: sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
	}
}

// withUser injects a resolved user the way RequireRole does after a session
// lookup.
func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey{}, user))
}

func TestRequireRoleAnonymous(t *testing.T) {
	auth := newTestAuth()
	called := false
	handler := auth.RequireRole(models.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/products", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called, "guarded handler must not run")

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestRequireRoleNonAdmin(t *testing.T) {
	auth := newTestAuth()
	called := false
	handler := auth.RequireRole(models.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/products", nil), &models.User{ID: "u1", Role: models.RoleUser})
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleAdmin(t *testing.T) {
	auth := newTestAuth()
	var seen *models.User
	handler := auth.RequireRole(models.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentUser(r)
		JSONResponse(w, http.StatusOK, successResponse{Success: true})
	})

	admin := &models.User{ID: "u2", Role: models.RoleAdmin}
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/products", nil), admin)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u2", seen.ID)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	handler := rl.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "203.0.113.7:1234"

	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
