package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
	"github.com/contactscalebreakers-dev/website.supabase/internal/testutil"
)

func seedUser(t *testing.T, db *store.Store, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		LoginMethod:  "password",
		Role:         role,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.UpsertUser(context.Background(), user))
	return user
}

func newAuthHandler(db *store.Store, ownerEmail string) *AuthHandler {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	return &AuthHandler{
		Store:        db,
		SessionStore: sessionStore,
		Auth:         &Auth{Store: db, SessionStore: sessionStore},
		OwnerEmail:   ownerEmail,
	}
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedUser(t, db, "dana@example.com", "correct horse", models.RoleUser)
	h := newAuthHandler(db, "")

	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "dana@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "dana@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
}

func TestLoginWrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedUser(t, db, "dana@example.com", "correct horse", models.RoleUser)
	h := newAuthHandler(db, "")

	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "dana@example.com",
		"password": "battery staple",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown account reads the same as a bad password
	rec = postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginPromotesOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := seedUser(t, db, "owner@example.com", "paint the town", models.RoleUser)
	h := newAuthHandler(db, "Owner@Example.com")

	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "owner@example.com",
		"password": "paint the town",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, models.RoleAdmin, user.Role)

	got, err := db.GetUserByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role, "promotion must persist")
}
