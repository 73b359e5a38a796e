package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type AuthHandler struct {
	Store        *store.Store
	SessionStore *sessions.CookieStore
	Auth         *Auth

	// OwnerEmail is promoted to the admin role on sign-in.
	OwnerEmail string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !isValidEmail(req.Email) {
		ErrorResponse(w, http.StatusBadRequest, "Valid email is required")
		return
	}
	if req.Password == "" {
		ErrorResponse(w, http.StatusBadRequest, "Password is required")
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Not-found and real failures look the same to the caller
		ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if h.OwnerEmail != "" && strings.EqualFold(user.Email, h.OwnerEmail) && user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		if err := h.Store.UpsertUser(r.Context(), user); err != nil {
			slog.Error("failed to promote owner", "user_id", user.ID, "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Internal error")
			return
		}
	} else if err := h.Store.TouchLastSignedIn(r.Context(), user.ID); err != nil {
		slog.Warn("failed to record sign-in time", "user_id", user.ID, "error", err)
	}

	session, _ := h.SessionStore.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	slog.Info("login successful", "user_id", user.ID, "role", user.Role)
	JSONResponse(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	session.Save(r, w)
	JSONResponse(w, http.StatusOK, successResponse{Success: true})
}

// Me handles GET /api/auth/me; anonymous callers get null.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.CurrentUser(r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	JSONResponse(w, http.StatusOK, user)
}
