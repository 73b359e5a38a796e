package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/sessions"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

const sessionName = "sb-session"

// LoggingMiddleware logs the details of each HTTP request
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)
		slog.Info("HTTP Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.statusCode,
			"duration", time.Since(start),
			"ip", r.RemoteAddr,
		)
	})
}

// Custom ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// SecurityHeadersMiddleware adds standard security headers
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter throttles public form submissions per remote address.
type RateLimiter struct {
	visitors sync.Map
	window   time.Duration
}

func NewRateLimiter(window time.Duration) *RateLimiter {
	rl := &RateLimiter{window: window}
	go rl.cleanup()
	return rl
}

// cleanup removes old entries to prevent memory leaks
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		rl.visitors.Range(func(key, value interface{}) bool {
			if now.Sub(value.(time.Time)) > rl.window {
				rl.visitors.Delete(key)
			}
			return true
		})
	}
}

func (rl *RateLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if lastSeen, ok := rl.visitors.Load(ip); ok {
			if time.Since(lastSeen.(time.Time)) < rl.window {
				slog.Warn("Rate limit exceeded", "ip", ip)
				ErrorResponse(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}
		}
		rl.visitors.Store(ip, time.Now())
		next(w, r)
	}
}

// Auth resolves the session cookie into a user and enforces role checks.
type Auth struct {
	Store        *store.Store
	SessionStore *sessions.CookieStore
}

type userContextKey struct{}

// CurrentUser returns the user behind the request's session, or nil when the
// request is anonymous.
func (a *Auth) CurrentUser(r *http.Request) (*models.User, error) {
	if user, ok := r.Context().Value(userContextKey{}).(*models.User); ok {
		return user, nil
	}

	session, _ := a.SessionStore.Get(r, sessionName)
	id, ok := session.Values["user_id"].(string)
	if !ok || id == "" {
		return nil, nil
	}

	user, err := a.Store.GetUserByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RequireRole guards a handler behind a role. It is the single authorization
// check in the API; admin routes declare it in the route table.
func (a *Auth) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.CurrentUser(r)
		if err != nil {
			slog.Error("failed to resolve session user", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Internal error")
			return
		}
		if user == nil || user.Role != role {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userContextKey{}, user)))
	}
}
