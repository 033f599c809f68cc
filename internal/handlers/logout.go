package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

// Logouter closes a session.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// CookieClearer removes the session token from the client.
type CookieClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// NewLogoutHandler closes the current session and redirects to the login page.
// @Summary Logout
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [get]
// @Security CookieAuth
func NewLogoutHandler(svc Logouter, cookies CookieClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, ok := auth.FromContext(r.Context()); ok {
			if err := svc.Logout(r.Context(), id.SessionID); err != nil {
				logger.FromContext(r.Context()).Errorw("failed to close session", "session_id", id.SessionID, "error", err)
			}
		}
		cookies.ClearCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
