package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// CookieSetter stores the session token on the client.
type CookieSetter interface {
	SetCookie(w http.ResponseWriter, token string)
}

// LoginRequest represents the body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Session token, also set as the session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Opens a session, sets the session cookie and returns its token
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token"
// @Success 303 "Redirect to / for form posts"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies CookieSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asJSON := isJSONRequest(r)

		var req LoginRequest
		if asJSON {
			if err := decodeJSON(r, &req); err != nil {
				writeJSON(w, decodeStatus(err), ErrorResponse{Error: "invalid request body"})
				return
			}
		} else {
			req.Username = r.PostFormValue("username")
			req.Password = r.PostFormValue("password")
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			status, msg := http.StatusInternalServerError, "Internal server error"
			if errors.Is(err, services.ErrInvalidCredentials) {
				status, msg = http.StatusUnauthorized, "Invalid credentials"
			} else {
				logger.Log.Errorw("internal server error", "err", err)
			}

			if asJSON {
				writeJSON(w, status, ErrorResponse{Error: msg})
			} else {
				renderPage(w, status, "login.html", formPage{Error: msg})
			}
			return
		}

		cookies.SetCookie(w, token)

		if !asJSON {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
