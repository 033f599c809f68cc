package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// RegisterRequest represents the body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// Form posts are redirected to the login page, JSON requests get a JSON answer.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. Password is hashed before storing.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Success 303 "Redirect to /login for form posts"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asJSON := isJSONRequest(r)

		var req RegisterRequest
		if asJSON {
			if err := decodeJSON(r, &req); err != nil {
				writeJSON(w, decodeStatus(err), ErrorResponse{Error: "Invalid request body"})
				return
			}
		} else {
			req.Username = r.PostFormValue("username")
			req.Password = r.PostFormValue("password")
		}

		err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			status, msg := http.StatusInternalServerError, "Internal server error"
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				status, msg = http.StatusConflict, "Username exists"
			case errors.Is(err, services.ErrInvalidInput):
				status, msg = http.StatusBadRequest, "Username and password are required"
			default:
				logger.Log.Errorw("internal server error", "err", err)
			}

			if asJSON {
				writeJSON(w, status, ErrorResponse{Error: msg})
			} else {
				renderPage(w, status, "register.html", formPage{Error: msg})
			}
			return
		}

		if !asJSON {
			http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully"})
	}
}
