package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

// ErrorResponse is the body of a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// StatusResponse is the body of the history and favorites endpoints
// swagger:model StatusResponse
type StatusResponse struct {
	// ok or error
	// default: ok
	Status string `json:"status"`
}

const (
	statusOK    = "ok"
	statusError = "error"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// decodeJSON decodes and validates the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// decodeStatus returns 413 for bodies cut off by the size limit and 400 otherwise.
func decodeStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// currentUser returns the authenticated user, answering 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}
	return id.UserID, true
}
