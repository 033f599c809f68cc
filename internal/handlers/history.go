package handlers

//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// HistoryRater rates a history entry.
type HistoryRater interface {
	Rate(ctx context.Context, userID uuid.UUID, historyID int64, rating int, feedback string) error
}

// HistoryClearer removes the whole history of a user.
type HistoryClearer interface {
	Clear(ctx context.Context, userID uuid.UUID) error
}

// RateRequest represents the JSON body of a rating
// swagger:model RateRequest
type RateRequest struct {
	// History entry id
	// required: true
	// default: 1
	HistoryID int64 `json:"history_id" validate:"required"`

	// Stars from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating" validate:"required,min=1,max=5"`

	// Free text feedback
	// default: great
	Feedback string `json:"feedback"`
}

// NewHistoryHandler returns the full history of the user, newest first.
// @Summary Translation history
// @Tags history
// @Produce json
// @Success 200 {array} models.ChatHistoryDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /history [get]
// @Security CookieAuth
func NewHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		entries, err := svc.List(r.Context(), userID, 0)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list history", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// NewClearHistoryHandler removes the whole history of the user.
// @Summary Clear history
// @Tags history
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Router /clear_history [post]
// @Router /clear_chat [post]
// @Security CookieAuth
func NewClearHistoryHandler(svc HistoryClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.Clear(r.Context(), userID); err != nil {
			writeJSON(w, http.StatusInternalServerError, StatusResponse{Status: statusError})
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{Status: statusOK})
	}
}

// NewRateHandler rates an entry of the user's history.
// @Summary Rate a translation
// @Tags history
// @Accept json
// @Produce json
// @Param request body handlers.RateRequest true "Rate Request"
// @Success 200 {object} handlers.StatusResponse
// @Failure 400 {object} handlers.StatusResponse "Invalid rating"
// @Failure 403 {object} handlers.StatusResponse "Entry missing or owned by another user"
// @Router /rate [post]
// @Security CookieAuth
func NewRateHandler(svc HistoryRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req RateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), StatusResponse{Status: statusError})
			return
		}

		err := svc.Rate(r.Context(), userID, req.HistoryID, req.Rating, req.Feedback)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, StatusResponse{Status: statusOK})
		case errors.Is(err, services.ErrForbidden):
			writeJSON(w, http.StatusForbidden, StatusResponse{Status: statusError})
		case errors.Is(err, services.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, StatusResponse{Status: statusError})
		default:
			writeJSON(w, http.StatusInternalServerError, StatusResponse{Status: statusError})
		}
	}
}
