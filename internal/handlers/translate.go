package handlers

//go:generate mockgen -source=translate.go -destination=translate_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// Translator translates text and records it in the history.
type Translator interface {
	Translate(ctx context.Context, userID uuid.UUID, source, target, text, tone string) (*models.TranslationResult, error)
}

// TranslateRequest represents the JSON body of a translation
// swagger:model TranslateRequest
type TranslateRequest struct {
	// Source language code or auto
	// default: auto
	Source string `json:"source"`

	// Target language code
	// required: true
	// default: fr
	Target string `json:"target"`

	// Text to translate
	// required: true
	// default: hello
	Text string `json:"text"`

	// Tone hint: default, formal or informal
	// default: default
	Context string `json:"context"`
}

// TranslateResponse represents the translation result
// swagger:model TranslateResponse
type TranslateResponse struct {
	// Translated text, or the error text when the engine failed
	// default: bonjour
	Translated string `json:"translated"`

	// Id of the recorded history entry
	// default: 1
	HistoryID int64 `json:"history_id"`

	// Detected or explicit source language
	// default: en
	DetectedSource string `json:"detected_source"`
}

// NewTranslateHandler returns an HTTP handler translating text.
// A failed engine call answers 500 with the error text in the translated field.
// @Summary Translate text
// @Tags translation
// @Accept json
// @Produce json
// @Param request body handlers.TranslateRequest true "Translate Request"
// @Success 200 {object} handlers.TranslateResponse
// @Failure 400 {object} handlers.ErrorResponse "No text provided"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TranslateResponse "Engine failure, recorded in the history"
// @Router /translate [post]
// @Security CookieAuth
func NewTranslateHandler(svc Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req TranslateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), ErrorResponse{Error: "Invalid request body"})
			return
		}

		res, err := svc.Translate(r.Context(), userID, req.Source, req.Target, req.Text, req.Context)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
				return
			}
			logger.FromContext(r.Context()).Errorw("translation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		status := http.StatusOK
		if res.Failed {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, TranslateResponse{
			Translated:     res.Translated,
			HistoryID:      res.HistoryID,
			DetectedSource: res.DetectedSource,
		})
	}
}
