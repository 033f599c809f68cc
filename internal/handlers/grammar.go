package handlers

//go:generate mockgen -source=grammar.go -destination=grammar_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// GrammarCorrector corrects the grammar of a text.
type GrammarCorrector interface {
	Correct(ctx context.Context, text, language string) (*models.GrammarCorrection, error)
}

// CorrectRequest represents the JSON body of a grammar check
// swagger:model CorrectRequest
type CorrectRequest struct {
	// required: true
	// default: I has a apple
	Text string `json:"text"`

	// LanguageTool language code
	// default: en-US
	Language string `json:"language"`
}

// NewCorrectHandler applies grammar corrections to a text.
// @Summary Correct grammar
// @Tags grammar
// @Accept json
// @Produce json
// @Param request body handlers.CorrectRequest true "Text"
// @Success 200 {object} models.GrammarCorrection
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse "Grammar check failed"
// @Router /correct [post]
// @Security CookieAuth
func NewCorrectHandler(svc GrammarCorrector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var req CorrectRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), ErrorResponse{Error: "Invalid request body"})
			return
		}

		res, err := svc.Correct(r.Context(), req.Text, req.Language)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Grammar check failed: " + err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
