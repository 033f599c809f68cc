package handlers

//go:generate mockgen -source=pronunciation.go -destination=pronunciation_mock.go -package=handlers

import "net/http"

// PronunciationAnalyzer scores a transcript against the expected phrase.
type PronunciationAnalyzer interface {
	Analyze(expected, actual string) float64
}

// PronunciationRequest represents the JSON body of a pronunciation check
// swagger:model PronunciationRequest
type PronunciationRequest struct {
	// default: hello
	Expected string `json:"expected"`

	// default: hallo
	Actual string `json:"actual"`
}

// PronunciationResponse holds the score from 0 to 100
// swagger:model PronunciationResponse
type PronunciationResponse struct {
	// default: 80
	Score float64 `json:"score"`
}

// NewPronunciationHandler scores a pronunciation attempt.
// @Summary Analyze pronunciation
// @Tags speech
// @Accept json
// @Produce json
// @Param request body handlers.PronunciationRequest true "Expected and actual text"
// @Success 200 {object} handlers.PronunciationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /analyze_pronunciation [post]
// @Security CookieAuth
func NewPronunciationHandler(svc PronunciationAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var req PronunciationRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), ErrorResponse{Error: "Invalid request body"})
			return
		}

		writeJSON(w, http.StatusOK, PronunciationResponse{Score: svc.Analyze(req.Expected, req.Actual)})
	}
}
