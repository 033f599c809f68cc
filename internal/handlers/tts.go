package handlers

//go:generate mockgen -source=tts.go -destination=tts_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/services"
)

// SpeechSynthesizer renders text to an audio file and returns its URL.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang, voice string) (string, error)
}

// TTSRequest represents the JSON body of a speech request
// swagger:model TTSRequest
type TTSRequest struct {
	// Text to speak
	// required: true
	// default: bonjour
	Text string `json:"text"`

	// Language code
	// default: en
	Lang string `json:"lang"`

	// Accepted and ignored
	// default: female
	Voice string `json:"voice"`
}

// TTSResponse holds the URL of the synthesized audio
// swagger:model TTSResponse
type TTSResponse struct {
	// default: /static/audio/6f1c.wav
	AudioURL string `json:"audio_url"`
}

// NewTTSHandler returns an HTTP handler synthesizing speech.
// @Summary Text to speech
// @Tags speech
// @Accept json
// @Produce json
// @Param request body handlers.TTSRequest true "TTS Request"
// @Success 200 {object} handlers.TTSResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse "TTS error"
// @Router /tts [post]
// @Security CookieAuth
func NewTTSHandler(svc SpeechSynthesizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var req TTSRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), ErrorResponse{Error: "Invalid request body"})
			return
		}

		url, err := svc.Synthesize(r.Context(), req.Text, req.Lang, req.Voice)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "TTS error: " + err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, TTSResponse{AudioURL: url})
	}
}
