package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTTSHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockSpeechSynthesizer(ctrl)
		svc.EXPECT().Synthesize(gomock.Any(), "bonjour", "fr", "male").Return("/static/audio/a.wav", nil)

		rec := httptest.NewRecorder()
		NewTTSHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/tts", TTSRequest{Text: "bonjour", Lang: "fr", Voice: "male"}), userID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/static/audio/a.wav", decodeBody[TTSResponse](t, rec).AudioURL)
	})

	t.Run("engine failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockSpeechSynthesizer(ctrl)
		svc.EXPECT().Synthesize(gomock.Any(), "bonjour", "", "").
			Return("", fmt.Errorf("%w: %v", services.ErrUpstream, errors.New("espeak-ng: exit status 1")))

		rec := httptest.NewRecorder()
		NewTTSHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/tts", TTSRequest{Text: "bonjour"}), userID))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeBody[ErrorResponse](t, rec).Error, "TTS error: ")
	})

	t.Run("empty text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockSpeechSynthesizer(ctrl)
		svc.EXPECT().Synthesize(gomock.Any(), "", "", "").Return("", services.ErrInvalidInput)

		rec := httptest.NewRecorder()
		NewTTSHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/tts", TTSRequest{}), userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
