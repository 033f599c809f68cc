package services

//go:generate mockgen -source=speech.go -destination=speech_mock.go -package=services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

const defaultSpeechLang = "en"

// SpeechEngine renders text to a WAV file.
type SpeechEngine interface {
	Synthesize(ctx context.Context, text, lang, outPath string) error
}

// SpeechService synthesizes audio files served under urlPrefix.
type SpeechService struct {
	engine    SpeechEngine
	audioDir  string
	urlPrefix string
}

func NewSpeechService(engine SpeechEngine, audioDir, urlPrefix string) *SpeechService {
	return &SpeechService{
		engine:    engine,
		audioDir:  audioDir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// Synthesize returns the URL of a new audio file for text. The voice is accepted
// for compatibility and ignored by the engine.
func (s *SpeechService) Synthesize(ctx context.Context, text, lang, voice string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(lang) == "" {
		lang = defaultSpeechLang
	}

	name := uuid.NewString() + ".wav"
	path := filepath.Join(s.audioDir, name)

	if err := s.engine.Synthesize(ctx, text, lang, path); err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.FromContext(ctx).Warnw("failed to remove partial audio", "path", path, "error", rmErr)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	logger.FromContext(ctx).Infow("speech synthesized", "file", name, "lang", lang, "voice", voice)
	return s.urlPrefix + "/" + name, nil
}
