package services

//go:generate mockgen -source=translation.go -destination=translation_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

// Instructions prepended to the text for the formal and informal tone hints.
const (
	formalPrefix   = "Please translate formally: "
	informalPrefix = "Please translate informally: "
)

// TranslationEngine translates text between languages.
type TranslationEngine interface {
	Translate(ctx context.Context, text, source, target string) (*models.Translation, error)
}

// TranslationService translates text and records every call in the history.
type TranslationService struct {
	engine  TranslationEngine
	history HistoryWriter
	events  *EventPublisher
}

func NewTranslationService(engine TranslationEngine, history HistoryWriter, events *EventPublisher) *TranslationService {
	return &TranslationService{engine: engine, history: history, events: events}
}

// Translate calls the engine and appends exactly one history entry. An engine
// failure does not return an error: the result carries the error text and Failed is set.
func (s *TranslationService) Translate(ctx context.Context, userID uuid.UUID, source, target, text, tone string) (*models.TranslationResult, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	source = strings.TrimSpace(source)
	if source == "" {
		source = models.AutoDetect
	}

	query := text
	switch tone {
	case models.ContextFormal:
		query = formalPrefix + text
	case models.ContextInformal:
		query = informalPrefix + text
	}

	result := &models.TranslationResult{DetectedSource: source}

	tr, err := s.engine.Translate(ctx, query, source, target)
	if err != nil {
		result.Translated = fmt.Sprintf("Translation error: %v", err)
		result.Failed = true
	} else {
		result.Translated = tr.Text
		if source == models.AutoDetect && tr.DetectedLanguage != "" {
			result.DetectedSource = tr.DetectedLanguage
		}
	}

	id, err := s.history.Save(ctx, models.ChatHistoryDB{
		UserID:     userID,
		Message:    storable(text),
		Translated: storable(result.Translated),
		SourceLang: storable(result.DetectedSource),
		TargetLang: storable(target),
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to record translation", "user_id", userID, "error", err)
		return nil, err
	}
	result.HistoryID = id

	outcome := "ok"
	if result.Failed {
		outcome = "error"
	}
	s.events.Publish(ctx, userID, models.OperationTranslate, id, outcome)

	return result, nil
}

// storable drops what Postgres refuses in a text column: invalid UTF-8 and NUL bytes.
func storable(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, "\uFFFD"), "\x00", "")
}
