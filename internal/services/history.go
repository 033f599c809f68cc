package services

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

// HistoryReader reads the chat history of a user.
type HistoryReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatHistoryDB, error)
}

// HistoryWriter mutates the chat history of a user.
type HistoryWriter interface {
	Save(ctx context.Context, entry models.ChatHistoryDB) (int64, error)
	UpdateRating(ctx context.Context, userID uuid.UUID, id int64, rating int, feedback string) (bool, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// HistoryService manages the chat history ledger.
type HistoryService struct {
	reader HistoryReader
	writer HistoryWriter
	events *EventPublisher
}

func NewHistoryService(reader HistoryReader, writer HistoryWriter, events *EventPublisher) *HistoryService {
	return &HistoryService{reader: reader, writer: writer, events: events}
}

// List returns the newest entries first; limit <= 0 means all.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatHistoryDB, error) {
	entries, err := s.reader.ListByUserID(ctx, userID, limit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list history", "user_id", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

// Rate sets rating and feedback of an entry owned by the user.
func (s *HistoryService) Rate(ctx context.Context, userID uuid.UUID, historyID int64, rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	ok, err := s.writer.UpdateRating(ctx, userID, historyID, rating, feedback)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to rate history entry", "history_id", historyID, "error", err)
		return err
	}
	if !ok {
		return ErrForbidden
	}

	s.events.Publish(ctx, userID, models.OperationRate, historyID, "")
	return nil
}

// Clear removes every entry of the user.
func (s *HistoryService) Clear(ctx context.Context, userID uuid.UUID) error {
	n, err := s.writer.DeleteByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to clear history", "user_id", userID, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("history cleared", "user_id", userID, "deleted", n)
	s.events.Publish(ctx, userID, models.OperationClearHistory, 0, "")
	return nil
}
