package services

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

// FavoriteReader reads favorites of a user.
type FavoriteReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

// FavoriteWriter mutates favorites of a user.
type FavoriteWriter interface {
	Save(ctx context.Context, fav models.FavoriteDB) (int64, error)
	DeleteByID(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// FavoriteService manages saved phrases.
type FavoriteService struct {
	reader FavoriteReader
	writer FavoriteWriter
	events *EventPublisher
}

func NewFavoriteService(reader FavoriteReader, writer FavoriteWriter, events *EventPublisher) *FavoriteService {
	return &FavoriteService{reader: reader, writer: writer, events: events}
}

// Add saves a phrase/translation pair and returns its id.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, phrase, translation, source, target string) (int64, error) {
	if strings.TrimSpace(phrase) == "" {
		return 0, fmt.Errorf("%w: phrase is required", ErrInvalidInput)
	}

	id, err := s.writer.Save(ctx, models.FavoriteDB{
		UserID:      userID,
		Phrase:      phrase,
		Translation: translation,
		SourceLang:  source,
		TargetLang:  target,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save favorite", "user_id", userID, "error", err)
		return 0, err
	}

	s.events.Publish(ctx, userID, models.OperationAddFavorite, id, "")
	return id, nil
}

// Remove deletes one favorite of the user.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, id int64) error {
	ok, err := s.writer.DeleteByID(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to remove favorite", "favorite_id", id, "error", err)
		return err
	}
	if !ok {
		return ErrNotFound
	}

	s.events.Publish(ctx, userID, models.OperationRemoveFavorite, id, "")
	return nil
}

// Clear removes every favorite of the user.
func (s *FavoriteService) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.writer.DeleteByUserID(ctx, userID); err != nil {
		logger.FromContext(ctx).Errorw("failed to clear favorites", "user_id", userID, "error", err)
		return err
	}

	s.events.Publish(ctx, userID, models.OperationClearFavorites, 0, "")
	return nil
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	favs, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}
	return favs, nil
}
