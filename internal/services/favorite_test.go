package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
)

func newFavoriteService(t *testing.T) (*services.FavoriteService, *services.MockFavoriteReader, *services.MockFavoriteWriter) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockFavoriteReader(ctrl)
	writer := services.NewMockFavoriteWriter(ctrl)
	return services.NewFavoriteService(reader, writer, nil), reader, writer
}

func TestFavoriteService_Add(t *testing.T) {
	svc, _, writer := newFavoriteService(t)
	userID := uuid.New()

	writer.EXPECT().Save(gomock.Any(), models.FavoriteDB{
		UserID:      userID,
		Phrase:      "hello",
		Translation: "bonjour",
		SourceLang:  "en",
		TargetLang:  "fr",
	}).Return(int64(7), nil)

	id, err := svc.Add(context.Background(), userID, "hello", "bonjour", "en", "fr")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = svc.Add(context.Background(), userID, " ", "x", "en", "fr")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestFavoriteService_Remove(t *testing.T) {
	userID := uuid.New()

	t.Run("own favorite", func(t *testing.T) {
		svc, _, writer := newFavoriteService(t)
		writer.EXPECT().DeleteByID(gomock.Any(), userID, int64(7)).Return(true, nil)
		assert.NoError(t, svc.Remove(context.Background(), userID, 7))
	})

	t.Run("foreign favorite", func(t *testing.T) {
		svc, _, writer := newFavoriteService(t)
		writer.EXPECT().DeleteByID(gomock.Any(), userID, int64(8)).Return(false, nil)
		assert.ErrorIs(t, svc.Remove(context.Background(), userID, 8), services.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		svc, _, writer := newFavoriteService(t)
		writer.EXPECT().DeleteByID(gomock.Any(), userID, int64(9)).Return(false, errors.New("db error"))
		err := svc.Remove(context.Background(), userID, 9)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrNotFound)
	})
}

func TestFavoriteService_ClearAndList(t *testing.T) {
	svc, reader, writer := newFavoriteService(t)
	userID := uuid.New()

	writer.EXPECT().DeleteByUserID(gomock.Any(), userID).Return(int64(2), nil)
	assert.NoError(t, svc.Clear(context.Background(), userID))

	reader.EXPECT().ListByUserID(gomock.Any(), userID).Return([]models.FavoriteDB{}, nil)
	favs, err := svc.List(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, favs)
}
