package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	writeRepo := NewFavoriteWriteRepository(db)
	readRepo := NewFavoriteReadRepository(db)

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	first, err := writeRepo.Save(ctx, models.FavoriteDB{UserID: alice, Phrase: "hello", Translation: "bonjour", SourceLang: "en", TargetLang: "fr"})
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.FavoriteDB{UserID: alice, Phrase: "thanks", Translation: "merci", SourceLang: "en", TargetLang: "fr"})
	require.NoError(t, err)
	bobFav, err := writeRepo.Save(ctx, models.FavoriteDB{UserID: bob, Phrase: "yes", Translation: "oui", SourceLang: "english", TargetLang: "french-fr"})
	require.NoError(t, err)

	t.Run("ListInInsertionOrder", func(t *testing.T) {
		favs, err := readRepo.ListByUserID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, favs, 2)
		assert.Equal(t, "hello", favs[0].Phrase)
		assert.Equal(t, "merci", favs[1].Translation)
	})

	t.Run("DeleteForeignFavorite", func(t *testing.T) {
		ok, err := writeRepo.DeleteByID(ctx, bob, first)
		require.NoError(t, err)
		assert.False(t, ok)

		favs, err := readRepo.ListByUserID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, favs, 2)
		assert.Equal(t, first, favs[0].ID)
	})

	t.Run("DeleteOwnFavorite", func(t *testing.T) {
		ok, err := writeRepo.DeleteByID(ctx, alice, first)
		require.NoError(t, err)
		assert.True(t, ok)

		favs, err := readRepo.ListByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, favs, 1)
	})

	t.Run("DeleteByUser", func(t *testing.T) {
		n, err := writeRepo.DeleteByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		favs, err := readRepo.ListByUserID(ctx, bob)
		require.NoError(t, err)
		require.Len(t, favs, 1)
		assert.Equal(t, bobFav, favs[0].ID)
		assert.Equal(t, "french-fr", favs[0].TargetLang)
	})
}

func TestFavoriteWriteRepository_DeleteByID_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteWriteRepository(db)

	userID := uuid.New()
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(int64(3), userID).
		WillReturnError(errors.New("db down"))

	ok, err := repo.DeleteByID(context.Background(), userID, 3)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery("SELECT id, user_id, phrase").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "phrase", "translation", "source_lang", "target_lang", "created_at"}))

	favs, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}
