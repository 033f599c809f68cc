package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAddFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockFavoriteAdder(ctrl)
	userID := uuid.New()

	svc.EXPECT().Add(gomock.Any(), userID, "hello", "bonjour", "en", "fr").Return(int64(5), nil)

	rec := httptest.NewRecorder()
	req := newJSONRequest(t, http.MethodPost, "/favorite", FavoriteRequest{Phrase: "hello", Translation: "bonjour", Source: "en", Target: "fr"})
	NewAddFavoriteHandler(svc).ServeHTTP(rec, withUser(req, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FavoriteResponse{Status: "ok", ID: 5}, decodeBody[FavoriteResponse](t, rec))

	rec = httptest.NewRecorder()
	NewAddFavoriteHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/favorite", FavoriteRequest{}), userID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockFavoriteLister(ctrl)
	userID := uuid.New()

	svc.EXPECT().List(gomock.Any(), userID).Return([]models.FavoriteDB{{ID: 1, Phrase: "hello"}}, nil)

	rec := httptest.NewRecorder()
	NewFavoritesHandler(svc).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/favorites", nil), userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	favs := decodeBody[[]models.FavoriteDB](t, rec)
	assert.Len(t, favs, 1)
	assert.Equal(t, "hello", favs[0].Phrase)
}

func TestRemoveFavoriteHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "removed", expectedCode: http.StatusOK, expectedBody: "ok"},
		{name: "not found", err: services.ErrNotFound, expectedCode: http.StatusNotFound, expectedBody: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockFavoriteRemover(ctrl)
			svc.EXPECT().Remove(gomock.Any(), userID, int64(9)).Return(tt.err)

			rec := httptest.NewRecorder()
			NewRemoveFavoriteHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/remove_favorite", RemoveFavoriteRequest{FavID: 9}), userID))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, decodeBody[StatusResponse](t, rec).Status)
		})
	}
}

func TestClearFavoritesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockFavoriteClearer(ctrl)
	userID := uuid.New()
	svc.EXPECT().Clear(gomock.Any(), userID).Return(nil)

	rec := httptest.NewRecorder()
	NewClearFavoritesHandler(svc).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodPost, "/clear_favorites", nil), userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[StatusResponse](t, rec).Status)
}
