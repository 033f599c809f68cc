package handlers

//go:generate mockgen -source=index.go -destination=index_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

const indexHistoryLimit = 20

// HistoryLister lists the chat history of a user, newest first.
type HistoryLister interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatHistoryDB, error)
}

// FavoriteLister lists the favorites of a user.
type FavoriteLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

type indexPage struct {
	History   []models.ChatHistoryDB
	Favorites []models.FavoriteDB
}

// NewIndexHandler renders the main page with the latest history and the favorites.
func NewIndexHandler(history HistoryLister, favorites FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := auth.FromContext(ctx)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		entries, err := history.List(ctx, id.UserID, indexHistoryLimit)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to load history", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		favs, err := favorites.List(ctx, id.UserID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to load favorites", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		renderPage(w, http.StatusOK, "index.html", indexPage{History: entries, Favorites: favs})
	}
}
