package handlers

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/services"
)

// FavoriteAdder saves a favorite.
type FavoriteAdder interface {
	Add(ctx context.Context, userID uuid.UUID, phrase, translation, source, target string) (int64, error)
}

// FavoriteRemover removes one favorite.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, id int64) error
}

// FavoriteClearer removes all favorites of a user.
type FavoriteClearer interface {
	Clear(ctx context.Context, userID uuid.UUID) error
}

// FavoriteRequest represents the JSON body of a new favorite
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	// required: true
	// default: hello
	Phrase string `json:"phrase" validate:"required"`

	// default: bonjour
	Translation string `json:"translation"`

	// default: en
	Source string `json:"source"`

	// default: fr
	Target string `json:"target"`
}

// FavoriteResponse is returned for a saved favorite
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	// default: ok
	Status string `json:"status"`

	// default: 1
	ID int64 `json:"id"`
}

// RemoveFavoriteRequest represents the JSON body of a removal
// swagger:model RemoveFavoriteRequest
type RemoveFavoriteRequest struct {
	// required: true
	// default: 1
	FavID int64 `json:"fav_id" validate:"required"`
}

// NewAddFavoriteHandler saves a phrase to the user's favorites.
// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body handlers.FavoriteRequest true "Favorite"
// @Success 200 {object} handlers.FavoriteResponse
// @Failure 400 {object} handlers.StatusResponse
// @Router /favorite [post]
// @Security CookieAuth
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req FavoriteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), StatusResponse{Status: statusError})
			return
		}

		id, err := svc.Add(r.Context(), userID, req.Phrase, req.Translation, req.Source, req.Target)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrInvalidInput) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, StatusResponse{Status: statusError})
			return
		}

		writeJSON(w, http.StatusOK, FavoriteResponse{Status: statusOK, ID: id})
	}
}

// NewFavoritesHandler lists the user's favorites.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} models.FavoriteDB
// @Router /favorites [get]
// @Security CookieAuth
func NewFavoritesHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		favs, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list favorites", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, favs)
	}
}

// NewRemoveFavoriteHandler removes one favorite of the user.
// @Summary Remove favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body handlers.RemoveFavoriteRequest true "Favorite id"
// @Success 200 {object} handlers.StatusResponse
// @Failure 404 {object} handlers.StatusResponse "Favorite missing or owned by another user"
// @Router /remove_favorite [post]
// @Security CookieAuth
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req RemoveFavoriteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, decodeStatus(err), StatusResponse{Status: statusError})
			return
		}

		err := svc.Remove(r.Context(), userID, req.FavID)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, StatusResponse{Status: statusOK})
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, StatusResponse{Status: statusError})
		default:
			writeJSON(w, http.StatusInternalServerError, StatusResponse{Status: statusError})
		}
	}
}

// NewClearFavoritesHandler removes all favorites of the user.
// @Summary Clear favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Router /clear_favorites [post]
// @Security CookieAuth
func NewClearFavoritesHandler(svc FavoriteClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.Clear(r.Context(), userID); err != nil {
			writeJSON(w, http.StatusInternalServerError, StatusResponse{Status: statusError})
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{Status: statusOK})
	}
}
