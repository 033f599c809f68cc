package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

// FavoriteWriteRepository handles favorite write operations
type FavoriteWriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Save stores a favorite and returns its id.
func (r *FavoriteWriteRepository) Save(ctx context.Context, fav models.FavoriteDB) (int64, error) {
	const query = `
		INSERT INTO favorites (user_id, phrase, translation, source_lang, target_lang, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	args := []any{fav.UserID, fav.Phrase, fav.Translation, fav.SourceLang, fav.TargetLang}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	logQuery(query, args, id, err)

	return id, err
}

// DeleteByID removes the favorite when it belongs to userID and reports whether it did.
func (r *FavoriteWriteRepository) DeleteByID(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	const query = `DELETE FROM favorites WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, userID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByUserID removes every favorite of the user.
func (r *FavoriteWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM favorites WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	return rowsAffected, err
}

// FavoriteReadRepository handles favorite read operations
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// ListByUserID returns the user's favorites in insertion order.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	const query = `
		SELECT id, user_id, phrase, translation, source_lang, target_lang, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id
	`

	favorites := []models.FavoriteDB{}
	err := r.db.SelectContext(ctx, &favorites, query, userID)
	logQuery(query, []any{userID}, len(favorites), err)

	if err != nil {
		return nil, err
	}
	return favorites, nil
}
