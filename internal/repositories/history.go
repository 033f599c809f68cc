package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

// HistoryWriteRepository handles chat history write operations
type HistoryWriteRepository struct {
	db *sqlx.DB
}

func NewHistoryWriteRepository(db *sqlx.DB) *HistoryWriteRepository {
	return &HistoryWriteRepository{db: db}
}

// Save appends an entry and returns its id.
func (r *HistoryWriteRepository) Save(ctx context.Context, entry models.ChatHistoryDB) (int64, error) {
	const query = `
		INSERT INTO chat_history (user_id, message, translated, source_lang, target_lang, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	args := []any{entry.UserID, entry.Message, entry.Translated, entry.SourceLang, entry.TargetLang}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	logQuery(query, args, id, err)

	return id, err
}

// UpdateRating sets rating and feedback of an entry owned by userID.
// It reports false when no such entry belongs to the user.
func (r *HistoryWriteRepository) UpdateRating(ctx context.Context, userID uuid.UUID, id int64, rating int, feedback string) (bool, error) {
	const query = `
		UPDATE chat_history
		SET rating = $3, feedback = $4
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID, rating, feedback}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByUserID removes every entry of the user and returns how many were removed.
func (r *HistoryWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM chat_history WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	return rowsAffected, err
}

// HistoryReadRepository handles chat history read operations
type HistoryReadRepository struct {
	db *sqlx.DB
}

func NewHistoryReadRepository(db *sqlx.DB) *HistoryReadRepository {
	return &HistoryReadRepository{db: db}
}

// ListByUserID returns the user's entries, most recent first. A limit <= 0 returns all of them.
func (r *HistoryReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatHistoryDB, error) {
	const query = `
		SELECT id, user_id, message, translated, source_lang, target_lang, created_at, rating, feedback
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	// LIMIT NULL means no limit
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	entries := []models.ChatHistoryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID, limitArg)
	logQuery(query, []any{userID, limitArg}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
