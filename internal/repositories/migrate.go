package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		translated TEXT NOT NULL,
		source_lang TEXT NOT NULL DEFAULT '',
		target_lang TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		rating SMALLINT CHECK (rating BETWEEN 1 AND 5),
		feedback TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_history_user_created
		ON chat_history (user_id, created_at DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		phrase TEXT NOT NULL,
		translation TEXT NOT NULL,
		source_lang TEXT NOT NULL DEFAULT '',
		target_lang TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites (user_id, id)`,
	// Language codes come straight from clients; widen columns created as VARCHAR(10).
	`ALTER TABLE chat_history ALTER COLUMN source_lang TYPE TEXT, ALTER COLUMN target_lang TYPE TEXT`,
	`ALTER TABLE favorites ALTER COLUMN source_lang TYPE TEXT, ALTER COLUMN target_lang TYPE TEXT`,
}

// Migrate creates the tables used by the repositories if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, m := range migrations {
		_, err := db.ExecContext(ctx, m)
		logQuery(m, nil, i, err)
		if err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	logger.Log.Infow("database schema is up to date", "migrations", len(migrations))
	return nil
}
