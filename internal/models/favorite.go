package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteDB represents a saved phrase/translation pair.
type FavoriteDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      uuid.UUID `json:"-" db:"user_id"`
	Phrase      string    `json:"phrase" db:"phrase"`
	Translation string    `json:"translation" db:"translation"`
	SourceLang  string    `json:"source_lang" db:"source_lang"`
	TargetLang  string    `json:"target_lang" db:"target_lang"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
