package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatHistoryDB represents one translation request/result of a user.
type ChatHistoryDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key, increases per insert
	UserID     uuid.UUID `json:"-" db:"user_id"`               // Owner
	Message    string    `json:"message" db:"message"`         // Original text
	Translated string    `json:"translated" db:"translated"`   // Translation, or the error text of a failed call
	SourceLang string    `json:"source_lang" db:"source_lang"` // Explicit or detected source language
	TargetLang string    `json:"target_lang" db:"target_lang"` // Target language
	CreatedAt  time.Time `json:"timestamp" db:"created_at"`    // Server-assigned creation time
	Rating     *int      `json:"rating" db:"rating"`           // Optional 1-5 stars
	Feedback   *string   `json:"feedback" db:"feedback"`       // Optional free text
}
