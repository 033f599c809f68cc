package models

// Activity operations published as events.
const (
	OperationTranslate      = "translate"
	OperationRate           = "rate"
	OperationClearHistory   = "clear_history"
	OperationAddFavorite    = "add_favorite"
	OperationRemoveFavorite = "remove_favorite"
	OperationClearFavorites = "clear_favorites"
)

// ActivityEvent is an audit record of a user action.
type ActivityEvent struct {
	EventID   string `json:"event_id"`            // Unique identifier of the event
	Timestamp int64  `json:"timestamp"`           // Unix time in seconds
	UserID    string `json:"user_id"`             // Acting user
	Operation string `json:"operation"`           // One of the Operation* constants
	RecordID  int64  `json:"record_id,omitempty"` // History or favorite id, when there is one
	Outcome   string `json:"outcome,omitempty"`   // "ok" or "error" for engine-backed operations
}
