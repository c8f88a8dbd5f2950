package models

// Cooking-session statuses as reported by the history endpoint.
const (
	CookingInProgress = "in_progress"
	CookingCompleted  = "completed"
)

// CookingRecord is one entry of the account's cooking history. Records are
// created by the start endpoint and closed by the complete endpoint; the
// client may also hold locally queued records not yet uploaded.
type CookingRecord struct {
	// ID is the server-assigned history record identifier. For records
	// queued offline this is a client-generated UUID until upload.
	ID string `json:"id"`

	// UserID identifies the cooking account.
	UserID string `json:"user_id"`

	// RecipeID and RecipeTitle identify the recipe cooked. The title is
	// denormalized so history renders without extra lookups.
	RecipeID    string `json:"recipe_id"`
	RecipeTitle string `json:"recipe_title"`

	// Status is [CookingInProgress] or [CookingCompleted].
	Status string `json:"status"`

	// StartedAt is the server-formatted start timestamp.
	StartedAt string `json:"started_at"`

	// CompletedAt is nil while the session is in progress.
	CompletedAt *string `json:"completed_at"`
}
