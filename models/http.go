package models

// Response envelopes of the recipe-sharing API. Field names mirror the
// server's JSON contract exactly; the client treats them as read-only.

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// MeResponse is returned by the profile read and update endpoints.
type MeResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// RecipeListResponse is returned by the recipe list and search endpoints.
type RecipeListResponse struct {
	Items []Recipe `json:"items"`
	Total int      `json:"total"`
	Skip  int      `json:"skip"`
	Limit int      `json:"limit"`
}

// RecipeResponse is returned by the recipe detail, create and update
// endpoints.
type RecipeResponse struct {
	Message string `json:"message,omitempty"`
	Recipe  Recipe `json:"recipe"`
}

// StartCookingResponse is returned when a cooking session is opened.
type StartCookingResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HistoryResponse is returned by the cooking history endpoint.
type HistoryResponse struct {
	Items []CookingRecord `json:"items"`
}

// RecipeFilter narrows recipe list requests. Zero values mean "no filter";
// Limit falls back to the server default when zero.
type RecipeFilter struct {
	// Query matches against title and description, case-insensitive.
	Query string

	// Cuisine filters by cuisine label, case-insensitive substring.
	Cuisine string

	// Difficulty filters by exact difficulty value.
	Difficulty string

	// MaxTimeMin keeps recipes whose cook time does not exceed it.
	// Zero disables the filter.
	MaxTimeMin int

	// Skip and Limit control paging.
	Skip  int
	Limit int
}
