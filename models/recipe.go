package models

// Recipe is a published recipe as served by the remote API.
// List endpoints omit Steps; only the detail endpoint returns them.
type Recipe struct {
	// ID is the server-assigned recipe identifier.
	ID string `json:"id"`

	// UserID identifies the author account.
	UserID string `json:"user_id"`

	// Title is the display name of the recipe.
	Title string `json:"title"`

	// Description is a short free-form summary.
	Description string `json:"description"`

	// CuisineType is a free-form cuisine label (e.g. "Italian").
	CuisineType string `json:"cuisine_type"`

	// Difficulty is one of "Easy", "Medium", "Hard".
	Difficulty string `json:"difficulty"`

	// PrepTimeMin is the preparation time in minutes.
	PrepTimeMin int `json:"prep_time_min"`

	// CookTimeMin is the cooking time in minutes.
	CookTimeMin int `json:"cook_time_min"`

	// Servings is the number of portions the recipe yields.
	Servings int `json:"servings"`

	// Ingredients lists the required ingredients with quantities.
	Ingredients []Ingredient `json:"ingredients"`

	// Steps is the ordered cooking walkthrough. Empty in list responses.
	Steps []Step `json:"steps,omitempty"`

	// CreatedAt and UpdatedAt are server-formatted timestamps, kept opaque.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Ingredient is a single entry of a recipe's ingredient list.
type Ingredient struct {
	// Name is the ingredient name (e.g. "Flour").
	Name string `json:"name"`

	// Qty is the amount in Unit units.
	Qty float64 `json:"qty"`

	// Unit is the measurement unit (e.g. "cups").
	Unit string `json:"unit"`
}

// Step is one instruction of a recipe walkthrough with optional media
// attached by the author. Media entries are server-side paths.
type Step struct {
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
	Videos []string `json:"videos,omitempty"`
}

// TotalTimeMin returns combined preparation and cooking time.
func (r Recipe) TotalTimeMin() int {
	return r.PrepTimeMin + r.CookTimeMin
}

// RecipeInput carries the author-editable recipe fields sent on create and
// update. Ingredients and Steps are serialized to JSON form fields on the
// wire because the API accepts them alongside multipart media uploads.
type RecipeInput struct {
	Title       string
	Description string
	CuisineType string
	Difficulty  string
	PrepTimeMin int
	CookTimeMin int
	Servings    int
	Ingredients []Ingredient
	Steps       []Step
}
