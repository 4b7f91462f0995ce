// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// MainPageViewModel holds everything the front page renders.
type MainPageViewModel struct {
	Recipes    []RecipeCardViewModel
	Categories []CategoryViewModel
}

// CategoryViewModel is one entry of the category sidebar. RecipeCount counts
// only the recipes listed on the current page.
type CategoryViewModel struct {
	ID          int64
	Name        string
	RecipeCount int
}

// RecipeCardViewModel holds presentation-ready data for a recipe in a list.
type RecipeCardViewModel struct {
	ID               int64
	Title            string
	CategoryName     string
	DetailPath       string
	CreatedAtISO     string
	CreatedAtDisplay string
}

// RecipeDetailViewModel holds presentation-ready data for the recipe page.
// The *HTML fields are sanitized and safe to emit unescaped.
type RecipeDetailViewModel struct {
	RecipeCardViewModel

	DescriptionHTML  string
	IngredientsHTML  string
	InstructionsHTML string

	WasEdited        bool
	UpdatedAtISO     string
	UpdatedAtDisplay string

	BackPath string
}
