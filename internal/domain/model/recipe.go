package model

import "time"

// Field metadata for Recipe.
const (
	RecipeTitleField     = "title"
	RecipeTitleMaxLength = 200
)

// Recipe describes a dish. Every recipe is owned by exactly one Category.
type Recipe struct {
	ID           int64
	Title        string
	Description  string
	Instructions string
	Ingredients  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CategoryID   int64

	// Category is populated by store reads. Writes only look at CategoryID.
	Category *Category
}

// String returns the recipe title.
func (r Recipe) String() string {
	return r.Title
}

// Validate reports an ErrValidation-wrapped error if the title is blank or
// longer than RecipeTitleMaxLength characters.
func (r Recipe) Validate() error {
	return validateBoundedText(RecipeTitleField, r.Title, RecipeTitleMaxLength)
}

// ResolveCategory assigns DefaultCategoryID when no category was given.
func (r *Recipe) ResolveCategory() {
	if r.CategoryID == 0 {
		r.CategoryID = DefaultCategoryID
	}
}

// Stamp sets the creation timestamps. A caller-supplied CreatedAt is kept
// so fixtures and imports can backdate recipes. UpdatedAt starts equal to
// CreatedAt.
func (r *Recipe) Stamp(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.CreatedAt
}

// Touch records a mutation. CreatedAt is never changed after Stamp.
func (r *Recipe) Touch(now time.Time) {
	r.UpdatedAt = now.UTC()
}

// CategoryName returns the owning category's name, or "" when the category
// has not been loaded.
func (r Recipe) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Name
}
