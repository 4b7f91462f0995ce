package model

// Field metadata for Category.
const (
	CategoryNameField     = "name"
	CategoryNameMaxLength = 200
)

// DefaultCategoryID is the category a Recipe belongs to when none is given.
const DefaultCategoryID int64 = 1

// Category is a named grouping that owns zero or more recipes.
type Category struct {
	ID   int64
	Name string
}

// String returns the category name.
func (c Category) String() string {
	return c.Name
}

// Validate reports an ErrValidation-wrapped error if the name is blank or
// longer than CategoryNameMaxLength characters.
func (c Category) Validate() error {
	return validateBoundedText(CategoryNameField, c.Name, CategoryNameMaxLength)
}
