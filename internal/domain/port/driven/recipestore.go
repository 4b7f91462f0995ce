package driven

import (
	"context"
	"errors"
	"time"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
)

// Sentinel errors returned by RecipeStore implementations.
var (
	// ErrRecipeNotFound indicates the requested recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrCategoryReference indicates a recipe points at a category that does
	// not exist.
	ErrCategoryReference = errors.New("recipe references a category that does not exist")
)

// RecipeFilter narrows RecipeStore.List. Zero fields are not applied.
type RecipeFilter struct {
	// CreatedBefore keeps recipes created at or before this instant.
	CreatedBefore time.Time
	CategoryID    int64
	Limit         int
}

// RecipeStore defines the driven port for recipe persistence.
// Create and Update return ErrCategoryReference for a dangling CategoryID.
// GetByID, Update and Delete return ErrRecipeNotFound for unknown ids.
// Reads populate Recipe.Category. List orders newest first.
type RecipeStore interface {
	Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error)
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error)
	Update(ctx context.Context, recipe model.Recipe) error
	Delete(ctx context.Context, id int64) error
}
