package application

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
	"github.com/ericfisherdev/recipecatalog/internal/domain/port/driven"
)

// ListingPolicy controls which recipes appear on the front page. A recipe is
// listed once it is at least Delay old; at most Limit recipes are shown.
type ListingPolicy struct {
	Delay time.Duration
	Limit int
}

// DefaultListingPolicy lists recipes that are a day old, fifty at a time.
func DefaultListingPolicy() ListingPolicy {
	return ListingPolicy{Delay: 24 * time.Hour, Limit: 50}
}

// RecipeInput carries the caller-editable fields of a recipe. CreatedAt is
// honored on create only; a zero value means "now".
type RecipeInput struct {
	Title        string
	Description  string
	Instructions string
	Ingredients  string
	CategoryID   int64
	CreatedAt    time.Time
}

// CatalogService is the use-case layer for categories and recipes. It owns
// validation, default-category resolution, timestamps and the listing policy,
// and depends only on port interfaces.
type CatalogService struct {
	categories driven.CategoryStore
	recipes    driven.RecipeStore
	policy     ListingPolicy
	now        func() time.Time
}

// NewCatalogService creates a CatalogService with the required dependencies.
func NewCatalogService(categories driven.CategoryStore, recipes driven.RecipeStore, policy ListingPolicy) *CatalogService {
	return &CatalogService{
		categories: categories,
		recipes:    recipes,
		policy:     policy,
		now:        time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *CatalogService) WithClock(now func() time.Time) *CatalogService {
	s.now = now
	return s
}

// CreateCategory validates and stores a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	category := model.Category{Name: name}
	if err := category.Validate(); err != nil {
		return model.Category{}, err
	}

	return s.categories.Create(ctx, category)
}

// GetCategory returns a category by ID.
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListAll(ctx)
}

// DeleteCategory removes a category and, through the store's cascade, every
// recipe it owns.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

// CreateRecipe validates the input, resolves the default category, stamps
// timestamps and stores the recipe. The returned recipe has its Category
// populated.
func (s *CatalogService) CreateRecipe(ctx context.Context, in RecipeInput) (model.Recipe, error) {
	recipe := model.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Instructions,
		Ingredients:  in.Ingredients,
		CategoryID:   in.CategoryID,
		CreatedAt:    in.CreatedAt,
	}
	if err := recipe.Validate(); err != nil {
		return model.Recipe{}, err
	}

	recipe.ResolveCategory()
	recipe.Stamp(s.now())

	created, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		return model.Recipe{}, err
	}

	stored, err := s.recipes.GetByID(ctx, created.ID)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("reload created recipe %d: %w", created.ID, err)
	}

	return *stored, nil
}

// UpdateRecipe replaces the editable fields of an existing recipe and
// refreshes UpdatedAt. CreatedAt in the input is ignored.
func (s *CatalogService) UpdateRecipe(ctx context.Context, id int64, in RecipeInput) (model.Recipe, error) {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return model.Recipe{}, err
	}

	recipe := *existing
	recipe.Title = in.Title
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.Ingredients = in.Ingredients
	recipe.CategoryID = in.CategoryID
	if err := recipe.Validate(); err != nil {
		return model.Recipe{}, err
	}

	recipe.ResolveCategory()
	recipe.Touch(s.now())

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return model.Recipe{}, err
	}

	stored, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("reload updated recipe %d: %w", id, err)
	}

	return *stored, nil
}

// GetRecipe returns a recipe with its category.
func (s *CatalogService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// ListRecipes returns recipes matching the filter, newest first, without
// applying the listing policy.
func (s *CatalogService) ListRecipes(ctx context.Context, filter driven.RecipeFilter) ([]model.Recipe, error) {
	return s.recipes.List(ctx, filter)
}

// ListFeatured returns the recipes shown on the front page: those created at
// least policy.Delay ago, newest first, capped at policy.Limit.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]model.Recipe, error) {
	return s.recipes.List(ctx, driven.RecipeFilter{
		CreatedBefore: s.now().Add(-s.policy.Delay),
		Limit:         s.policy.Limit,
	})
}

// DeleteRecipe removes a single recipe.
func (s *CatalogService) DeleteRecipe(ctx context.Context, id int64) error {
	return s.recipes.Delete(ctx, id)
}
