package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
	"github.com/ericfisherdev/recipecatalog/internal/domain/port/driven"
)

// --- In-memory fakes ---

type fakeCatalog struct {
	categories   map[int64]model.Category
	recipes      map[int64]model.Recipe
	nextCategory int64
	nextRecipe   int64
	lastFilter   driven.RecipeFilter
	createCalls  int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: map[int64]model.Category{},
		recipes:    map[int64]model.Recipe{},
	}
}

type fakeCategoryStore struct{ *fakeCatalog }

func (f fakeCategoryStore) Create(_ context.Context, c model.Category) (model.Category, error) {
	f.nextCategory++
	c.ID = f.nextCategory
	f.categories[c.ID] = c
	return c, nil
}

func (f fakeCategoryStore) GetByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, driven.ErrCategoryNotFound
	}
	return &c, nil
}

func (f fakeCategoryStore) ListAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeCategoryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return driven.ErrCategoryNotFound
	}
	delete(f.categories, id)
	for rid, r := range f.recipes {
		if r.CategoryID == id {
			delete(f.recipes, rid)
		}
	}
	return nil
}

type fakeRecipeStore struct{ *fakeCatalog }

func (f fakeRecipeStore) Create(_ context.Context, r model.Recipe) (model.Recipe, error) {
	f.createCalls++
	if _, ok := f.categories[r.CategoryID]; !ok {
		return model.Recipe{}, fmt.Errorf("create recipe: %w", driven.ErrCategoryReference)
	}
	f.nextRecipe++
	r.ID = f.nextRecipe
	f.recipes[r.ID] = r
	return r, nil
}

func (f fakeRecipeStore) GetByID(_ context.Context, id int64) (*model.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, driven.ErrRecipeNotFound
	}
	c := f.categories[r.CategoryID]
	r.Category = &c
	return &r, nil
}

func (f fakeRecipeStore) List(_ context.Context, filter driven.RecipeFilter) ([]model.Recipe, error) {
	f.fakeCatalog.lastFilter = filter
	var out []model.Recipe
	for _, r := range f.recipes {
		if !filter.CreatedBefore.IsZero() && r.CreatedAt.After(filter.CreatedBefore) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeRecipeStore) Update(_ context.Context, r model.Recipe) error {
	if _, ok := f.recipes[r.ID]; !ok {
		return driven.ErrRecipeNotFound
	}
	if _, ok := f.categories[r.CategoryID]; !ok {
		return driven.ErrCategoryReference
	}
	f.recipes[r.ID] = r
	return nil
}

func (f fakeRecipeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.recipes[id]; !ok {
		return driven.ErrRecipeNotFound
	}
	delete(f.recipes, id)
	return nil
}

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*CatalogService, *fakeCatalog) {
	t.Helper()
	fc := newFakeCatalog()
	svc := NewCatalogService(fakeCategoryStore{fc}, fakeRecipeStore{fc}, DefaultListingPolicy()).
		WithClock(func() time.Time { return testNow })
	return svc, fc
}

// --- Tests ---

func TestCatalogService_CreateCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Dessert", c.String())

	_, err = svc.CreateCategory(ctx, strings.Repeat("a", 201))
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCatalogService_CreateRecipe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dessert, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)

	recipe, err := svc.CreateRecipe(ctx, RecipeInput{
		Title:        "Chocolate Cake",
		Description:  "Delicious chocolate cake recipe",
		Instructions: "1. Preheat the oven...",
		Ingredients:  "Flour, sugar, cocoa powder...",
		CategoryID:   dessert.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Chocolate Cake", recipe.Title)
	assert.Equal(t, "Chocolate Cake", recipe.String())
	require.NotNil(t, recipe.Category)
	assert.Equal(t, "Dessert", recipe.Category.Name)
	assert.Equal(t, testNow, recipe.CreatedAt)
	assert.Equal(t, testNow, recipe.UpdatedAt)
}

func TestCatalogService_CreateRecipe_DefaultCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Loose Recipe"})
	assert.ErrorIs(t, err, driven.ErrCategoryReference, "category 1 does not exist yet")

	_, err = svc.CreateCategory(ctx, "Uncategorized")
	require.NoError(t, err)

	recipe, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Loose Recipe"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategoryID, recipe.CategoryID)
	assert.Equal(t, "Uncategorized", recipe.CategoryName())
}

func TestCatalogService_CreateRecipe_ValidationSkipsStore(t *testing.T) {
	svc, fc := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, RecipeInput{Title: strings.Repeat("t", 201), CategoryID: 1})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Zero(t, fc.createCalls, "invalid input never reaches the store")

	_, err = svc.CreateRecipe(ctx, RecipeInput{Title: strings.Repeat("t", 200), CategoryID: 1})
	assert.NoError(t, err)
}

func TestCatalogService_CreateRecipe_BackdatedCreatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)

	past := testNow.AddDate(-3, 0, 0)
	recipe, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Recipe 2", CategoryID: 1, CreatedAt: past})
	require.NoError(t, err)
	assert.Equal(t, past, recipe.CreatedAt)
}

func TestCatalogService_UpdateRecipe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)

	created, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Cake", CategoryID: 1})
	require.NoError(t, err)

	later := testNow.Add(3 * time.Hour)
	svc.WithClock(func() time.Time { return later })

	updated, err := svc.UpdateRecipe(ctx, created.ID, RecipeInput{
		Title:      "Better Cake",
		CategoryID: 1,
		CreatedAt:  later.AddDate(5, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Better Cake", updated.Title)
	assert.Equal(t, testNow, updated.CreatedAt, "created_at is immutable")
	assert.Equal(t, later, updated.UpdatedAt, "updated_at refreshes on every mutation")
}

func TestCatalogService_UpdateRecipe_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)
	created, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Cake", CategoryID: 1})
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(ctx, 999, RecipeInput{Title: "Nope"})
	assert.ErrorIs(t, err, driven.ErrRecipeNotFound)

	_, err = svc.UpdateRecipe(ctx, created.ID, RecipeInput{Title: ""})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.UpdateRecipe(ctx, created.ID, RecipeInput{Title: "Cake", CategoryID: 42})
	assert.ErrorIs(t, err, driven.ErrCategoryReference)
}

func TestCatalogService_ListFeatured(t *testing.T) {
	svc, fc := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, RecipeInput{Title: "Recipe 1", Description: "Description 1", CategoryID: 1})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, RecipeInput{
		Title:       "Recipe 2",
		Description: "Description 2",
		CategoryID:  1,
		CreatedAt:   time.Date(2023, 2, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	featured, err := svc.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Recipe 2", featured[0].Title)

	assert.Equal(t, testNow.Add(-24*time.Hour), fc.lastFilter.CreatedBefore)
	assert.Equal(t, 50, fc.lastFilter.Limit)
}

func TestCatalogService_DeleteCategory_Cascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	dessert, err := svc.CreateCategory(ctx, "Dessert")
	require.NoError(t, err)
	cake, err := svc.CreateRecipe(ctx, RecipeInput{Title: "Cake", CategoryID: dessert.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, dessert.ID))

	_, err = svc.GetRecipe(ctx, cake.ID)
	assert.True(t, errors.Is(err, driven.ErrRecipeNotFound))

	err = svc.DeleteCategory(ctx, dessert.ID)
	assert.ErrorIs(t, err, driven.ErrCategoryNotFound)
}
