package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_String(t *testing.T) {
	r := Recipe{Title: "Chocolate Cake"}
	assert.Equal(t, r.Title, r.String())
}

func TestRecipe_FieldMetadata(t *testing.T) {
	assert.Equal(t, "title", RecipeTitleField)
	assert.Equal(t, 200, RecipeTitleMaxLength)
}

func TestRecipe_Validate(t *testing.T) {
	assert.NoError(t, Recipe{Title: strings.Repeat("t", RecipeTitleMaxLength)}.Validate())

	err := Recipe{Title: strings.Repeat("t", RecipeTitleMaxLength+1)}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title")

	assert.ErrorIs(t, Recipe{}.Validate(), ErrValidation)
}

func TestRecipe_ResolveCategory(t *testing.T) {
	r := Recipe{Title: "Soup"}
	r.ResolveCategory()
	assert.Equal(t, DefaultCategoryID, r.CategoryID)

	r = Recipe{Title: "Soup", CategoryID: 7}
	r.ResolveCategory()
	assert.Equal(t, int64(7), r.CategoryID)
}

func TestRecipe_Stamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("zero created_at uses now", func(t *testing.T) {
		r := Recipe{Title: "Soup"}
		r.Stamp(now)
		assert.Equal(t, now, r.CreatedAt)
		assert.Equal(t, now, r.UpdatedAt)
	})

	t.Run("explicit created_at is kept", func(t *testing.T) {
		past := time.Date(2023, 3, 1, 9, 30, 0, 0, time.UTC)
		r := Recipe{Title: "Soup", CreatedAt: past}
		r.Stamp(now)
		assert.Equal(t, past, r.CreatedAt)
		assert.Equal(t, past, r.UpdatedAt)
	})
}

func TestRecipe_Touch(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	r := Recipe{Title: "Soup"}
	r.Stamp(created)

	later := created.Add(2 * time.Hour)
	r.Touch(later)

	assert.Equal(t, created, r.CreatedAt, "created_at must not move")
	assert.Equal(t, later, r.UpdatedAt)
}

func TestRecipe_CategoryName(t *testing.T) {
	assert.Equal(t, "", Recipe{}.CategoryName())
	assert.Equal(t, "Dessert", Recipe{Category: &Category{ID: 1, Name: "Dessert"}}.CategoryName())
}
