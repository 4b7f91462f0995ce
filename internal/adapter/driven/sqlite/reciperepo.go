package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
	"github.com/ericfisherdev/recipecatalog/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecipeStore = (*RecipeRepo)(nil)

// recipeColumns must stay in sync with scanRecipe.
var recipeColumns = []string{
	"r.id", "r.title", "r.description", "r.instructions", "r.ingredients",
	"r.created_at", "r.updated_at", "r.category_id", "c.name",
}

// RecipeRepo is the SQLite implementation of the RecipeStore port interface.
type RecipeRepo struct {
	db *DB
}

// NewRecipeRepo creates a new RecipeRepo backed by the given DB.
func NewRecipeRepo(db *DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// Create inserts a recipe and returns it with its assigned ID. The caller is
// responsible for stamping timestamps and resolving the category.
func (r *RecipeRepo) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query, args, err := sq.Insert("recipes").
		Columns("title", "description", "instructions", "ingredients", "created_at", "updated_at", "category_id").
		Values(
			recipe.Title, recipe.Description, recipe.Instructions, recipe.Ingredients,
			formatTime(recipe.CreatedAt), formatTime(recipe.UpdatedAt), recipe.CategoryID,
		).
		ToSql()
	if err != nil {
		return model.Recipe{}, fmt.Errorf("build recipe insert: %w", err)
	}

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("create recipe %q: %w", recipe.Title, classifyWriteErr(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Recipe{}, fmt.Errorf("read recipe id: %w", err)
	}

	recipe.ID = id
	return recipe, nil
}

// GetByID retrieves a recipe with its category. Returns ErrRecipeNotFound if
// it does not exist.
func (r *RecipeRepo) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	query, args, err := selectRecipes().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipe select: %w", err)
	}

	recipe, err := scanRecipe(r.db.Reader.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get recipe %d: %w", id, driven.ErrRecipeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}

	return recipe, nil
}

// List returns recipes matching the filter, newest first. Ties on created_at
// are broken by descending ID.
func (r *RecipeRepo) List(ctx context.Context, filter driven.RecipeFilter) ([]model.Recipe, error) {
	q := selectRecipes().OrderBy("r.created_at DESC", "r.id DESC")

	if !filter.CreatedBefore.IsZero() {
		q = q.Where(sq.LtOrEq{"r.created_at": formatTime(filter.CreatedBefore)})
	}
	if filter.CategoryID != 0 {
		q = q.Where(sq.Eq{"r.category_id": filter.CategoryID})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipe list: %w", err)
	}

	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	return recipes, nil
}

// Update overwrites the mutable fields of a recipe. created_at is never
// written here.
func (r *RecipeRepo) Update(ctx context.Context, recipe model.Recipe) error {
	query, args, err := sq.Update("recipes").
		Set("title", recipe.Title).
		Set("description", recipe.Description).
		Set("instructions", recipe.Instructions).
		Set("ingredients", recipe.Ingredients).
		Set("updated_at", formatTime(recipe.UpdatedAt)).
		Set("category_id", recipe.CategoryID).
		Where(sq.Eq{"id": recipe.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build recipe update: %w", err)
	}

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update recipe %d: %w", recipe.ID, classifyWriteErr(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update recipe %d: %w", recipe.ID, driven.ErrRecipeNotFound)
	}

	return nil
}

// Delete removes a recipe by ID.
func (r *RecipeRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM recipes WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete recipe %d: %w", id, driven.ErrRecipeNotFound)
	}

	return nil
}

func selectRecipes() sq.SelectBuilder {
	return sq.Select(recipeColumns...).
		From("recipes r").
		Join("categories c ON c.id = r.category_id")
}

// classifyWriteErr maps SQLite constraint failures onto domain errors.
func classifyWriteErr(err error) error {
	switch {
	case isForeignKeyViolation(err):
		return driven.ErrCategoryReference
	case isCheckViolation(err):
		return model.ErrValidation
	default:
		return err
	}
}

func scanRecipe(s scanner) (*model.Recipe, error) {
	var recipe model.Recipe
	var category model.Category
	var createdAt, updatedAt string

	err := s.Scan(
		&recipe.ID, &recipe.Title, &recipe.Description, &recipe.Instructions, &recipe.Ingredients,
		&createdAt, &updatedAt, &recipe.CategoryID, &category.Name,
	)
	if err != nil {
		return nil, err
	}

	recipe.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	recipe.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	category.ID = recipe.CategoryID
	recipe.Category = &category

	return &recipe, nil
}
