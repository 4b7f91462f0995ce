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
var _ driven.CategoryStore = (*CategoryRepo)(nil)

// CategoryRepo is the SQLite implementation of the CategoryStore port interface.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo creates a new CategoryRepo backed by the given DB.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserts a new category and returns it with its assigned ID.
func (r *CategoryRepo) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query, args, err := sq.Insert("categories").
		Columns("name").
		Values(category.Name).
		ToSql()
	if err != nil {
		return model.Category{}, fmt.Errorf("build category insert: %w", err)
	}

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err) {
			return model.Category{}, fmt.Errorf("create category %q: %w", category.Name, model.ErrValidation)
		}
		return model.Category{}, fmt.Errorf("create category %q: %w", category.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Category{}, fmt.Errorf("read category id: %w", err)
	}

	category.ID = id
	return category, nil
}

// GetByID retrieves a category by ID. Returns ErrCategoryNotFound if it does
// not exist.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT id, name FROM categories WHERE id = ?`

	var c model.Category
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category %d: %w", id, driven.ErrCategoryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return &c, nil
}

// ListAll returns all categories ordered by name.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY name, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// Delete removes a category by ID. Due to foreign key cascade, all recipes
// owned by the category are also deleted.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete category %d: %w", id, driven.ErrCategoryNotFound)
	}

	return nil
}
