package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// Writer and reader connections share the same in-memory database via cache=shared.
// A unique name derived from t.Name() ensures isolation between parallel tests.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewMemoryDB(context.Background(), t.Name())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if _, err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// seedCategory inserts a category and fails the test on error.
func seedCategory(t *testing.T, db *DB, name string) model.Category {
	t.Helper()

	c, err := NewCategoryRepo(db).Create(context.Background(), model.Category{Name: name})
	require.NoError(t, err)

	return c
}

func makeRecipe(title string, categoryID int64, createdAt time.Time) model.Recipe {
	return model.Recipe{
		Title:        title,
		Description:  "Description of " + title,
		Instructions: "1. Preheat the oven...",
		Ingredients:  "Flour, sugar, cocoa powder...",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		CategoryID:   categoryID,
	}
}
