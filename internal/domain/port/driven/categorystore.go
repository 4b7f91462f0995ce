package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
)

// ErrCategoryNotFound indicates the requested category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryStore defines the driven port for category persistence.
// GetByID and Delete return ErrCategoryNotFound for unknown ids.
// Delete also removes every recipe owned by the category.
type CategoryStore interface {
	Create(ctx context.Context, category model.Category) (model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	Delete(ctx context.Context, id int64) error
}
