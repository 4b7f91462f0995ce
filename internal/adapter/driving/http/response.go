package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeResponse is the JSON representation of a recipe.
type RecipeResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Ingredients  string           `json:"ingredients"`
	Category     CategoryResponse `json:"category"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// CreateCategoryRequest is the body of POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// RecipeRequest is the body of POST /api/v1/recipes and PUT /api/v1/recipes/{id}.
// CategoryID 0 selects the default category. CreatedAt is optional RFC3339 and
// only honored on create.
type RecipeRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Ingredients  string `json:"ingredients"`
	CategoryID   int64  `json:"category_id"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func toRecipeResponse(r model.Recipe) RecipeResponse {
	category := CategoryResponse{ID: r.CategoryID}
	if r.Category != nil {
		category = toCategoryResponse(*r.Category)
	}

	return RecipeResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Instructions: r.Instructions,
		Ingredients:  r.Ingredients,
		Category:     category,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
