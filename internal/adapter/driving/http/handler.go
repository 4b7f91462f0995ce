package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ericfisherdev/recipecatalog/internal/application"
	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
	"github.com/ericfisherdev/recipecatalog/internal/domain/port/driven"
)

// maxRequestBody caps JSON request bodies.
const maxRequestBody = 1 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the JSON management API.
type Handler struct {
	catalog *application.CatalogService
	pinger  Pinger
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. pinger may be
// nil, in which case the health endpoint always reports ok.
func NewHandler(catalog *application.CatalogService, pinger Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		pinger:  pinger,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers all /api/v1 routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)

	mux.HandleFunc("GET /api/v1/categories", h.ListCategories)
	mux.HandleFunc("POST /api/v1/categories", h.CreateCategory)
	mux.HandleFunc("GET /api/v1/categories/{id}", h.GetCategory)
	mux.HandleFunc("DELETE /api/v1/categories/{id}", h.DeleteCategory)

	mux.HandleFunc("GET /api/v1/recipes", h.ListRecipes)
	mux.HandleFunc("POST /api/v1/recipes", h.CreateRecipe)
	mux.HandleFunc("GET /api/v1/recipes/{id}", h.GetRecipe)
	mux.HandleFunc("PUT /api/v1/recipes/{id}", h.UpdateRecipe)
	mux.HandleFunc("DELETE /api/v1/recipes/{id}", h.DeleteRecipe)
}

// Health reports service liveness and database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListCategories returns all categories ordered by name.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toCategoryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateCategory creates a category from a JSON body.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.writeCatalogError(w, err, "failed to create category")
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// GetCategory returns a single category.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		h.writeCatalogError(w, err, "failed to get category", "category_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory removes a category and all of its recipes.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		h.writeCatalogError(w, err, "failed to delete category", "category_id", id)
		return
	}

	h.logger.Info("category deleted", "category_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ListRecipes returns recipes newest first. Optional query parameters:
// category (id) and limit (positive integer).
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	var filter driven.RecipeFilter

	if v := r.URL.Query().Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		filter.CategoryID = id
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	recipes, err := h.catalog.ListRecipes(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		resp = append(resp, toRecipeResponse(recipe))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateRecipe creates a recipe from a JSON body.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if !h.decode(w, r, &req) {
		return
	}

	in, err := toRecipeInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid created_at: expected RFC3339 timestamp")
		return
	}

	recipe, err := h.catalog.CreateRecipe(r.Context(), in)
	if err != nil {
		h.writeCatalogError(w, err, "failed to create recipe")
		return
	}

	h.logger.Info("recipe created", "recipe_id", recipe.ID, "category_id", recipe.CategoryID)
	writeJSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

// GetRecipe returns a single recipe with its category.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	recipe, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		h.writeCatalogError(w, err, "failed to get recipe", "recipe_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(*recipe))
}

// UpdateRecipe replaces the editable fields of a recipe.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RecipeRequest
	if !h.decode(w, r, &req) {
		return
	}

	in, err := toRecipeInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid created_at: expected RFC3339 timestamp")
		return
	}

	recipe, err := h.catalog.UpdateRecipe(r.Context(), id, in)
	if err != nil {
		h.writeCatalogError(w, err, "failed to update recipe", "recipe_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(recipe))
}

// DeleteRecipe removes a single recipe.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteRecipe(r.Context(), id); err != nil {
		h.writeCatalogError(w, err, "failed to delete recipe", "recipe_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON body into v, writing a 400 and returning false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeCatalogError maps catalog errors onto status codes. Unclassified errors
// are logged with msg and the extra key/value pairs and reported as 500.
func (h *Handler) writeCatalogError(w http.ResponseWriter, err error, msg string, args ...any) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, driven.ErrCategoryReference):
		writeError(w, http.StatusBadRequest, driven.ErrCategoryReference.Error())
	case errors.Is(err, driven.ErrRecipeNotFound):
		writeError(w, http.StatusNotFound, driven.ErrRecipeNotFound.Error())
	case errors.Is(err, driven.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, driven.ErrCategoryNotFound.Error())
	default:
		h.logger.Error(msg, append(args, "error", err)...)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path value, writing a 400 and returning false when it
// is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toRecipeInput(req RecipeRequest) (application.RecipeInput, error) {
	in := application.RecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Ingredients:  req.Ingredients,
		CategoryID:   req.CategoryID,
	}

	if req.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			return application.RecipeInput{}, err
		}
		in.CreatedAt = t
	}

	return in, nil
}
