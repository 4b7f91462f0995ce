// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/recipecatalog/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/recipecatalog/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
	"github.com/ericfisherdev/recipecatalog/internal/domain/port/driven"
)

// Page markers set on <body data-page="...">.
const (
	pageMain         = "main"
	pageRecipeDetail = "recipe-detail"
	pageNotFound     = "not-found"
	pageError        = "error"
)

// CatalogReader is the read side of the catalog the pages need.
// *application.CatalogService satisfies it.
type CatalogReader interface {
	ListFeatured(ctx context.Context) ([]model.Recipe, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetRecipe(ctx context.Context, id int64) (*model.Recipe, error)
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	catalog CatalogReader
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(catalog CatalogReader, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Main renders the front page: recipes that passed the listing delay and the
// category sidebar.
func (h *Handler) Main(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.catalog.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("failed to list featured recipes", "error", err)
		h.renderError(w, r)
		return
	}

	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		h.renderError(w, r)
		return
	}

	page := toMainPageViewModel(recipes, categories)
	h.render(w, r, http.StatusOK, "Latest recipes", pageMain, pages.Main(page))
}

// RecipeDetail renders a single recipe. Unknown or malformed ids render the
// not-found page with status 404.
func (h *Handler) RecipeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	recipe, err := h.catalog.GetRecipe(r.Context(), id)
	if errors.Is(err, driven.ErrRecipeNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to get recipe", "recipe_id", id, "error", err)
		h.renderError(w, r)
		return
	}

	detail := toRecipeDetailViewModel(*recipe)
	h.render(w, r, http.StatusOK, recipe.Title, pageRecipeDetail, pages.RecipeDetail(detail))
}

// NotFound renders the HTML not-found page with status 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	component := pages.NotFound("We could not find the page you were looking for.")
	h.render(w, r, http.StatusNotFound, "Not found", pageNotFound, component)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request) {
	component := pages.ServerError()
	h.render(w, r, http.StatusInternalServerError, "Something went wrong", pageError, component)
}

// render buffers the full page so a template failure can still produce a
// clean 500 instead of a half-written 200.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title, page string, content templ.Component) {
	var buf bytes.Buffer
	layout := templates.Layout(title, page, content)

	if err := layout.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
