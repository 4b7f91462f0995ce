package web

import (
	"io/fs"
	"net/http"
	"strconv"
)

// Route names for the HTML pages.
const (
	RouteMain         = "main"
	RouteRecipeDetail = "recipe_detail"
)

// MainPath returns the URL of the front page.
func MainPath() string {
	return "/"
}

// RecipeDetailPath returns the URL of the detail page for a recipe.
func RecipeDetailPath(id int64) string {
	return "/recipe/" + strconv.FormatInt(id, 10)
}

// RegisterRoutes registers all web GUI routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
// Any other GET path renders the HTML not-found page.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Main)
	mux.HandleFunc("GET /recipe/{id}", h.RecipeDetail)
	mux.HandleFunc("GET /", h.NotFound)
}
