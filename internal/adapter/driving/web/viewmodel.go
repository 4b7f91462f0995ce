package web

import (
	"time"

	vm "github.com/ericfisherdev/recipecatalog/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/recipecatalog/internal/domain/model"
)

const displayDateLayout = "Jan 2, 2006"

// toRecipeCardViewModel converts a domain Recipe to a RecipeCardViewModel.
func toRecipeCardViewModel(r model.Recipe) vm.RecipeCardViewModel {
	return vm.RecipeCardViewModel{
		ID:               r.ID,
		Title:            r.Title,
		CategoryName:     r.CategoryName(),
		DetailPath:       RecipeDetailPath(r.ID),
		CreatedAtISO:     r.CreatedAt.UTC().Format(time.RFC3339),
		CreatedAtDisplay: r.CreatedAt.UTC().Format(displayDateLayout),
	}
}

// toRecipeDetailViewModel converts a domain Recipe into the detail page view
// model, rendering the free-text fields as sanitized Markdown.
func toRecipeDetailViewModel(r model.Recipe) vm.RecipeDetailViewModel {
	return vm.RecipeDetailViewModel{
		RecipeCardViewModel: toRecipeCardViewModel(r),
		DescriptionHTML:     RenderMarkdown(r.Description),
		IngredientsHTML:     RenderMarkdown(r.Ingredients),
		InstructionsHTML:    RenderMarkdown(r.Instructions),
		WasEdited:           r.UpdatedAt.After(r.CreatedAt),
		UpdatedAtISO:        r.UpdatedAt.UTC().Format(time.RFC3339),
		UpdatedAtDisplay:    r.UpdatedAt.UTC().Format(displayDateLayout),
		BackPath:            MainPath(),
	}
}

// toMainPageViewModel converts the listed recipes and all categories into the
// front page view model.
func toMainPageViewModel(recipes []model.Recipe, categories []model.Category) vm.MainPageViewModel {
	counts := make(map[int64]int, len(categories))
	cards := make([]vm.RecipeCardViewModel, 0, len(recipes))
	for _, r := range recipes {
		counts[r.CategoryID]++
		cards = append(cards, toRecipeCardViewModel(r))
	}

	cats := make([]vm.CategoryViewModel, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, vm.CategoryViewModel{
			ID:          c.ID,
			Name:        c.Name,
			RecipeCount: counts[c.ID],
		})
	}

	return vm.MainPageViewModel{
		Recipes:    cards,
		Categories: cats,
	}
}
