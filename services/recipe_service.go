package services

import (
	"context"
	"sort"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
)

type RecipeService struct {
	recipes repository.RecipeRepository
}

func NewRecipeService(recipes repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// List returns the recipes of category. "all" or empty returns every
// recipe ordered breakfast, lunch, dinner, snack with anything else last.
func (s *RecipeService) List(ctx context.Context, category string) ([]models.Recipe, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "all" {
		category = ""
	}
	if category != "" && !models.IsMealType(category) {
		return nil, ErrInvalidMealType
	}

	out, err := s.recipes.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Recipe{}
	}
	if category == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return models.MealOrder(out[i].Category) < models.MealOrder(out[j].Category)
		})
	}
	return out, nil
}
