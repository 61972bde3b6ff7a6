package service

import (
	"context"

	"github.com/pageza/fridge-finder/internal/types"
)

// IRecipeService defines the interface for recipe lookups against the upstream API
type IRecipeService interface {
	SearchRecipes(ctx context.Context, ingredients []string) ([]types.CandidateRecipe, error)
	GetRecipeDetails(ctx context.Context, id int) (*types.RecipeDetail, error)
}
