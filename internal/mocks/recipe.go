package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/fridge-finder/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, ingredients []string) ([]types.CandidateRecipe, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CandidateRecipe), args.Error(1)
}

// GetRecipeDetails mocks the GetRecipeDetails method
func (m *MockRecipeService) GetRecipeDetails(ctx context.Context, id int) (*types.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}
