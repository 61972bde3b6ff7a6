package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/pageza/fridge-finder/config"
	"github.com/pageza/fridge-finder/internal/types"
)

const (
	// SearchLimit is the number of candidates requested per search
	SearchLimit = 5
	// rankMaximizeUsed asks the API to rank by used ingredients first
	rankMaximizeUsed = 2

	maxErrorBody = 512
)

type searchParams struct {
	APIKey       string `url:"apiKey"`
	Ingredients  string `url:"ingredients"`
	Number       int    `url:"number"`
	Ranking      int    `url:"ranking"`
	IgnorePantry bool   `url:"ignorePantry"`
}

type detailParams struct {
	APIKey        string `url:"apiKey"`
	StepBreakdown bool   `url:"stepBreakdown"`
}

// RecipeService talks to the Spoonacular recipes API
type RecipeService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRecipeService creates a RecipeService from explicit configuration.
// A nil client gets one honoring cfg.Timeout.
func NewRecipeService(cfg *config.Config, client *http.Client) *RecipeService {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &RecipeService{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}
}

// SearchRecipes finds up to SearchLimit recipes using the given ingredients,
// in the order the API ranks them.
func (s *RecipeService) SearchRecipes(ctx context.Context, ingredients []string) ([]types.CandidateRecipe, error) {
	if !types.HasIngredients(ingredients) {
		return nil, ErrNoIngredients
	}

	params := searchParams{
		APIKey:       s.apiKey,
		Ingredients:  strings.Join(ingredients, ","),
		Number:       SearchLimit,
		Ranking:      rankMaximizeUsed,
		IgnorePantry: true,
	}

	var recipes []types.CandidateRecipe
	if err := s.get(ctx, "search recipes", s.baseURL+"/findByIngredients", params, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeDetails fetches the full recipe, including its step breakdown
func (s *RecipeService) GetRecipeDetails(ctx context.Context, id int) (*types.RecipeDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRecipeID, id)
	}

	params := detailParams{APIKey: s.apiKey, StepBreakdown: true}
	endpoint := s.baseURL + "/" + strconv.Itoa(id) + "/information"

	var detail types.RecipeDetail
	if err := s.get(ctx, "get recipe details", endpoint, params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// get issues a single GET and decodes the JSON body into out
func (s *RecipeService) get(ctx context.Context, op, endpoint string, params any, out any) error {
	values, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RecipeAPIError{
			Kind:       KindHTTPStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %s", http.StatusText(resp.StatusCode), strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RecipeAPIError{Kind: KindParse, Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
