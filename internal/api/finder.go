package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fridge-finder/internal/render"
	"github.com/pageza/fridge-finder/internal/service"
	"github.com/pageza/fridge-finder/internal/types"
)

// Notice is a one line message shown above the page content
type Notice struct {
	Level   string
	Message string
}

func successNotice(msg string) *Notice { return &Notice{Level: "success", Message: msg} }
func warningNotice(msg string) *Notice { return &Notice{Level: "warning", Message: msg} }
func errorNotice(msg string) *Notice   { return &Notice{Level: "error", Message: msg} }

const (
	msgFound      = "Found recipes that match your ingredients!"
	msgNoMatches  = "No recipes found with those ingredients. Try different combinations!"
	msgNoInput    = "Please enter at least one ingredient!"
	msgAPIFailure = "Error accessing recipe API"
)

// FinderHandler serves the ingredient form and its results
type FinderHandler struct {
	recipes service.IRecipeService
}

func NewFinderHandler(recipes service.IRecipeService) *FinderHandler {
	return &FinderHandler{recipes: recipes}
}

// RegisterRoutes mounts the HTML pages on router
func (h *FinderHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Index)
	router.GET("/recipes", h.Search)
	router.GET("/recipes/:id", h.Details)
}

// RegisterAPIRoutes mounts the JSON endpoints on group
func (h *FinderHandler) RegisterAPIRoutes(group *gin.RouterGroup) {
	recipes := group.Group("/recipes")
	{
		recipes.GET("/search", h.SearchJSON)
		recipes.GET("/:id", h.DetailsJSON)
	}
}

func (h *FinderHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Search runs the ingredient query and renders one tab per candidate
func (h *FinderHandler) Search(c *gin.Context) {
	raw := c.Query("ingredients")
	if raw == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), types.ParseIngredients(raw))
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"Ingredients": raw,
			"Notice":      warningNotice(msgNoInput),
		})
		return
	case err != nil:
		_ = c.Error(err)
		c.HTML(http.StatusBadGateway, "results.html", gin.H{
			"Ingredients": raw,
			"Notice":      errorNotice(msgAPIFailure + ": " + err.Error()),
		})
		return
	case len(recipes) == 0:
		c.HTML(http.StatusOK, "results.html", gin.H{
			"Ingredients": raw,
			"Notice":      warningNotice(msgNoMatches),
		})
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"Ingredients": raw,
		"Recipes":     recipes,
		"Notice":      successNotice(msgFound),
	})
}

// Details fetches one recipe and renders its instructions
func (h *FinderHandler) Details(c *gin.Context) {
	raw := c.Query("ingredients")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Notice": errorNotice("Invalid recipe id: " + c.Param("id")),
		})
		return
	}

	detail, err := h.recipes.GetRecipeDetails(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusBadGateway, "detail.html", gin.H{
			"Ingredients": raw,
			"Notice":      errorNotice(msgAPIFailure + ": " + err.Error()),
		})
		return
	}

	page := gin.H{
		"Ingredients": raw,
		"Detail":      detail,
	}
	switch detail.InstructionMode() {
	case types.ModeSteps:
		page["Steps"] = detail.Steps()
	case types.ModeText:
		page["Instructions"] = render.SafeInstructions(detail.Instructions)
	case types.ModeSource:
		if link, ok := webLink(detail.SourceURL); ok {
			page["SourceURL"] = link
		}
	}
	c.HTML(http.StatusOK, "detail.html", page)
}

// SearchJSON is the JSON form of Search
func (h *FinderHandler) SearchJSON(c *gin.Context) {
	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), types.ParseIngredients(c.Query("ingredients")))
	if errors.Is(err, service.ErrNoIngredients) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgAPIFailure})
		return
	}
	if recipes == nil {
		recipes = []types.CandidateRecipe{}
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// DetailsJSON is the JSON form of Details
func (h *FinderHandler) DetailsJSON(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	detail, err := h.recipes.GetRecipeDetails(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgAPIFailure})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// webLink accepts only absolute http and https links from upstream data
func webLink(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}
