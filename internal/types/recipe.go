package types

import (
	"strings"

	"github.com/samber/lo"
)

// ParseIngredients splits comma separated input and trims every token.
// Empty tokens are kept so the query reflects exactly what was typed.
func ParseIngredients(raw string) []string {
	return lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}

// HasIngredients reports whether at least one token is non-empty
func HasIngredients(ingredients []string) bool {
	return lo.SomeBy(ingredients, func(item string) bool { return item != "" })
}

// Ingredient is a named ingredient inside a candidate recipe
type Ingredient struct {
	ID     int     `json:"id,omitempty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount,omitempty"`
	Unit   string  `json:"unit,omitempty"`
}

// CandidateRecipe represents a recipe summary returned by the ingredient search
type CandidateRecipe struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	Image                 string       `json:"image,omitempty"`
	UsedIngredients       []Ingredient `json:"usedIngredients"`
	MissedIngredients     []Ingredient `json:"missedIngredients"`
	UsedIngredientCount   int          `json:"usedIngredientCount"`
	MissedIngredientCount int          `json:"missedIngredientCount"`
}

// UsedNames returns the names of the ingredients the user already has
func (r CandidateRecipe) UsedNames() string {
	return joinNames(r.UsedIngredients)
}

// MissedNames returns the names of the ingredients the user still needs
func (r CandidateRecipe) MissedNames() string {
	return joinNames(r.MissedIngredients)
}

func joinNames(ingredients []Ingredient) string {
	return strings.Join(lo.Map(ingredients, func(ing Ingredient, _ int) string {
		return ing.Name
	}), ", ")
}

// Step is one numbered instruction
type Step struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// InstructionGroup is one block of analyzed instructions
type InstructionGroup struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// RecipeDetail represents the full record of a single recipe
type RecipeDetail struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	Servings             int                `json:"servings"`
	Instructions         string             `json:"instructions,omitempty"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions,omitempty"`
	SourceURL            string             `json:"sourceUrl,omitempty"`
}

// InstructionMode selects how a recipe's instructions are displayed
type InstructionMode int

const (
	ModeNone InstructionMode = iota
	ModeSteps
	ModeText
	ModeSource
)

// Steps returns the steps of the first instruction group
func (d *RecipeDetail) Steps() []Step {
	if len(d.AnalyzedInstructions) == 0 {
		return nil
	}
	return d.AnalyzedInstructions[0].Steps
}

// InstructionMode picks steps over flat text over the source link. Steps and
// text are only considered when the recipe carries instructions at all.
func (d *RecipeDetail) InstructionMode() InstructionMode {
	switch {
	case strings.TrimSpace(d.Instructions) != "" && len(d.Steps()) > 0:
		return ModeSteps
	case strings.TrimSpace(d.Instructions) != "":
		return ModeText
	case d.SourceURL != "":
		return ModeSource
	default:
		return ModeNone
	}
}
