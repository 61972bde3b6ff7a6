package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pageza/fridge-finder/internal/types"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	headerColor = color.New(color.FgYellow, color.Bold)
)

// Candidates writes a numbered list of candidate recipes
func Candidates(w io.Writer, recipes []types.CandidateRecipe) {
	for i, recipe := range recipes {
		fmt.Fprintln(w)
		titleColor.Fprintf(w, "%d. %s\n", i+1, recipe.Title)

		if len(recipe.UsedIngredients) > 0 {
			fmt.Fprintln(w, "   Using your ingredients:", recipe.UsedNames())
		}
		if len(recipe.MissedIngredients) > 0 {
			fmt.Fprintln(w, "   You'll also need:", recipe.MissedNames())
		}

		fmt.Fprintf(w, "   Uses %d of your ingredients\n", recipe.UsedIngredientCount)
		fmt.Fprintf(w, "   Missing %d ingredients\n", recipe.MissedIngredientCount)
	}
}

// Detail writes the timing, servings and instructions of a recipe
func Detail(w io.Writer, detail *types.RecipeDetail) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "=== %s ===\n", detail.Title)
	fmt.Fprintf(w, "Ready in: %d minutes\n", detail.ReadyInMinutes)
	fmt.Fprintf(w, "Servings: %d\n", detail.Servings)

	fmt.Fprintln(w, "\nInstructions:")
	switch detail.InstructionMode() {
	case types.ModeSteps:
		for _, step := range detail.Steps() {
			fmt.Fprintf(w, "\n%d. %s\n", step.Number, step.Step)
		}
	case types.ModeText:
		fmt.Fprintln(w, PlainInstructions(detail.Instructions))
	case types.ModeSource:
		fmt.Fprintf(w, "Full recipe available at: %s\n", detail.SourceURL)
	default:
		fmt.Fprintln(w, "No instructions available for this recipe.")
	}
}
