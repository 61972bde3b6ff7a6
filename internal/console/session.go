// Package console runs one interactive recipe lookup over a line based terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/pageza/fridge-finder/internal/render"
	"github.com/pageza/fridge-finder/internal/service"
	"github.com/pageza/fridge-finder/internal/types"
)

var (
	bannerColor  = color.New(color.FgGreen, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// maxLineSize caps a single line of input
const maxLineSize = 1 << 20

// Session drives a single search → select → details cycle
type Session struct {
	recipes service.IRecipeService
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

// NewSession creates a console session reading from in and writing to out.
// API failures are also logged to the standard logger.
func NewSession(recipes service.IRecipeService, in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Session{
		recipes: recipes,
		in:      scanner,
		out:     out,
		logger:  log.Default(),
	}
}

// Run performs one cycle. Lookup failures and bad selections are reported to
// the user and end the cycle without an error; only failing to read input does.
func (s *Session) Run(ctx context.Context) error {
	bannerColor.Fprintln(s.out, "🍳 Welcome to Fridge Recipe Finder! 🍳")
	fmt.Fprintln(s.out, "\nWhat ingredients do you have? (separate with commas)")
	fmt.Fprintln(s.out, "Example: chicken, rice, onion")

	line, err := s.prompt()
	if err != nil {
		return s.inputFailed(err)
	}

	ingredients := types.ParseIngredients(line)
	results, err := s.recipes.SearchRecipes(ctx, ingredients)
	if err != nil {
		s.reportError(err)
	}
	if len(results) == 0 {
		warnColor.Fprintln(s.out, "\nNo recipes found with those ingredients. Try different combinations!")
		return nil
	}

	successColor.Fprintln(s.out, "\nFound recipes that match your ingredients!")
	fmt.Fprintf(s.out, "\nHere are the top %d recipes (sorted by best ingredient match):\n", len(results))
	render.Candidates(s.out, results)

	fmt.Fprintf(s.out, "\nEnter the number of the recipe you'd like to see instructions for (1-%d):\n", len(results))
	line, err = s.prompt()
	if err != nil {
		return s.inputFailed(err)
	}

	recipe, ok := s.selectRecipe(line, results)
	if !ok {
		return nil
	}

	detail, err := s.recipes.GetRecipeDetails(ctx, recipe.ID)
	if err != nil {
		s.reportError(err)
		return nil
	}

	render.Detail(s.out, detail)
	return nil
}

// prompt reads one line; EOF yields an empty line
func (s *Session) prompt() (string, error) {
	fmt.Fprint(s.out, "> ")
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", nil
}

// selectRecipe maps a 1-based choice onto the candidate list
func (s *Session) selectRecipe(line string, results []types.CandidateRecipe) (types.CandidateRecipe, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		errorColor.Fprintln(s.out, "Please enter a valid number!")
		return types.CandidateRecipe{}, false
	}
	if choice < 1 || choice > len(results) {
		errorColor.Fprintln(s.out, "Invalid recipe number!")
		return types.CandidateRecipe{}, false
	}
	return results[choice-1], true
}

// inputFailed ends the cycle with a notice for an over-long line
func (s *Session) inputFailed(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		errorColor.Fprintln(s.out, "\nInput is too long!")
		return nil
	}
	return err
}

func (s *Session) reportError(err error) {
	if errors.Is(err, service.ErrNoIngredients) {
		errorColor.Fprintln(s.out, "Please enter at least one ingredient!")
		return
	}
	s.logger.Printf("Error accessing recipe API: %v", err)
	errorColor.Fprintf(s.out, "Error accessing recipe API: %v\n", err)
}
