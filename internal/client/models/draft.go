package models

import (
	"errors"
	"fmt"
	"strings"
)

// DraftRecipe is an in-progress, unsaved recipe held only in client state.
// It has the same shape as Recipe minus the server-assigned fields, plus a
// reference to a locally selected photo file. PhotoPath is empty when no
// photo is attached.
type DraftRecipe struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Ingredients string     `json:"ingredients"`
	PrepTime    int        `json:"prepTime"`
	CookTime    int        `json:"cookTime"`
	Servings    int        `json:"servings"`
	Difficulty  Difficulty `json:"difficulty"`
	Cuisine     Cuisine    `json:"cuisine"`
	Status      Status     `json:"status"`
	PhotoPath   string     `json:"-"`
}

// DefaultDraft returns the draft the creation form starts from and resets to
// after a successful submit.
func DefaultDraft() DraftRecipe {
	return DraftRecipe{
		PrepTime:   30,
		CookTime:   45,
		Servings:   4,
		Difficulty: DifficultyMedium,
		Cuisine:    CuisineOther,
		Status:     StatusDraft,
	}
}

// Validate checks the draft's required and enumerated fields. It is run
// client-side before any create request is dispatched.
func (d DraftRecipe) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	if !d.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q", d.Difficulty)
	}
	if !d.Cuisine.Valid() {
		return fmt.Errorf("invalid cuisine %q", d.Cuisine)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("invalid status %q", d.Status)
	}
	if d.PrepTime < 0 || d.CookTime < 0 {
		return errors.New("times must not be negative")
	}
	if d.Servings < 1 {
		return errors.New("servings must be at least 1")
	}
	return nil
}
