package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/draft"
	"github.com/ssolovjova/recipebox/internal/client/models"
)

// New walks the draft-recipe form interactively and submits it. The form
// lives on the App: after a failed submit the entered values are kept, so
// running `new` again offers them as defaults for correction. A successful
// submit resets the form and reloads the list.
func (a *App) New(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	if err := a.fillDraft(ctx); err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, "Submit recipe?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		discard, err := GetConfirm(a.reader, "Discard draft?", a.out)
		if err != nil {
			return err
		}
		if discard {
			a.form.Reset()
			fmt.Fprintln(a.out, "Draft discarded.")
		} else {
			fmt.Fprintln(a.out, "Draft kept. Run 'new' again to continue editing.")
		}
		return nil
	}

	// Let an in-flight photo read settle before the draft is submitted.
	a.form.Wait()

	created, err := a.form.Submit(ctx, a.recipes)
	if err != nil {
		a.log.Warn(ctx, "create failed", "error", err)
		if errors.Is(err, api.ErrValidation) {
			fmt.Fprintln(a.out, "Failed to create recipe. Please check the fields and try again.")
		} else {
			fmt.Fprintln(a.out, "Failed to create recipe. Please try again.")
		}
		return err
	}

	fmt.Fprintf(a.out, "Recipe %q created.\n", created.Title)
	return a.List(ctx)
}

// fillDraft prompts for every draft field, feeding each answer through the
// form controller so numeric and choice validation happens in one place.
func (a *App) fillDraft(ctx context.Context) error {
	d := a.form.Draft()

	if err := a.promptField(draft.FieldTitle, "Title", d.Title); err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Description (instructions):", a.out)
	if err != nil {
		return err
	}
	if description != "" {
		_ = a.form.SetField(draft.FieldDescription, description)
	}

	ingredients, err := GetMultiline(a.reader, "Ingredients:", a.out)
	if err != nil {
		return err
	}
	if ingredients != "" {
		_ = a.form.SetField(draft.FieldIngredients, ingredients)
	}

	// Photo selection starts a background read; the remaining prompts are
	// not blocked by it.
	photo, err := GetTextDefault(a.reader, "Photo path (empty for none, '-' to clear)", d.PhotoPath, a.out)
	if err != nil {
		return err
	}
	switch photo {
	case d.PhotoPath:
	case "-":
		a.form.SelectPhoto(ctx, "")
	default:
		a.form.SelectPhoto(ctx, photo)
	}

	if err := a.promptField(draft.FieldPrepTime, "Prep time (min)", strconv.Itoa(d.PrepTime)); err != nil {
		return err
	}
	if err := a.promptField(draft.FieldCookTime, "Cook time (min)", strconv.Itoa(d.CookTime)); err != nil {
		return err
	}
	if err := a.promptField(draft.FieldServings, "Servings", strconv.Itoa(d.Servings)); err != nil {
		return err
	}

	difficulty, err := GetChoice(a.reader, "Difficulty", choiceStrings(models.Difficulties), string(d.Difficulty), a.out)
	if err != nil {
		return err
	}
	_ = a.form.SetField(draft.FieldDifficulty, difficulty)

	cuisine, err := GetChoice(a.reader, "Cuisine", choiceStrings(models.Cuisines), string(d.Cuisine), a.out)
	if err != nil {
		return err
	}
	_ = a.form.SetField(draft.FieldCuisine, cuisine)

	status, err := GetChoice(a.reader, "Status (drafts are only visible to you)", choiceStrings(models.Statuses), string(d.Status), a.out)
	if err != nil {
		return err
	}
	_ = a.form.SetField(draft.FieldStatus, status)

	if preview := a.waitForPreview(); preview != "" {
		fmt.Fprintf(a.out, "Photo attached (%d byte preview).\n", len(preview))
	}
	return nil
}

// promptField keeps asking until the form accepts the value. Empty input
// keeps the current value.
func (a *App) promptField(field, label, current string) error {
	for {
		value, err := GetTextDefault(a.reader, label, current, a.out)
		if err != nil {
			return err
		}
		if value == current {
			return nil
		}
		if err := a.form.SetField(field, value); err != nil {
			fmt.Fprintln(a.out, err.Error())
			continue
		}
		return nil
	}
}

func (a *App) waitForPreview() string {
	a.form.Wait()
	return a.form.Preview()
}

func choiceStrings[T ~string](options []T) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = string(o)
	}
	return out
}
