package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/models"
	"github.com/ssolovjova/recipebox/internal/client/recipes"
)

// List fetches and renders the published recipes, newest first, authors
// embedded. A fetch failure degrades to an empty listing with a logged
// error; it never takes the shell down.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	items, err := a.recipes.List(ctx, recipes.PublishedLatest())
	if err != nil {
		a.log.Error(ctx, "failed to load recipes", "error", err)
		fmt.Fprintln(a.out, "Could not load recipes. Please try again later.")
		items = nil
	}

	renderRecipes(a.out, items, a.session.User())
	return nil
}

// renderRecipes prints the recipe collection for the given session user.
// Per-item mutating actions are shown only for recipes the user owns; the
// edit affordance is a visible but permanently disabled placeholder.
func renderRecipes(w io.Writer, items []models.Recipe, user *models.User) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No recipes found. Create one to get started!")
		return
	}

	fmt.Fprintf(w, "Latest recipes (%d):\n", len(items))
	for _, r := range items {
		fmt.Fprintf(w, "\n%s [%s]\n", r.Title, r.Difficulty)
		fmt.Fprintf(w, "  id: %s\n", r.ID)
		fmt.Fprintf(w, "  by %s · %s · prep %d min · cook %d min · serves %d\n",
			r.AuthorName(), r.Cuisine, r.PrepTime, r.CookTime, r.Servings)
		if r.Photo != nil {
			fmt.Fprintf(w, "  photo: %s\n", r.Photo.Thumbnail)
		}
		if r.Description != "" {
			fmt.Fprintf(w, "  %s\n", r.Description)
		}
		if models.CanModify(user, r) {
			fmt.Fprintf(w, "  actions: delete · edit (not yet available)\n")
		}
	}
}

// Delete asks for a recipe id, requires an explicit confirmation, and then
// deletes the recipe. The displayed list only changes through the reload
// that follows a successful delete, never by local patching.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter recipe id to delete", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	ok, err := GetConfirm(a.reader, "Are you sure you want to delete this recipe?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Delete canceled.")
		return nil
	}

	if err := a.recipes.Delete(ctx, id); err != nil {
		a.log.Warn(ctx, "delete failed", "id", id, "error", err)
		if errors.Is(err, api.ErrPermissionDenied) {
			fmt.Fprintln(a.out, "You do not have permission to delete this recipe.")
		} else {
			fmt.Fprintln(a.out, "Failed to delete recipe.")
		}
		return err
	}

	fmt.Fprintln(a.out, "Recipe deleted.")
	return a.List(ctx)
}
