// Package recipes provides typed CRUD access to the Recipe resource. The
// client keeps no cache beyond the last fetched list: every mutation is
// followed by a full re-fetch, so displayed state always comes from the
// server rather than from local patching.
package recipes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/models"
)

// ListOptions shapes a listing request.
type ListOptions struct {
	Status        models.Status
	NewestFirst   bool
	IncludeAuthor bool
}

// PublishedLatest is the default policy of the list screen: published
// recipes, newest first, authors embedded.
func PublishedLatest() ListOptions {
	return ListOptions{
		Status:        models.StatusPublished,
		NewestFirst:   true,
		IncludeAuthor: true,
	}
}

// Repository is the recipe CRUD surface used by the UI layer.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Recipe, error)
	Create(ctx context.Context, draft models.DraftRecipe) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	client api.Client
}

// NewService constructs a Repository bound to the given API client.
func NewService(client api.Client) Repository {
	return &service{client: client}
}

// openPhoto is a test seam for attaching draft photos.
var openPhoto = os.Open

// List fetches recipes matching opts. A successful call with no matches
// returns an empty slice, not an error.
func (s *service) List(ctx context.Context, opts ListOptions) ([]models.Recipe, error) {
	items, err := s.client.ListRecipes(ctx, api.ListQuery{
		Status:        opts.Status,
		NewestFirst:   opts.NewestFirst,
		IncludeAuthor: opts.IncludeAuthor,
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return items, nil
}

// Create validates the draft locally and dispatches it, streaming the
// attached photo file as part of the same request when one is selected.
// Invalid drafts are rejected before any network call.
func (s *service) Create(ctx context.Context, draft models.DraftRecipe) (*models.Recipe, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrValidation, err)
	}

	var photo *api.PhotoUpload
	if draft.PhotoPath != "" {
		f, err := openPhoto(draft.PhotoPath)
		if err != nil {
			return nil, fmt.Errorf("%w: photo: %v", api.ErrValidation, err)
		}
		defer f.Close()
		photo = &api.PhotoUpload{Name: filepath.Base(draft.PhotoPath), Data: f}
	}

	created, err := s.client.CreateRecipe(ctx, draft, photo)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return created, nil
}

// Delete removes a recipe by id. Ownership is enforced by the server; a
// rejection surfaces as api.ErrPermissionDenied. The caller is responsible
// for re-fetching any displayed list.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
