package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/models"
)

func sampleRecipes() []models.Recipe {
	author := &models.User{ID: "u1", Name: "Ana"}
	return []models.Recipe{
		{
			ID:          "r1",
			Title:       "Pancakes",
			Description: "Fluffy breakfast staple.",
			PrepTime:    10,
			CookTime:    15,
			Servings:    4,
			Difficulty:  models.DifficultyEasy,
			Cuisine:     models.CuisineAmerican,
			Status:      models.StatusPublished,
			AuthorID:    "u1",
			Author:      author,
		},
		{
			ID:         "r2",
			Title:      "Mystery Stew",
			PrepTime:   20,
			CookTime:   60,
			Servings:   6,
			Difficulty: models.DifficultyHard,
			Cuisine:    models.CuisineOther,
			Status:     models.StatusPublished,
			AuthorID:   "u2",
		},
	}
}

func TestList_RequiresLogin(t *testing.T) {
	repo := &fakeRepo{}
	a, out := newTestApp("", &fakeSession{}, repo)

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "Please log in first.")
	assert.Zero(t, repo.lists)
}

func TestList_RendersRecipes(t *testing.T) {
	repo := &fakeRepo{items: sampleRecipes()}
	a, out := newTestApp("", signedIn(), repo)

	require.NoError(t, a.List(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Latest recipes (2):")
	assert.Contains(t, s, "Pancakes [Easy]")
	assert.Contains(t, s, "by Ana · American · prep 10 min · cook 15 min · serves 4")
	assert.Contains(t, s, "Fluffy breakfast staple.")
	assert.Contains(t, s, "Mystery Stew [Hard]")
	assert.Contains(t, s, "by Unknown Author")
}

func TestList_ActionsOnlyForOwnRecipes(t *testing.T) {
	var own, foreign bytes.Buffer
	items := sampleRecipes()
	user := &models.User{ID: "u1", Name: "Ana"}

	renderRecipes(&own, items[:1], user)
	renderRecipes(&foreign, items[1:], user)

	assert.Contains(t, own.String(), "actions: delete · edit (not yet available)")
	assert.NotContains(t, foreign.String(), "actions:")
}

func TestRenderRecipes_Empty(t *testing.T) {
	var out bytes.Buffer
	renderRecipes(&out, nil, nil)

	assert.Contains(t, out.String(), "No recipes found. Create one to get started!")
}

func TestRenderRecipes_PhotoThumbnail(t *testing.T) {
	var out bytes.Buffer
	items := sampleRecipes()
	items[0].Photo = &models.Photo{Full: "/storage/r1.jpg", Thumbnail: "/storage/r1.thumb.jpg"}

	renderRecipes(&out, items[:1], nil)
	assert.Contains(t, out.String(), "photo: /storage/r1.thumb.jpg")
}

func TestList_FetchFailureDegradesToEmpty(t *testing.T) {
	repo := &fakeRepo{listErr: api.ErrUnavailable}
	a, out := newTestApp("", signedIn(), repo)

	require.NoError(t, a.List(context.Background()), "a failed fetch must not kill the shell")
	assert.Contains(t, out.String(), "Could not load recipes. Please try again later.")
	assert.Contains(t, out.String(), "No recipes found.")
}

func TestDelete_RequiresLogin(t *testing.T) {
	a, out := newTestApp("", &fakeSession{}, &fakeRepo{})

	require.NoError(t, a.Delete(context.Background()))
	assert.Contains(t, out.String(), "Please log in first.")
}

func TestDelete_ConfirmedDeleteReloadsList(t *testing.T) {
	stubPrompts(t, []string{"r1"}, "")
	repo := &fakeRepo{}
	a, out := newTestApp("y\n", signedIn(), repo)

	require.NoError(t, a.Delete(context.Background()))

	assert.Equal(t, []string{"r1"}, repo.deleted)
	assert.Contains(t, out.String(), "Recipe deleted.")
	assert.Equal(t, 1, repo.lists, "the listing is re-fetched after a delete")
}

func TestDelete_Canceled(t *testing.T) {
	stubPrompts(t, []string{"r1"}, "")
	repo := &fakeRepo{}
	a, out := newTestApp("n\n", signedIn(), repo)

	require.NoError(t, a.Delete(context.Background()))

	assert.Empty(t, repo.deleted)
	assert.Contains(t, out.String(), "Delete canceled.")
	assert.Zero(t, repo.lists)
}

func TestDelete_EmptyIdAborts(t *testing.T) {
	stubPrompts(t, []string{""}, "")
	repo := &fakeRepo{}
	a, _ := newTestApp("", signedIn(), repo)

	require.NoError(t, a.Delete(context.Background()))
	assert.Empty(t, repo.deleted)
}

func TestDelete_PermissionDenied(t *testing.T) {
	stubPrompts(t, []string{"r2"}, "")
	repo := &fakeRepo{deleteErr: api.ErrPermissionDenied}
	a, out := newTestApp("y\n", signedIn(), repo)

	err := a.Delete(context.Background())

	require.ErrorIs(t, err, api.ErrPermissionDenied)
	assert.Contains(t, out.String(), "You do not have permission to delete this recipe.")
	assert.Zero(t, repo.lists, "no reload after a failed delete")
}

func TestDelete_GenericFailure(t *testing.T) {
	stubPrompts(t, []string{"r2"}, "")
	repo := &fakeRepo{deleteErr: api.ErrUnavailable}
	a, out := newTestApp("y\n", signedIn(), repo)

	err := a.Delete(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Failed to delete recipe.")
}
