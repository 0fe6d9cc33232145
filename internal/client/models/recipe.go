// Package models defines the client-side view of the recipe service's
// resources: users, recipes, and the transient draft held by the creation
// form. Identifiers are assigned by the service, never by the client.
package models

import "time"

// Difficulty is the recipe difficulty choice field.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the accepted values in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Cuisine is the recipe cuisine choice field.
type Cuisine string

const (
	CuisineItalian  Cuisine = "Italian"
	CuisineMexican  Cuisine = "Mexican"
	CuisineChinese  Cuisine = "Chinese"
	CuisineIndian   Cuisine = "Indian"
	CuisineAmerican Cuisine = "American"
	CuisineOther    Cuisine = "Other"
)

// Cuisines lists the accepted values in display order.
var Cuisines = []Cuisine{
	CuisineItalian, CuisineMexican, CuisineChinese,
	CuisineIndian, CuisineAmerican, CuisineOther,
}

func (c Cuisine) Valid() bool {
	switch c {
	case CuisineItalian, CuisineMexican, CuisineChinese,
		CuisineIndian, CuisineAmerican, CuisineOther:
		return true
	}
	return false
}

// Status controls recipe visibility: drafts are visible only to their author,
// published recipes are visible to everyone.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Statuses lists the accepted values in display order.
var Statuses = []Status{StatusDraft, StatusPublished}

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Photo holds the URLs of the image variants derived by the service.
type Photo struct {
	Full      string `json:"full"`
	Thumbnail string `json:"thumbnail"`
}

// Recipe is a persisted recipe as returned by the service. Author is only
// populated when the caller asked for the author relation to be embedded;
// Photo is nil for recipes without one.
type Recipe struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Ingredients string     `json:"ingredients"`
	PrepTime    int        `json:"prepTime"`
	CookTime    int        `json:"cookTime"`
	Servings    int        `json:"servings"`
	Difficulty  Difficulty `json:"difficulty"`
	Cuisine     Cuisine    `json:"cuisine"`
	Status      Status     `json:"status"`
	AuthorID    string     `json:"authorId"`
	Author      *User      `json:"author,omitempty"`
	Photo       *Photo     `json:"photo,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AuthorName returns the embedded author's name, or a fallback label when the
// author relation is missing.
func (r Recipe) AuthorName() string {
	if r.Author == nil || r.Author.Name == "" {
		return "Unknown Author"
	}
	return r.Author.Name
}

// CanModify reports whether the given session user may modify the recipe.
// It is the single capability predicate used both for gating the rendered
// actions and for the delete flow; the server enforces the same rule
// authoritatively.
func CanModify(user *User, recipe Recipe) bool {
	return user != nil && user.ID != "" && user.ID == recipe.AuthorID
}
