// Package api contains the transport layer of the recipebox client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) to talk to
//     the recipe service: auth (Login/Signup/Me/Logout), recipe CRUD
//     (ListRecipes/CreateRecipe/DeleteRecipe), and a liveness probe.
//  2. A concrete HTTP implementation (see HTTPClient) bound to the backend
//     base URL, which attaches the bearer token to authenticated calls and
//     maps response status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnauthorized, ErrPermissionDenied, ErrValidation,
// ErrNotFound, ErrUnavailable.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api

import (
	"context"
	"io"

	"github.com/ssolovjova/recipebox/internal/client/models"
)

// ListQuery narrows and shapes a recipe listing.
type ListQuery struct {
	// Status filters by visibility status; empty means no status filter.
	Status models.Status
	// NewestFirst orders by creation time, most recent first.
	NewestFirst bool
	// IncludeAuthor asks the service to embed each recipe's author.
	IncludeAuthor bool
}

// PhotoUpload is a photo file attached to a create request. Data is streamed
// into the request body as binary alongside the structured fields.
type PhotoUpload struct {
	Name string
	Data io.Reader
}

// Client is the transport-agnostic API contract of the recipe service.
type Client interface {
	// Health probes service reachability.
	Health(ctx context.Context) error

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Signup creates a new user record. It does not authenticate.
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	// Me resolves the user owning the current session token.
	Me(ctx context.Context) (*models.User, error)
	// Logout invalidates the current session token on the server.
	Logout(ctx context.Context) error

	// ListRecipes returns recipes matching the query, possibly empty.
	ListRecipes(ctx context.Context, q ListQuery) ([]models.Recipe, error)
	// CreateRecipe persists a draft; photo may be nil. The returned recipe
	// carries the server-assigned id, timestamps, and photo variants.
	CreateRecipe(ctx context.Context, draft models.DraftRecipe, photo *PhotoUpload) (*models.Recipe, error)
	// DeleteRecipe removes a recipe; ownership is enforced server-side.
	DeleteRecipe(ctx context.Context, id string) error

	// SetToken installs the session token attached to authenticated calls.
	// An empty token clears it.
	SetToken(token string)
	// Token returns the currently installed session token.
	Token() string
}
