// Package session owns the client's current-user identity and the
// authentication lifecycle: an app load starts unresolved, the startup probe
// settles it into authenticated or anonymous, and login/signup/logout move
// between the two thereafter.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/models"
	"github.com/ssolovjova/recipebox/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	StateUnresolved    State = "unresolved"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Manager holds the resolved session and performs auth transitions against
// the remote service. It is used from a single interactive loop.
type Manager struct {
	client api.Client
	creds  TokenStore
	log    logging.Logger

	state State
	user  *models.User
}

// now is a test seam for the token expiry check.
var now = time.Now

func NewManager(client api.Client, creds TokenStore, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		creds:  creds,
		log:    log,
		state:  StateUnresolved,
	}
}

func (m *Manager) State() State { return m.state }

// User returns the authenticated user, or nil when the session is anonymous
// or still unresolved.
func (m *Manager) User() *models.User { return m.user }

func (m *Manager) IsAuthenticated() bool { return m.state == StateAuthenticated }

// Initialize attempts to resume an existing session from the cached token.
// It never fails: any problem along the way (no cached token, expired token,
// unreachable server, rejected probe) resolves the session to anonymous.
func (m *Manager) Initialize(ctx context.Context) State {
	token, err := m.creds.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "reading cached token failed", "error", err)
		return m.resolveAnonymous(ctx, false)
	}
	if token == "" {
		return m.resolveAnonymous(ctx, false)
	}
	if tokenExpired(token) {
		m.log.Info(ctx, "cached session token expired")
		return m.resolveAnonymous(ctx, true)
	}

	m.client.SetToken(token)
	user, err := m.client.Me(ctx)
	if err != nil {
		m.log.Info(ctx, "no active session found", "error", err)
		m.client.SetToken("")
		// A rejected token is dead weight; a transport failure may be
		// transient, so the token stays cached for the next run.
		return m.resolveAnonymous(ctx, errors.Is(err, api.ErrUnauthorized))
	}

	m.state = StateAuthenticated
	m.user = user
	return m.state
}

func (m *Manager) resolveAnonymous(ctx context.Context, clearToken bool) State {
	if clearToken {
		if err := m.creds.ClearToken(ctx); err != nil {
			m.log.Warn(ctx, "clearing cached token failed", "error", err)
		}
	}
	m.state = StateAnonymous
	m.user = nil
	return m.state
}

// tokenExpired peeks at the token's exp claim without verifying the
// signature; verification is the server's job. Tokens that cannot be parsed
// are left to the remote probe to judge.
func tokenExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now())
}

// Login authenticates with the remote service. On success the session
// becomes authenticated and the token is cached; on failure the session
// stays anonymous and the error is returned for display.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	token, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	m.client.SetToken(token)
	user, err := m.client.Me(ctx)
	if err != nil {
		m.client.SetToken("")
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	if err := m.creds.SaveToken(ctx, token); err != nil {
		// The session is live either way; only resumption on the next run
		// is affected.
		m.log.Warn(ctx, "caching token failed", "error", err)
	}

	m.state = StateAuthenticated
	m.user = user
	return user, nil
}

// Signup creates the user record and then logs in with the same credentials
// as one logical operation. A login failure after a successful create is
// surfaced as the signup failure; the created user is not rolled back.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := m.client.Signup(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return m.Login(ctx, email, password)
}

// Logout invalidates the remote session and clears local state. The session
// always resolves to anonymous, even when the remote call fails.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed", "error", err)
	}
	if err := m.creds.ClearToken(ctx); err != nil {
		m.log.Warn(ctx, "clearing cached token failed", "error", err)
	}
	m.client.SetToken("")
	m.state = StateAnonymous
	m.user = nil
}
