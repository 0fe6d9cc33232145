package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssolovjova/recipebox/internal/client/config"
	"github.com/ssolovjova/recipebox/internal/client/draft"
	"github.com/ssolovjova/recipebox/internal/client/models"
	"github.com/ssolovjova/recipebox/internal/client/recipes"
	"github.com/ssolovjova/recipebox/internal/client/session"
	"github.com/ssolovjova/recipebox/internal/logging"
)

// fakeSession is a scriptable sessionManager.
type fakeSession struct {
	user      *models.User
	loginUser *models.User
	loginErr  error

	logins  int
	logouts int
}

func (f *fakeSession) Initialize(ctx context.Context) session.State {
	if f.user != nil {
		return session.StateAuthenticated
	}
	return session.StateAnonymous
}

func (f *fakeSession) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = f.loginUser
	return f.loginUser, nil
}

func (f *fakeSession) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	return f.Login(ctx, email, password)
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logouts++
	f.user = nil
}

func (f *fakeSession) User() *models.User { return f.user }

func (f *fakeSession) IsAuthenticated() bool { return f.user != nil }

// fakeRepo is a scriptable recipes.Repository.
type fakeRepo struct {
	items     []models.Recipe
	listErr   error
	created   *models.Recipe
	createErr error
	deleteErr error

	lists     int
	deleted   []string
	lastDraft models.DraftRecipe
}

func (r *fakeRepo) List(ctx context.Context, opts recipes.ListOptions) ([]models.Recipe, error) {
	r.lists++
	return r.items, r.listErr
}

func (r *fakeRepo) Create(ctx context.Context, d models.DraftRecipe) (*models.Recipe, error) {
	r.lastDraft = d
	return r.created, r.createErr
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

// newTestApp builds an App with scripted input and captured output.
func newTestApp(input string, sess *fakeSession, repo *fakeRepo) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:  cfg,
		log:     log,
		session: sess,
		recipes: repo,
		form:    draft.NewForm(log),
		reader:  newReader(input),
		out:     &out,
	}, &out
}

func signedIn() *fakeSession {
	return &fakeSession{user: &models.User{ID: "u1", Name: "Ana", Email: "ana@x.com"}}
}

func TestStatus(t *testing.T) {
	a, _ := newTestApp("", signedIn(), &fakeRepo{})
	a.setMode(ModeOnline)
	assert.Equal(t, "(Ana online)", a.status())

	a.setMode(ModeOffline)
	assert.Equal(t, "(Ana offline)", a.status())
}

func TestStatus_Anonymous(t *testing.T) {
	a, _ := newTestApp("", &fakeSession{}, &fakeRepo{})
	assert.Equal(t, "", a.status())

	a.setMode(ModeOffline)
	assert.Equal(t, "(offline)", a.status())
}

func TestAdmin_PrintsConsoleLink(t *testing.T) {
	a, out := newTestApp("", &fakeSession{}, &fakeRepo{})

	err := a.Admin(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, out.String(), a.config.AdminURL())
}
