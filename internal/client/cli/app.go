package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ssolovjova/recipebox/internal/client/api"
	"github.com/ssolovjova/recipebox/internal/client/config"
	"github.com/ssolovjova/recipebox/internal/client/draft"
	"github.com/ssolovjova/recipebox/internal/client/models"
	"github.com/ssolovjova/recipebox/internal/client/recipes"
	"github.com/ssolovjova/recipebox/internal/client/session"
	"github.com/ssolovjova/recipebox/internal/client/store"
	"github.com/ssolovjova/recipebox/internal/filex"
	"github.com/ssolovjova/recipebox/internal/logging"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// sessionManager is the slice of session.Manager the shell needs; tests
// provide a lightweight stub.
type sessionManager interface {
	Initialize(ctx context.Context) session.State
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context)
	User() *models.User
	IsAuthenticated() bool
}

// App wires the client components together and drives the interactive loop.
type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	session sessionManager
	recipes recipes.Repository
	form    *draft.Form
	creds   *store.Store
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// NewApp builds the application shell: credential store, HTTP client,
// session manager, recipe repository, and the draft form.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}
	creds, err := store.Open(ctx, filepath.Join(dir, "credentials.db"))
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	client := api.NewHTTPClient(cfg.BackendURL)

	return &App{
		config:  cfg,
		log:     log,
		client:  client,
		session: session.NewManager(client, creds, log),
		recipes: recipes.NewService(client),
		form:    draft.NewForm(log),
		creds:   creds,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run probes the backend, resolves the session, and enters the REPL. It
// returns when the user exits or the context is canceled.
func (a *App) Run(ctx context.Context) error {
	defer a.creds.Close()

	if err := a.client.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "API disconnected. The app may not function correctly.")
		a.log.Warn(ctx, "backend connection failed", "error", err)
	} else {
		a.setMode(ModeOnline)
		fmt.Fprintln(a.out, "API connected.")
	}

	if a.session.Initialize(ctx) == session.StateAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Name)
	}

	go a.startHealthWatcher(ctx, a.config.HealthCheckInterval)

	fmt.Fprintln(a.out, "Recipebox CLI (type 'help' for commands)")
	fmt.Fprintf(a.out, "Admin console: %s\n", a.config.AdminURL())

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name + " "
	}
	if m := a.getMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// startHealthWatcher periodically probes the backend and flips the
// online/offline indicator shown in the prompt.
func (a *App) startHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Admin prints the admin console link derived from the backend base URL.
func (a *App) Admin(ctx context.Context) error {
	fmt.Fprintf(a.out, "Admin console: %s\n", a.config.AdminURL())
	return nil
}
