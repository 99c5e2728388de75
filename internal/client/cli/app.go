package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/johntran041/jobly-client/internal/client/api"
	"github.com/johntran041/jobly-client/internal/client/cart"
	"github.com/johntran041/jobly-client/internal/client/catalog"
	"github.com/johntran041/jobly-client/internal/client/config"
	"github.com/johntran041/jobly-client/internal/client/models"
	"github.com/johntran041/jobly-client/internal/client/session"
	"github.com/johntran041/jobly-client/internal/client/store"
	"github.com/johntran041/jobly-client/internal/common"
	"github.com/johntran041/jobly-client/internal/logging"
)

// App wires the client services together and hosts the command handlers.
// Construct with NewApp, drive with Run, release with Close.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      *api.HTTPClient
	session  *session.Guard
	cart     *cart.Service
	catalog  *catalog.Service
	jobs     api.JobsAPI
	activity *session.Broadcaster

	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewApp builds the service graph: local store, REST client, session guard,
// cart synchronizer and catalog, then restores any persisted session.
// Consumers receive their collaborators explicitly here; nothing is global.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}
	repo := store.NewSQLiteRepository(db)

	apiClient := api.New(cfg.BaseURL, log)
	activity := session.NewBroadcaster()
	guard := session.NewGuard(apiClient, repo, activity, cfg.IdleTimeout, log)
	cartSvc := cart.NewService(apiClient, log)
	catalogSvc := catalog.NewService(apiClient, cfg.ProductCacheTTL, log)

	a := &App{
		config:   cfg,
		log:      log,
		db:       db,
		api:      apiClient,
		session:  guard,
		cart:     cartSvc,
		catalog:  catalogSvc,
		jobs:     apiClient,
		activity: activity,
		in:       os.Stdin,
		out:      os.Stdout,
	}
	a.reader = bufio.NewReader(a.in)

	// The guard owns identity; everything downstream follows it.
	guard.OnChange(func(p *models.Principal) {
		if p != nil {
			apiClient.SetToken(p.Token)
		} else {
			apiClient.ClearToken()
		}
		cartSvc.SetPrincipal(p)
	})
	guard.OnExpire(func() {
		fmt.Fprintf(a.out, "\nYou've been inactive for %s. Logging out for security.\n", cfg.IdleTimeout)
	})
	guard.Restore(ctx)

	return a, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Jobly (type 'help' for commands)")
	if p := a.session.Principal(); p != nil {
		fmt.Fprintf(a.out, "Restored session for %s.\n", p.Username)
	}
	scanner := bufio.NewScanner(a.in)
	runREPL(ctx, a, a.getStatus, a.activity.Notify, scanner)
}

// Close drains in-flight cart requests and releases resources.
func (a *App) Close(ctx context.Context) {
	a.cart.Wait()
	a.session.Close()
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing local store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	p := a.session.Principal()
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", p.Username, p.Role)
}

// banner prints a dismissible-style failure line with the backend's message
// when one exists, a generic fallback otherwise.
func (a *App) banner(err error) {
	fmt.Fprintf(a.out, "! %s\n", failureMessage(err))
}

func failureMessage(err error) string {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, common.ErrUnauthorized):
		return "you are not authorized; please log in again"
	case errors.Is(err, common.ErrNotFound):
		return "not found"
	case errors.Is(err, common.ErrUnavailable):
		return "the server is unavailable; please try again"
	}
	return "something went wrong; please try again"
}

// printFieldErrors surfaces validation problems inline, one per field.
func (a *App) printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Fprintf(a.out, "  - %s %s\n", field, msg)
	}
}

func (a *App) requireRole(role models.Role) bool {
	p := a.session.Principal()
	if p == nil || p.Role != role {
		fmt.Fprintf(a.out, "! this command requires the %s role\n", role)
		return false
	}
	return true
}
