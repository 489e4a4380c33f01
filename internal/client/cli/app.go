package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/config"
	"github.com/ewasteportal/ewastecli/internal/client/credential"
	"github.com/ewasteportal/ewastecli/internal/client/dashboards"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/client/session"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// App owns the wiring of the interactive client: credential database, API
// gateway, session manager, notification channel, and the three dashboards.
type App struct {
	config    *config.Config
	api       api.Client
	session   *session.Manager
	notifier  *notify.Channel
	submitter *dashboards.Submitter
	recycler  *dashboards.Recycler
	admin     *dashboards.Admin

	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
	styles Styles
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(c.LogLevel)

	db, err := credential.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := credential.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, store, c.RequestTimeout, log)
	sess := session.NewManager(store, apiClient, log)
	notifier := notify.New(c.NotificationTTL)

	app := &App{
		config:    c,
		api:       apiClient,
		session:   sess,
		notifier:  notifier,
		submitter: dashboards.NewSubmitter(apiClient, notifier, log),
		recycler:  dashboards.NewRecycler(apiClient, notifier, log),
		admin:     dashboards.NewAdmin(apiClient, notifier, log),
		db:        db,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		styles:    DefaultStyles(),
	}
	notifier.SetSink(app.printNotification)

	return app, nil
}

// Run restores the previous session from the stored credential and starts
// the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "error", err)
	}

	printlnFn(a.styles.Title.Render("E-Waste Portal CLI") + " (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) snapshot() session.Snapshot {
	return a.session.Current()
}

// status renders the prompt decoration: "(email role)" when authenticated,
// empty otherwise.
func (a *App) status() string {
	snap := a.snapshot()
	if snap.State != session.StateAuthenticated || snap.Identity == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", snap.Identity.DisplayName(), snap.Identity.Role)
}

func (a *App) printNotification(n notify.Notification) {
	style := a.styles.severityStyle(n.Severity)
	printlnFn(style.Render(fmt.Sprintf("[%s] %s", n.Severity, n.Message)))
}
