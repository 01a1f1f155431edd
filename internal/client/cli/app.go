package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/dvalero/finwallet/internal/client/api"
	"github.com/dvalero/finwallet/internal/client/config"
	"github.com/dvalero/finwallet/internal/client/credentials"
	"github.com/dvalero/finwallet/internal/client/models"
	"github.com/dvalero/finwallet/internal/client/repositories/keyvalue"
	"github.com/dvalero/finwallet/internal/client/services"
	"github.com/dvalero/finwallet/internal/client/session"
	"github.com/dvalero/finwallet/internal/filex"
	"github.com/dvalero/finwallet/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionManager is the slice of session.Manager the CLI commands use.
// Tests substitute a stub.
type sessionManager interface {
	Start(ctx context.Context)
	Close()
	State() session.State
	Subscribe(fn func(session.State)) (cancel func())
	Login(ctx context.Context, req models.LoginRequest) error
	Register(ctx context.Context, req models.RegisterRequest) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error
	Logout(ctx context.Context)
}

type App struct {
	config       *config.Config
	log          logging.Logger
	session      sessionManager
	accounts     services.AccountService
	budgets      services.BudgetService
	categories   services.CategoryService
	transactions services.TransactionService
	dashboard    services.DashboardService
	db           *sql.DB
	reader       *bufio.Reader
	loggingOut   atomic.Bool
}

// NewApp wires the full client stack: local credential storage, the API
// client, resource services, and the session manager.
//
// If the SQLite credential database cannot be opened, the app falls back to
// an in-memory store so the CLI stays usable; the session then simply does
// not survive a restart.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	var repo keyvalue.Repository
	db, err := openDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Warn(ctx, "credential database unavailable, session will not persist", "error", err)
		repo = keyvalue.NewMemoryRepository()
	} else {
		repo = keyvalue.NewSQLiteRepository(db)
	}

	store := credentials.NewStore(repo)
	apiClient := api.New(c.ServerURL, store, &http.Client{Timeout: c.HTTPTimeout}, log)

	return &App{
		config:       c,
		log:          log,
		session:      session.NewManager(services.NewAuthAPI(apiClient), store, apiClient, log),
		accounts:     services.NewAccountService(apiClient),
		budgets:      services.NewBudgetService(apiClient),
		categories:   services.NewCategoryService(apiClient),
		transactions: services.NewTransactionService(apiClient),
		dashboard:    services.NewDashboardService(apiClient),
		db:           db,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the previous session and enters the REPL. It blocks until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.session.Start(ctx)
	defer a.shutdown()

	cancel := a.watchSession()
	defer cancel()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// watchSession announces involuntary session loss, i.e. a 401 tearing the
// session down mid-use rather than an explicit logout command.
func (a *App) watchSession() (cancel func()) {
	prev := a.session.State()
	return a.session.Subscribe(func(s session.State) {
		if prev.Authenticated() && !s.Authenticated() && !a.loggingOut.Swap(false) {
			printlnFn("Session expired, please log in again")
		}
		prev = s
	})
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return keyvalue.Open(ctx, path)
}

func (a *App) shutdown() {
	a.session.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}
