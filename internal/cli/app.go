// Package cli implements the terminal client: an interactive loop over the
// screens the app offers (login, register, ride browsing, ride creation,
// joining, profile editing).
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/unicaronas/unicaronas/internal/config"
	"github.com/unicaronas/unicaronas/internal/kv"
	"github.com/unicaronas/unicaronas/internal/logging"
	"github.com/unicaronas/unicaronas/internal/models"
	"github.com/unicaronas/unicaronas/internal/repositories/accounts"
	"github.com/unicaronas/unicaronas/internal/repositories/rides"
	"github.com/unicaronas/unicaronas/internal/services"
)

// App wires the config, the local database and the services together and
// holds the signed-in account for the duration of the session. The account
// is loaded from the session slot on start and cleared on logout; there is
// no ambient session state anywhere else.
type App struct {
	config  *config.Config
	log     logging.Logger
	auth    *services.AuthService
	rides   *services.RideService
	account *models.Account
	db      *sql.DB
	reader  *bufio.Reader
}

// NewApp opens the local database, migrates it and builds the service stack.
func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := kv.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "failed to open database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	store := kv.NewSQLiteStore(db)
	authService := services.NewAuthService(accounts.NewKVRepository(store), logger)
	rideService := services.NewRideService(rides.NewKVRepository(store), logger)

	return &App{
		config: cfg,
		log:    logger,
		auth:   authService,
		rides:  rideService,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}
