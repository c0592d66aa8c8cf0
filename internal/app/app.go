package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-vehicle-api/docs"
	"go-vehicle-api/internal/config"
	"go-vehicle-api/internal/database"
	"go-vehicle-api/internal/handler"
	"go-vehicle-api/internal/middleware"
	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/repository/memory"
	"go-vehicle-api/internal/repository/postgres"
	"go-vehicle-api/internal/repository/sqlite"
	"go-vehicle-api/internal/router"
	"go-vehicle-api/internal/security"
	"go-vehicle-api/internal/service"
	"go-vehicle-api/internal/validation"
)

const (
	appName    = "go-vehicle-api"
	appVersion = "1.0.0"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

// store bundles the repositories of one provider with its health probe.
type store struct {
	accounts repository.AccountRepository
	vehicles repository.VehicleRepository
	health   func(ctx context.Context) error
	close    func()
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	hasher, err := security.NewHasher(cfg.PasswordHasher)
	if err != nil {
		st.close()
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	tokens := security.NewTokenService(cfg.TokenConfig())

	seed := service.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = service.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			st.close()
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
	}
	if _, err := service.NewSeeder(st.accounts, st.vehicles, hasher).Seed(ctx, seed); err != nil {
		st.close()
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	validator := validation.Default()
	authService := service.NewAuthService(st.accounts, hasher, tokens)
	accountService := service.NewAccountService(st.accounts, hasher, service.WithPasswordPolicy(validator))
	vehicleService := service.NewVehicleService(st.vehicles)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Home: handler.NewHomeHandler(model.HomeInfo{
			Name:    appName,
			Version: appVersion,
			Docs:    "/swagger/index.html",
		}, st.health),
		Docs:    handler.NewDocsHandler(docs.OpenAPI),
		Auth:    handler.NewAuthHandler(authService, validator),
		Account: handler.NewAccountHandler(accountService, validator),
		Vehicle: handler.NewVehicleHandler(vehicleService, validator),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	slog.Info("application ready",
		"provider", cfg.DatabaseProvider,
		"hasher", cfg.PasswordHasher,
		"token_lifetime", tokens.Lifetime(),
	)

	return &App{
		server:       server,
		cleanupFuncs: []func(){st.close},
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Close() {
	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.server.Shutdown(ctx)
	a.Close()
	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.DatabaseProvider {
	case database.ProviderPostgres:
		slog.Info("connecting to PostgreSQL")
		db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return &store{
			accounts: postgres.NewAccountRepository(db.Pool),
			vehicles: postgres.NewVehicleRepository(db.Pool),
			health:   db.Health,
			close:    db.Close,
		}, nil

	case database.ProviderSQLite:
		slog.Info("opening SQLite database", "path", cfg.SQLitePath)
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := database.MigrateSQLite(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return &store{
			accounts: sqlite.NewAccountRepository(db),
			vehicles: sqlite.NewVehicleRepository(db),
			health:   db.PingContext,
			close:    closeSQL(db),
		}, nil

	case database.ProviderMemory:
		slog.Warn("using in-memory store, data is lost on restart")
		return &store{
			accounts: memory.NewAccountRepository(),
			vehicles: memory.NewVehicleRepository(),
			close:    func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database provider %q", cfg.DatabaseProvider)
	}
}

func closeSQL(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}
}
