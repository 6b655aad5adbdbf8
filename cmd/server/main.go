// Package main is the entry point for the expense tracker server. It wires
// the SQLite store, the domain services, and the JSON REST API together and
// serves them over h2c so HTTP/2 clients work without TLS.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/api"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/config"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/middleware"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage/sqlite"
	"github.com/Anirudh-rb26/ExpenseTracker/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	userService := service.NewUserService(store)
	groupService := service.NewGroupService(store)
	expenseService := service.NewExpenseService(store)
	balanceService := service.NewBalanceService(store)

	if cfg.SeedDefaultUsers {
		if err := userService.EnsureDefaultUsers(ctx); err != nil {
			return fmt.Errorf("seed default users: %w", err)
		}
	}

	mux := api.NewRouter(userService, groupService, expenseService, balanceService)

	// Add logging and CORS middleware
	handler := middleware.Logging(middleware.CORS(cfg.CORSAllowedOrigin)(mux))

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		// Wrap with h2c for HTTP/2 without TLS
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
