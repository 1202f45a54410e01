package main

//
//  @title           shipcast API
//  @version         1.0
//  @description     Delivery estimate configuration and rendering service for storefronts.
//  @termsOfService  https://github.com/merchware/shipcast
//  @contact.name    API Support
//  @contact.url     https://github.com/merchware/shipcast
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        estimate
//  @tag.description Storefront endpoints rendering delivery estimates
//
//  @tag.name        settings
//  @tag.description Merchant-facing shop configuration
//
//  @tag.name        rules
//  @tag.description Merchant-facing delivery rules
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goose "github.com/pressly/goose/v3"

	"github.com/merchware/shipcast/config"
	_ "github.com/merchware/shipcast/docs" // swagger docs
	"github.com/merchware/shipcast/internal/app"
	"github.com/merchware/shipcast/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runMigrations applies goose migrations against the configured database.
// The command is validated before any connection is made.
func runMigrations(command, dir string) error {
	var run func(db *sql.DB, dir string, opts ...goose.OptionsFunc) error
	switch command {
	case "up":
		run = goose.Up
	case "down":
		run = goose.Down
	case "status":
		run = goose.Status
	case "version":
		run = goose.Version
	default:
		return errors.New("unknown migration command: " + command)
	}

	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return run(db, dir)
}

// main is the entry point of the shipcast application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API serving estimates and configuration.
//   - migrate: Runs goose migrations against the configured database.
//
// Flags:
//   - --mode:    Execution mode ("api" or "migrate"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --command: Migration command for migrate mode (up, down, status, version).
//   - --dir:     Directory containing goose migrations. Default: "./db/migrations".
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or migrate")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	command := flag.String("command", "up", "Migration command: up, down, status, version")
	dir := flag.String("dir", "./db/migrations", "Directory with goose migrations")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "migrate":
		logger.L().Info().Str("command", *command).Msg("running migrations")
		if err := runMigrations(*command, *dir); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
