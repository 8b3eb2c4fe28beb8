package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adisakb/e-sarabun/internal"
	"github.com/adisakb/e-sarabun/internal/analytics"
	"github.com/adisakb/e-sarabun/internal/auth"
	"github.com/adisakb/e-sarabun/internal/category"
	"github.com/adisakb/e-sarabun/internal/core/events"
	"github.com/adisakb/e-sarabun/internal/document"
	"github.com/adisakb/e-sarabun/internal/export"
	"github.com/adisakb/e-sarabun/internal/notification"
	"github.com/adisakb/e-sarabun/internal/settings"
	"github.com/adisakb/e-sarabun/internal/sheets"
	"github.com/adisakb/e-sarabun/internal/storage"
	"github.com/adisakb/e-sarabun/internal/transport"
	"github.com/adisakb/e-sarabun/internal/transport/rest"
	"github.com/adisakb/e-sarabun/internal/user"
	"github.com/adisakb/e-sarabun/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	KV     *storage.GormKV
	Store  *storage.Store
	Router *chi.Mux
	Sheets *sheets.Client
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		deps.Sheets.Shutdown()
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Env)
	log := logger.LoggerWrapper()

	db, err := storage.Open(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	kv := storage.NewGormKV(db)
	store := storage.NewStore(kv, log)

	eventBus := events.NewEventBus(log)
	baseHandler := transport.NewBaseHandler(log)

	// services
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(store, auth.BcryptVerifier{}, tokenGen, log)
	userService := user.NewService(store, log, config.Security.BCryptCost)
	documentService := document.NewService(store, eventBus, log)
	analyticsService := analytics.NewService(store, log)
	notificationService := notification.NewService(store, log)
	categoryService := category.NewService(store, log)
	settingsService := settings.NewService(store, log)

	sheetsClient := sheets.NewClient(sheets.Config{
		WebhookURL:   config.Sheets.WebhookURL,
		PushTimeout:  config.Sheets.PushTimeout,
		MaxWorkers:   config.Sheets.MaxWorkers,
		JobQueueSize: config.Sheets.JobQueueSize,
	}, log)

	// event subscriptions: the audit trail first, then the spreadsheet sink
	notificationService.RegisterEventHandlers(eventBus)
	sheetsClient.RegisterEventHandlers(eventBus)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(baseHandler, authService, userService),
		Document:     document.NewHandler(baseHandler, documentService),
		Analytics:    analytics.NewHandler(baseHandler, analyticsService),
		Notification: notification.NewHandler(baseHandler, notificationService),
		Category:     category.NewHandler(baseHandler, categoryService),
		User:         user.NewHandler(baseHandler, userService),
		Settings:     settings.NewHandler(baseHandler, settingsService),
		Export:       export.NewHandler(baseHandler, documentService),
		Sheets:       sheets.NewHandler(baseHandler, sheetsClient),
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, kv, handlers, log)

	return &Dependencies{
		Config: config,
		KV:     kv,
		Store:  store,
		Router: router,
		Sheets: sheetsClient,
		Logger: log,
	}, nil
}
