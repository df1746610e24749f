package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nestlist/nestlist/internal/auth"
	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/service"
	"github.com/nestlist/nestlist/internal/storage/sqlite"
	"github.com/nestlist/nestlist/internal/web"
	"github.com/nestlist/nestlist/pkg/logging"
)

func main() {
	configPath := flag.String("config", "nestlist.toml", "path to TOML config file")
	flag.Parse()

	// A missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	logging.Setup()
	logger := slog.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	sessions := auth.NewSessionManager(cfg.SecretKey, time.Duration(cfg.SessionTTLHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, sessions, logger)
	listSvc := service.NewListService(store, logger)
	taskSvc := service.NewTaskService(store, logger)

	server := web.NewServer(authSvc, listSvc, taskSvc, logger)

	// h2c allows HTTP/2 without TLS for deployments behind a terminating proxy.
	handler := h2c.NewHandler(server.Router(), &http2.Server{})

	logger.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
