package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itlaf/fotostudio/internal/config"
	"github.com/itlaf/fotostudio/internal/db"
	"github.com/itlaf/fotostudio/internal/handlers"
	"github.com/itlaf/fotostudio/internal/store/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("upload dir", "error", err)
		os.Exit(1)
	}

	stores := handlers.Stores{
		Users:        postgres.NewUserStore(dbConn),
		Clients:      postgres.NewClientStore(dbConn),
		Sessions:     postgres.NewSessionStore(dbConn),
		Quotes:       postgres.NewQuoteStore(dbConn),
		Equipments:   postgres.NewEquipmentStore(dbConn),
		Transactions: postgres.NewTransactionStore(dbConn),
		Configs:      postgres.NewSystemConfigStore(dbConn),
	}

	h := handlers.NewHandler(stores, cfg.JWTSecret, cfg.TokenTTL, cfg.UploadDir, logger)
	r := handlers.NewRouter(h, handlers.RouterOptions{
		Secret:         cfg.JWTSecret,
		UploadDir:      cfg.UploadDir,
		Users:          stores.Users,
		LoginRate:      cfg.LoginRate,
		LoginRateBurst: cfg.LoginRateBurst,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
