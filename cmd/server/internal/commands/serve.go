package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"org-demo-backend/internal/api/routes"
	"org-demo-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ServeCmd struct {
	Port        string        `help:"Port to listen on, overrides PORT." short:"p"`
	Public      bool          `help:"Listen on every interface instead of localhost."`
	SkipMigrate bool          `help:"Do not update the schema on startup."`
	Shutdown    time.Duration `help:"Time allowed for in-flight requests on shutdown." default:"10s"`
}

func (s *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	if s.Port != "" {
		cfg.Port = s.Port
	}
	if s.Public {
		cfg.Host = "0.0.0.0"
	}

	opts := databaseOptions(cfg, globals)
	opts.SkipMigrate = s.SkipMigrate
	db, err := database.Initialize(cfg.DatabaseURL, opts)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer database.Close(db)

	gin.SetMode(ginMode(cfg, globals))

	router := routes.SetupRoutes(db, cfg)
	srv := configureHTTPServer(cfg.Addr(), routes.Handler(router, cfg))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"workers": cfg.Workers,
			"version": cfg.Version,
		}).Info("Starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
