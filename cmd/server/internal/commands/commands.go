package commands

import (
	"fmt"
	"net/http"
	"time"

	"org-demo-backend/internal/config"
	"org-demo-backend/internal/database"
	"org-demo-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

type Globals struct {
	Debug   bool
	Version string
}

// loadConfig reads .env, the config file and the environment, then sets up logging
func loadConfig(globals *Globals) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if globals.Debug {
		cfg.LogLevel = "debug"
	}
	if globals.Version != "" && globals.Version != "dev" {
		cfg.Version = globals.Version
	}

	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

func databaseOptions(cfg *config.Config, globals *Globals) *database.Options {
	opts := &database.Options{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	}
	if globals.Debug {
		opts.LogLevel = gormlogger.Info
	}
	return opts
}

// ginMode picks the gin mode: release in production whatever the flags say,
// debug when asked for or while developing.
func ginMode(cfg *config.Config, globals *Globals) string {
	switch {
	case cfg.IsProduction():
		return gin.ReleaseMode
	case globals.Debug, cfg.IsDevelopment():
		return gin.DebugMode
	default:
		return gin.ReleaseMode
	}
}

func configureHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    8 * 1024, // 8KiB
	}
}
