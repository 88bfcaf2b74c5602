package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"APP_VERSION"`
	Host        string `mapstructure:"HOST"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	MaxOpenConns     int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns     int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// Number of requests handled concurrently
	Workers int `mapstructure:"WORKERS"`

	// Static assets and sample data
	StaticDir string `mapstructure:"STATIC_DIR"`
	SeedFile  string `mapstructure:"SEED_FILE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "3002")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "org_demo")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// eight per CPU
	v.SetDefault("WORKERS", 8*runtime.NumCPU())

	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("SEED_FILE", "")

	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be positive, got %d", c.Workers)
	}
	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
