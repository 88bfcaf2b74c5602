package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"org-demo-backend/internal/database"

	"github.com/sirupsen/logrus"
)

type DatabaseCmd struct {
	Migrate MigrateCmd `cmd:"" help:"Create or update tables, indexes and foreign keys."`
	Seed    SeedCmd    `cmd:"" help:"Insert sample organizations, users and linodes."`
	Shell   ShellCmd   `cmd:"" help:"Open psql on the configured database."`
}

type MigrateCmd struct{}

func (m *MigrateCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	opts := databaseOptions(cfg, globals)
	opts.SkipMigrate = true
	db, err := database.Initialize(cfg.DatabaseURL, opts)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logrus.Info("Schema is up to date")
	return nil
}

type SeedCmd struct {
	File string `help:"YAML seed file. Defaults to SEED_FILE, then the built-in sample data." short:"f"`
}

func (s *SeedCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	path := s.File
	if path == "" {
		path = cfg.SeedFile
	}
	data, err := database.LoadSeedData(path)
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.DatabaseURL, databaseOptions(cfg, globals))
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer database.Close(db)

	summary, err := database.Seed(ctx, db, data)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"organizations": summary.Organizations,
		"users":         summary.Users,
		"memberships":   summary.Memberships,
		"linodes":       summary.Linodes,
	}).Info("Sample data loaded")
	return nil
}

type ShellCmd struct {
	Psql string `help:"psql binary to run." default:"psql"`
}

func (s *ShellCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, s.Psql, cfg.DatabaseURL)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", s.Psql, err)
	}
	return nil
}
