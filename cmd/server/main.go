package main

import (
	"context"

	"org-demo-backend/cmd/server/internal/commands"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	cli     struct {
		Debug    bool                 `help:"Enable debug logging and SQL tracing."`
		Version  kong.VersionFlag     `help:"Print the version and exit."`
		Serve    commands.ServeCmd    `cmd:"" default:"withargs" help:"Start the HTTP server."`
		Database commands.DatabaseCmd `cmd:"" help:"Manage the database."`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("org-demo"),
		kong.Description("Organizations, users and linodes over HTTP."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
