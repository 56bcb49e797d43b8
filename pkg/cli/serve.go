package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/server"
	"github.com/millworks/millwright/pkg/tables"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the resolution engine over HTTP",
		Description: `Start an HTTP server exposing speed resolution, feed derivation, the tool
inventory, and tap drill lookups as JSON endpoints, plus health probes and
Prometheus metrics.

The listen port defaults to 8080 and can be overridden with --port or the
PORT environment variable.`,
		Flags: []cli.Flag{
			machineFlag,
			toolTableFlag,
			speedTableFlag,
			fasFlag,
			tapDrillFlag,
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bundle, err := tables.LoadAll(ctx, tables.Paths{
				Machine:        cmd.String("machine"),
				Inventory:      cmd.String("tools"),
				Speeds:         cmd.String("speeds"),
				FeedsAndSpeeds: cmd.String("fas"),
				TapDrill:       cmd.String("chart"),
			})
			if err != nil {
				return fmt.Errorf("failed to load reference tables: %w", err)
			}

			cfg := server.NewConfig()
			cfg.Version = version
			cfg.Port = int(cmd.Int("port"))

			return server.RunWithConfig(cfg, bundle)
		},
	}
}
