package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/header"
	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/tables"
)

// inventoryResult is the serialized output of the tools command.
type inventoryResult struct {
	header.Header `yaml:",inline"`

	Tools []catalog.IndexedTool `json:"tools" yaml:"tools"`
}

func toolsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tools",
		EnableShellCompletion: true,
		Usage:                 "List the flattened tool inventory",
		Description: `Flatten the nested tool inventory into an indexed table. Identifiers are
assigned in declaration order and are stable for a given inventory file, so
they can be used as tool-table references in machine setups.`,
		Flags: []cli.Flag{
			toolTableFlag,
			&cli.StringFlag{
				Name:  "type",
				Usage: "Only list tools of this type (e.g., End Mill)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			inventory, err := tables.LoadInventory(ctx, cmd.String("tools"))
			if err != nil {
				return fmt.Errorf("failed to load tool inventory: %w", err)
			}

			flattened := catalog.New(inventory).Flattened()
			if toolType := cmd.String("type"); toolType != "" {
				filtered := make([]catalog.IndexedTool, 0, len(flattened))
				for _, t := range flattened {
					if t.Type == toolType {
						filtered = append(filtered, t)
					}
				}
				flattened = filtered
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer ser.Close()

			return ser.Serialize(ctx, inventoryResult{
				Header: *header.New(
					header.WithKind(header.KindInventory),
					header.WithAPIVersion("v1"),
				),
				Tools: flattened,
			})
		},
	}
}
