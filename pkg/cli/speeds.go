package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/header"
	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/speeds"
	"github.com/millworks/millwright/pkg/tables"
)

// speedResult is the serialized output of the speeds command.
type speedResult struct {
	header.Header `yaml:",inline"`
	speeds.Result `yaml:",inline"`
}

func speedsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "speeds",
		EnableShellCompletion: true,
		Usage:                 "Resolve surface and spindle speed for a material, tool type, and diameter",
		Description: `Resolve the reference surface speed and spindle speed for a cut:
  - Exact diameter matches return the tabulated spindle speed
  - Diameters between two tabulated values are linearly interpolated
  - Diameters outside the tabulated span are rejected

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			speedTableFlag,
			&cli.StringFlag{
				Name:     "material",
				Usage:    "Workpiece material (e.g., Aluminum)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "tool",
				Usage:    "Tool type (e.g., End Mill)",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "diameter",
				Usage:    "Tool diameter in the table's diameter unit",
				Required: true,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			table, err := tables.LoadSpeedTable(ctx, cmd.String("speeds"))
			if err != nil {
				return fmt.Errorf("failed to load speed table: %w", err)
			}

			result, err := speeds.New(table).Resolve(
				cmd.String("material"),
				cmd.String("tool"),
				cmd.Float("diameter"),
			)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer ser.Close()

			return ser.Serialize(ctx, speedResult{
				Header: *header.New(
					header.WithKind(header.KindSpeedResult),
					header.WithAPIVersion("v1"),
					header.WithMetadata("material", cmd.String("material")),
				),
				Result: *result,
			})
		},
	}
}
