package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/tables"
	"github.com/millworks/millwright/pkg/tapdrill"
)

func tapDrillCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tapdrill",
		EnableShellCompletion: true,
		Usage:                 "Look up tap and clearance drills for a screw size",
		Description: `Look up the tap drill and clearance drills for a screw size:
  - 75% thread engagement for aluminum, brass, and plastics
  - 50% thread engagement for steel, stainless, and iron
  - Close-fit and free-fit clearance drills

Run without --screw to list the screw sizes in the chart.`,
		Flags: []cli.Flag{
			tapDrillFlag,
			&cli.StringFlag{
				Name:  "screw",
				Usage: `Screw size (e.g., "1/4-20")`,
			},
			&cli.IntFlag{
				Name:  "percent",
				Usage: "Thread engagement percent (supported values: 75, 50)",
				Value: int(tapdrill.Thread75),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			chart, err := tables.LoadTapDrillChart(ctx, cmd.String("chart"))
			if err != nil {
				return fmt.Errorf("failed to load tap drill chart: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer ser.Close()

			screw := cmd.String("screw")
			if screw == "" {
				return ser.Serialize(ctx, chart.Sizes())
			}

			rec, err := chart.Lookup(screw, tapdrill.ThreadPercent(cmd.Int("percent")))
			if err != nil {
				return err
			}

			return ser.Serialize(ctx, rec)
		},
	}
}
