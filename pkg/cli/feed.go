package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/gcode"
	"github.com/millworks/millwright/pkg/header"
	"github.com/millworks/millwright/pkg/machine"
	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/tables"
)

// feedResult is the serialized output of the feed command.
type feedResult struct {
	header.Header `yaml:",inline"`

	Machine      string        `json:"machine" yaml:"machine"`
	ToolID       int           `json:"tool_id" yaml:"tool_id"`
	Tool         string        `json:"tool" yaml:"tool"`
	Material     string        `json:"material" yaml:"material"`
	RPM          float64       `json:"rpm" yaml:"rpm"`
	SurfaceSpeed float64       `json:"surface_speed" yaml:"surface_speed"`
	FeedRate     float64       `json:"feed_rate" yaml:"feed_rate"`
	Log          []gcode.Entry `json:"log" yaml:"log"`
}

func feedCmd() *cli.Command {
	return &cli.Command{
		Name:                  "feed",
		EnableShellCompletion: true,
		Usage:                 "Derive spindle speed and feed rate for a tool and workpiece material",
		Description: `Derive a complete cutting setup for a tool against a workpiece material:
  - Spindle speed from the manufacturer range when published, otherwise from
    the surface-speed chart (clamped to the machine maximum)
  - Feed rate from the manufacturer range when published, otherwise from the
    chipload table

The derivation trace, including any warnings, is part of the output.`,
		Flags: []cli.Flag{
			machineFlag,
			toolTableFlag,
			speedTableFlag,
			fasFlag,
			&cli.IntFlag{
				Name:     "tool-id",
				Usage:    "Flattened inventory identifier of the cutter",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "material",
				Usage:    "Workpiece material (e.g., Aluminum)",
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

			bundle, err := tables.LoadAll(ctx, tables.Paths{
				Machine:        cmd.String("machine"),
				Inventory:      cmd.String("tools"),
				Speeds:         cmd.String("speeds"),
				FeedsAndSpeeds: cmd.String("fas"),
			})
			if err != nil {
				return fmt.Errorf("failed to load reference tables: %w", err)
			}
			if bundle.FeedsAndSpeeds == nil {
				return fmt.Errorf("feed derivation requires a feeds-and-speeds reference (--fas)")
			}

			tool, err := bundle.Catalog.Tool(int(cmd.Int("tool-id")))
			if err != nil {
				return err
			}

			st, err := machine.NewState(*bundle.Machine, gcode.NewLog())
			if err != nil {
				return err
			}
			st.SetTool(tool)
			st.SetMaterial(cmd.String("material"))

			if err := st.DeriveFeed(bundle.FeedsAndSpeeds); err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer ser.Close()

			return ser.Serialize(ctx, feedResult{
				Header: *header.New(
					header.WithKind(header.KindFeedResult),
					header.WithAPIVersion("v1"),
					header.WithMetadata("machine", bundle.Machine.Name),
				),
				Machine:      bundle.Machine.Name,
				ToolID:       tool.ID,
				Tool:         tool.Description,
				Material:     cmd.String("material"),
				RPM:          st.RPM(),
				SurfaceSpeed: st.SurfaceSpeed(),
				FeedRate:     st.FeedRate(),
				Log:          st.Log().Entries(),
			})
		},
	}
}
