package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/millworks/millwright/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}

	machineFlag = &cli.StringFlag{
		Name:    "machine",
		Usage:   "Path to the machine configuration file",
		Sources: cli.EnvVars("MILLWRIGHT_MACHINE"),
	}

	toolTableFlag = &cli.StringFlag{
		Name:    "tools",
		Usage:   "Path to the tool inventory file",
		Sources: cli.EnvVars("MILLWRIGHT_TOOLS"),
	}

	speedTableFlag = &cli.StringFlag{
		Name:    "speeds",
		Usage:   "Path to the material speed table file",
		Sources: cli.EnvVars("MILLWRIGHT_SPEEDS"),
	}

	fasFlag = &cli.StringFlag{
		Name:    "fas",
		Usage:   "Path to the feeds-and-speeds reference file",
		Sources: cli.EnvVars("MILLWRIGHT_FAS"),
	}

	tapDrillFlag = &cli.StringFlag{
		Name:    "chart",
		Usage:   "Path to the tap drill chart file",
		Sources: cli.EnvVars("MILLWRIGHT_TAPDRILL"),
	}
)

// parseOutputFormat validates the format flag and returns the serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}
