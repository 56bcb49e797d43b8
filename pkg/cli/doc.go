// Package cli implements the command-line interface for the millwright tool.
//
// # Overview
//
// The millwright CLI resolves cutting speeds and feeds for CNC milling from
// reference tables: a material speed table, a nested tool inventory, a
// feeds-and-speeds reference, and a tap drill chart. It is designed for
// machinists and post-processor tooling that needs reproducible speed and
// feed numbers.
//
// # Commands
//
// speeds - Resolve surface and spindle speed:
//
//	millwright speeds --speeds tables/speeds.yaml --material Aluminum --tool "End Mill" --diameter 0.25
//
// Resolves the reference surface speed and spindle speed for a material,
// tool type, and diameter. Diameters between tabulated values are linearly
// interpolated; diameters outside the tabulated span are rejected.
//
// feed - Derive a full cutting setup:
//
//	millwright feed --machine config/machine.yaml --tools tables/tools.yaml \
//	    --speeds tables/speeds.yaml --fas tables/fas.yaml \
//	    --tool-id 3 --material Aluminum
//
// Derives spindle speed and feed rate for an inventory tool against a
// workpiece material, honoring the machine's spindle ceiling. The output
// includes the derivation trace with any warnings.
//
// tools - List the flattened tool inventory:
//
//	millwright tools --tools tables/tools.yaml [--type "End Mill"]
//
// tapdrill - Look up tap and clearance drills:
//
//	millwright tapdrill --chart tables/tapdrill.yaml --screw 1/4-20 --percent 75
//
// serve - Run the HTTP server:
//
//	millwright serve --machine config/machine.yaml --tools tables/tools.yaml --speeds tables/speeds.yaml
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Set logging verbosity (debug, info, warn, error)
//
// # Environment Variables
//
//	LOG_LEVEL            Set logging verbosity
//	MILLWRIGHT_MACHINE   Default machine configuration path
//	MILLWRIGHT_TOOLS     Default tool inventory path
//	MILLWRIGHT_SPEEDS    Default speed table path
//	MILLWRIGHT_FAS       Default feeds-and-speeds reference path
//	MILLWRIGHT_TAPDRILL  Default tap drill chart path
//	PORT                 Listen port for the serve command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
package cli
