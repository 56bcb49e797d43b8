// Package tables loads the reference documents the engine runs on: machine
// configurations, the nested tool inventory, material speed tables, the
// feeds-and-speeds reference, and the tap drill chart.
//
// # Overview
//
// All loaders accept YAML or JSON files and validate structural requirements
// before handing data to consumers. Validation failures carry the DATA_FORMAT
// error code so callers can distinguish bad input files from lookup misses.
//
// The tool inventory is order-sensitive: flattened tool identifiers follow
// declaration order in the source file, so LoadInventory parses the document
// with a position-preserving decoder rather than a Go map.
//
// # Usage
//
// Loading everything a session needs in one call:
//
//	bundle, err := tables.LoadAll(ctx, tables.Paths{
//	    Machine:        "config/machine.yaml",
//	    Inventory:      "tables/tools.yaml",
//	    Speeds:         "tables/speeds.yaml",
//	    FeedsAndSpeeds: "tables/fas.yaml",
//	    TapDrill:       "tables/tapdrill.yaml",
//	})
//
// Individual loaders are also exported for callers that need a single
// document.
package tables
