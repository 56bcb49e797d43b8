package tables

import (
	"context"
	"log/slog"
	"os"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/machine"
	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/speeds"
	"github.com/millworks/millwright/pkg/tapdrill"

	"gopkg.in/yaml.v3"
)

// LoadMachineConfig reads and validates a machine configuration file.
func LoadMachineConfig(ctx context.Context, path string) (*machine.Config, error) {
	cfg, err := serializer.FromFile[machine.Config](ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to load machine configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("loaded machine configuration", "path", path, "machine", cfg.Name)
	return cfg, nil
}

// LoadInventory reads a nested tool inventory file, preserving the
// declaration order of tool types and tools. The document is a mapping of
// tool type to a mapping of description to tool attributes; both levels keep
// source order so flattened identifiers are reproducible.
func LoadInventory(_ context.Context, path string) (catalog.Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to read tool inventory", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to parse tool inventory", err)
	}
	if len(doc.Content) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataFormat, "tool inventory %s is empty", path)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrCodeDataFormat,
			"tool inventory %s must be a mapping of tool types", path)
	}

	inventory := make(catalog.Inventory, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		typeNode := root.Content[i]
		toolsNode := root.Content[i+1]

		if toolsNode.Kind != yaml.MappingNode {
			return nil, errors.Newf(errors.ErrCodeDataFormat,
				"tool type %q must map descriptions to tool attributes", typeNode.Value)
		}

		group := catalog.Group{Type: typeNode.Value}
		for j := 0; j+1 < len(toolsNode.Content); j += 2 {
			descNode := toolsNode.Content[j]
			attrNode := toolsNode.Content[j+1]

			var tool catalog.Tool
			if err := attrNode.Decode(&tool); err != nil {
				return nil, errors.Wrap(errors.ErrCodeDataFormat,
					"failed to decode tool "+descNode.Value, err)
			}
			tool.Description = descNode.Value

			if tool.Diameter <= 0 {
				return nil, errors.NewWithContext(errors.ErrCodeDataFormat,
					"tool must declare a positive diameter", map[string]any{
						"type":        group.Type,
						"description": tool.Description,
					})
			}
			group.Tools = append(group.Tools, tool)
		}
		inventory = append(inventory, group)
	}

	slog.Debug("loaded tool inventory", "path", path, "types", len(inventory))
	return inventory, nil
}

// LoadSpeedTable reads a material speed reference file.
func LoadSpeedTable(ctx context.Context, path string) (speeds.Table, error) {
	table, err := serializer.FromFile[speeds.Table](ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to load speed table", err)
	}
	if len(*table) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataFormat, "speed table %s has no materials", path)
	}
	for material, byTool := range *table {
		for toolType, entry := range byTool {
			if entry.SurfaceSpeed <= 0 && len(entry.RPMByDiameter) == 0 {
				return nil, errors.NewWithContext(errors.ErrCodeDataFormat,
					"speed table entry has neither surface speed nor spindle speeds",
					map[string]any{"material": material, "tool": toolType})
			}
		}
	}
	slog.Debug("loaded speed table", "path", path, "materials", len(*table))
	return *table, nil
}

// LoadFeedsAndSpeeds reads a feeds-and-speeds reference file.
func LoadFeedsAndSpeeds(ctx context.Context, path string) (*machine.FeedsAndSpeeds, error) {
	fas, err := serializer.FromFile[machine.FeedsAndSpeeds](ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to load feeds-and-speeds reference", err)
	}
	if len(fas.SFM) == 0 && len(fas.Chipload) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataFormat,
			"feeds-and-speeds reference %s has no SFM and no chipload data", path)
	}
	return fas, nil
}

// LoadTapDrillChart reads a tap drill chart file.
func LoadTapDrillChart(ctx context.Context, path string) (tapdrill.Chart, error) {
	chart, err := serializer.FromFile[tapdrill.Chart](ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataFormat, "failed to load tap drill chart", err)
	}
	for screw, entry := range *chart {
		if entry.TPI <= 0 {
			return nil, errors.NewWithContext(errors.ErrCodeDataFormat,
				"tap drill entry must declare a positive TPI",
				map[string]any{"screw": screw})
		}
	}
	slog.Debug("loaded tap drill chart", "path", path, "sizes", len(*chart))
	return *chart, nil
}
