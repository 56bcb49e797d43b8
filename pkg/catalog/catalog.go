package catalog

import (
	"github.com/millworks/millwright/pkg/errors"
)

// Catalog flattens a nested tool inventory into an indexed table and
// provides description and diameter lookups for tool selection.
//
// A Catalog is not safe for concurrent use: NumericDiameter reads the side
// mapping populated by DisplayDiameter calls on the same instance.
type Catalog struct {
	inventory Inventory
	flattened []IndexedTool
	diameters map[string]float64
}

// New creates a Catalog over the given inventory and flattens it eagerly.
// Identifiers are assigned sequentially following the inventory's type
// order, then entry order within each type, so they are stable for a given
// input and usable as reproducible tool-table references.
func New(inventory Inventory) *Catalog {
	c := &Catalog{
		inventory: inventory,
		diameters: make(map[string]float64),
	}

	id := 0
	for _, group := range inventory {
		for _, tool := range group.Tools {
			tool.Type = group.Type
			c.flattened = append(c.flattened, IndexedTool{ID: id, Tool: tool})
			id++
		}
	}

	return c
}

// Flattened returns the indexed table produced from the nested inventory.
func (c *Catalog) Flattened() []IndexedTool {
	out := make([]IndexedTool, len(c.flattened))
	copy(out, c.flattened)
	return out
}

// Tool returns the flattened entry with the given identifier.
func (c *Catalog) Tool(id int) (IndexedTool, error) {
	if id < 0 || id >= len(c.flattened) {
		return IndexedTool{}, errors.Newf(errors.ErrCodeNotFound, "no tool with id %d", id)
	}
	return c.flattened[id], nil
}

// Find returns the tool with the given type and description.
func (c *Catalog) Find(toolType, description string) (IndexedTool, error) {
	for _, t := range c.flattened {
		if t.Type == toolType && t.Description == description {
			return t, nil
		}
	}
	return IndexedTool{}, errors.NewWithContext(errors.ErrCodeNotFound,
		"tool not in inventory", map[string]any{
			"type":        toolType,
			"description": description,
		})
}

// Descriptions returns the description strings for a tool type in insertion
// order. Duplicates present in the source data are preserved. An unknown
// type yields an empty list.
func (c *Catalog) Descriptions(toolType string) []string {
	var out []string
	for _, t := range c.flattened {
		if t.Type == toolType {
			out = append(out, t.Description)
		}
	}
	return out
}

// DisplayDiameter returns the diameter of the matching tool as a fraction
// display string and retains the exact numeric value for later recovery via
// NumericDiameter.
func (c *Catalog) DisplayDiameter(toolType, description string) (string, error) {
	t, err := c.Find(toolType, description)
	if err != nil {
		return "", err
	}

	display := FormatFraction(t.Diameter)
	c.diameters[display] = t.Diameter
	return display, nil
}

// NumericDiameter recovers the exact numeric diameter behind a display
// string produced by this catalog instance. Display strings this instance
// never produced yield a NOT_FOUND error, never a zero default.
func (c *Catalog) NumericDiameter(display string) (float64, error) {
	d, ok := c.diameters[display]
	if !ok {
		return 0, errors.Newf(errors.ErrCodeNotFound, "no diameter recorded for %q", display)
	}
	return d, nil
}
