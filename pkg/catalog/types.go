package catalog

// Range is an inclusive [low, high] numeric interval, as published in
// manufacturer data sheets and reference charts.
type Range [2]float64

// Low returns the lower bound of the range.
func (r Range) Low() float64 {
	return r[0]
}

// High returns the upper bound of the range.
func (r Range) High() float64 {
	return r[1]
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r[0] + r[1]) / 2
}

// Tool describes one entry in the tool inventory. Tools are immutable once
// loaded.
type Tool struct {
	// Type is the tool-type label, assigned during flattening from the
	// group the tool was declared under.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Description is the display name of the tool.
	Description string `json:"description" yaml:"description"`

	// Diameter is the cutting diameter. Unit is fixed per deployment;
	// the stock tables ship in millimeters.
	Diameter float64 `json:"diameter" yaml:"diameter"`

	// Material is the cutter material class (e.g. "HSS", "Carbide").
	Material string `json:"material,omitempty" yaml:"material,omitempty"`

	// Flutes is the cutting-edge count used in chipload feed derivation.
	Flutes int `json:"flutes,omitempty" yaml:"flutes,omitempty"`

	// RPM is the optional manufacturer spindle-speed range per workpiece
	// material.
	RPM map[string]Range `json:"rpm,omitempty" yaml:"rpm,omitempty"`

	// IPM is the optional manufacturer feed range per workpiece material,
	// in inches per minute.
	IPM map[string]Range `json:"ipm,omitempty" yaml:"ipm,omitempty"`
}

// Group is one tool-type bucket of the nested inventory.
type Group struct {
	// Type is the tool-type label (e.g. "End Mill", "Drill").
	Type string `json:"type" yaml:"type"`

	// Tools are the entries declared under this type, in source order.
	Tools []Tool `json:"tools" yaml:"tools"`
}

// Inventory is the nested tool inventory in declaration order. Slice order
// is significant: flattening identifiers follow it.
type Inventory []Group

// IndexedTool is a flattened inventory entry with its stable identifier.
type IndexedTool struct {
	// ID is the sequential identifier assigned during flattening.
	ID int `json:"id" yaml:"id"`

	Tool `yaml:",inline"`
}
