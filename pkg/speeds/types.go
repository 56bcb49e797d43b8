package speeds

// Entry holds the reference cutting data for one (material, tool type)
// combination: a surface-speed scalar and spindle speeds keyed by diameter.
type Entry struct {
	// SurfaceSpeed is the reference surface speed in surface feet per minute.
	SurfaceSpeed float64 `json:"sfm" yaml:"sfm"`

	// RPMByDiameter maps diameter keys (stored as decimal strings) to
	// spindle speeds. Diameters within one entry must be unique.
	RPMByDiameter map[string]float64 `json:"rpm" yaml:"rpm"`
}

// Table is the material speed reference: material → tool type → Entry.
// The table is immutable input; the resolver never mutates or caches it.
type Table map[string]map[string]Entry

// Materials returns the material names present in the table.
func (t Table) Materials() []string {
	out := make([]string, 0, len(t))
	for m := range t {
		out = append(out, m)
	}
	return out
}

// ToolTypes returns the tool-type names present for a material.
func (t Table) ToolTypes(material string) []string {
	tools, ok := t[material]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(tools))
	for tt := range tools {
		out = append(out, tt)
	}
	return out
}

// Result is one resolved (surface speed, spindle speed) pair.
type Result struct {
	// SurfaceSpeed is the reference surface speed for the material and
	// tool type, in surface feet per minute.
	SurfaceSpeed float64 `json:"sfm" yaml:"sfm"`

	// RPM is the resolved spindle speed.
	RPM float64 `json:"rpm" yaml:"rpm"`

	// Interpolated reports whether RPM was linearly interpolated between
	// two table diameters rather than read directly.
	Interpolated bool `json:"interpolated,omitempty" yaml:"interpolated,omitempty"`
}
