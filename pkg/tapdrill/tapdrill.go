package tapdrill

import (
	"sort"

	"github.com/millworks/millwright/pkg/errors"
)

// ThreadPercent selects the thread engagement the tap drill is sized for.
type ThreadPercent int

const (
	// Thread75 is the 75% engagement used for aluminum, brass, and plastics.
	Thread75 ThreadPercent = 75
	// Thread50 is the 50% engagement used for steel, stainless, and iron.
	Thread50 ThreadPercent = 50
)

// IsValid checks if the ThreadPercent is a recognized engagement.
func (p ThreadPercent) IsValid() bool {
	return p == Thread75 || p == Thread50
}

// DrillSize is one drill callout with its decimal equivalent.
type DrillSize struct {
	// Drill is the size callout (number, letter, or fractional).
	Drill string `json:"drill" yaml:"drill"`

	// DecimalEquivalent is the diameter in inches.
	DecimalEquivalent float64 `json:"dec_eq" yaml:"dec_eq"`
}

// Entry is the chart row for one screw size.
type Entry struct {
	// TPI is the threads-per-inch pitch.
	TPI float64 `json:"tpi" yaml:"tpi"`

	// Thread75 is the tap drill for 75% thread engagement.
	Thread75 DrillSize `json:"thread_75" yaml:"thread_75"`

	// Thread50 is the tap drill for 50% thread engagement.
	Thread50 DrillSize `json:"thread_50" yaml:"thread_50"`

	// Clearance maps fit names ("close_fit", "free_fit") to clearance drills.
	Clearance map[string]DrillSize `json:"clearance" yaml:"clearance"`
}

// Chart maps screw-size labels to their tap and clearance drill data.
type Chart map[string]Entry

// Sizes returns the screw-size labels in sorted order.
func (c Chart) Sizes() []string {
	out := make([]string, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Recommendation is a resolved tap and clearance drill selection.
type Recommendation struct {
	// Screw is the screw-size label the recommendation is for.
	Screw string `json:"screw" yaml:"screw"`

	// TPI is the thread pitch.
	TPI float64 `json:"tpi" yaml:"tpi"`

	// ThreadPercent is the engagement the tap drill is sized for.
	ThreadPercent int `json:"threadPercent" yaml:"threadPercent"`

	// Tap is the tap drill for the selected engagement.
	Tap DrillSize `json:"tap" yaml:"tap"`

	// CloseFit is the close-fit clearance drill.
	CloseFit DrillSize `json:"closeFit" yaml:"closeFit"`

	// FreeFit is the free-fit clearance drill, when the chart carries one.
	FreeFit *DrillSize `json:"freeFit,omitempty" yaml:"freeFit,omitempty"`
}

// Lookup resolves the tap and clearance drills for a screw size at the
// given thread engagement.
func (c Chart) Lookup(screw string, pct ThreadPercent) (*Recommendation, error) {
	if !pct.IsValid() {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest,
			"thread percent must be 50 or 75, got %d", pct)
	}

	entry, ok := c[screw]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeNotFound, "screw size %q not in tap drill chart", screw)
	}

	rec := &Recommendation{
		Screw:         screw,
		TPI:           entry.TPI,
		ThreadPercent: int(pct),
	}
	switch pct {
	case Thread75:
		rec.Tap = entry.Thread75
	case Thread50:
		rec.Tap = entry.Thread50
	}

	close, ok := entry.Clearance["close_fit"]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeDataFormat,
			"chart entry for %q has no close-fit clearance drill", screw)
	}
	rec.CloseFit = close

	if free, ok := entry.Clearance["free_fit"]; ok {
		rec.FreeFit = &free
	}

	return rec, nil
}
