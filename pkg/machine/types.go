package machine

import (
	"github.com/millworks/millwright/pkg/catalog"
)

// FeedsAndSpeeds is the feed-derivation reference document.
type FeedsAndSpeeds struct {
	// SFM maps cutter material to workpiece material to a surface-speed
	// range in surface feet per minute.
	SFM map[string]map[string]catalog.Range `json:"SFM" yaml:"sfm"`

	// Chipload maps workpiece material to a diameter key (inches, three
	// decimals) to a chipload range in inches per tooth.
	Chipload map[string]map[string]catalog.Range `json:"Chipload" yaml:"chipload"`
}

// SurfaceRange returns the surface-speed range for a cutter and workpiece
// material pair.
func (f *FeedsAndSpeeds) SurfaceRange(cutter, workpiece string) (catalog.Range, bool) {
	byWorkpiece, ok := f.SFM[cutter]
	if !ok {
		return catalog.Range{}, false
	}
	r, ok := byWorkpiece[workpiece]
	return r, ok
}

// ChiploadRange returns the chipload range for a workpiece material and
// diameter key.
func (f *FeedsAndSpeeds) ChiploadRange(workpiece, diameterKey string) (catalog.Range, bool) {
	byDiameter, ok := f.Chipload[workpiece]
	if !ok {
		return catalog.Range{}, false
	}
	r, ok := byDiameter[diameterKey]
	return r, ok
}
