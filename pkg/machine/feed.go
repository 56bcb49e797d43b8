package machine

import (
	"fmt"

	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
)

// DeriveFeed derives spindle speed, surface speed, and feed rate from the
// feeds-and-speeds reference for the active material and tool.
//
// Spindle speed comes from the tool's manufacturer range when one exists
// for the material (through the spindle setter, so the limit rule still
// applies), otherwise from the generic surface-speed range midpoint through
// the surface-speed setter. Feed comes from the manufacturer feed range
// when present, otherwise from the chipload table once a spindle speed has
// been derived; when no source applies the feed rate is left unchanged and
// a warning is appended.
func (s *State) DeriveFeed(fas *FeedsAndSpeeds) error {
	if fas == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "feeds-and-speeds reference is required")
	}
	if s.material == "" || !s.hasTool {
		return errors.New(errors.ErrCodeInvalidRequest,
			"feed derivation requires both an active material and an active tool")
	}
	diameter, err := s.activeDiameter()
	if err != nil {
		return err
	}

	s.log.Append(gcode.Comment(gcode.CategoryMachine, fmt.Sprintf("Workpiece is %s", s.material)))

	// Spindle speed: manufacturer recommendation wins over the generic chart.
	if r, ok := s.tool.RPM[s.material]; ok {
		rpm := r.Mid()
		s.log.Append(gcode.Comment(gcode.CategoryMachine, fmt.Sprintf(
			"Using tool manufacturer recommended spindle RPM: %.4f rpm", rpm)))
		if err := s.SetSpindleSpeed(rpm); err != nil {
			return err
		}
		feedDerivations.WithLabelValues(sourceManufacturer).Inc()
	} else if r, ok := fas.SurfaceRange(s.tool.Material, s.material); ok {
		if err := s.SetSurfaceSpeed(r.Mid() / SFMPerMeterSecond); err != nil {
			return err
		}
		feedDerivations.WithLabelValues(sourceChart).Inc()
	} else {
		s.log.Append(gcode.Warning(fmt.Sprintf(
			"No surface-speed reference for %s on %s.  Set speeds manually.",
			s.tool.Material, s.material)))
		feedDerivations.WithLabelValues(sourceNone).Inc()
	}

	// Feed rate: manufacturer recommendation, then chipload, then leave as-is.
	if r, ok := s.tool.IPM[s.material]; ok {
		ipm := r.Mid()
		s.log.Append(gcode.Comment(gcode.CategoryMachine, fmt.Sprintf(
			"Using tool manufacturer recommended feed: %.4f in/min", ipm)))
		s.setFeed(ipm * MMPerInch)
		return nil
	}

	s.log.Append(gcode.Comment(gcode.CategoryMachine,
		"No manufacturer-recommended IPM Feed.  Calculating."))

	key := chiploadKey(diameter)
	cl, ok := fas.ChiploadRange(s.material, key)
	if !ok {
		s.log.Append(gcode.Warning(
			"Tool not available in chipload table.  You're on your own for feeds and speeds."))
		return nil
	}

	if s.rpm <= 0 {
		s.log.Append(gcode.Warning(
			"Cannot calculate feed from chipload without a spindle speed.  Set speeds manually."))
		return nil
	}

	s.setFeed(s.rpm * float64(s.tool.Flutes) * cl.Mid() * MMPerInch)
	return nil
}

// chiploadKey renders a millimeter diameter as the inch-denominated,
// three-decimal key used by the chipload chart.
func chiploadKey(diameterMM float64) string {
	return fmt.Sprintf("%.3f", diameterMM/MMPerInch)
}
