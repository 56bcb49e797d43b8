package machine

import (
	"fmt"
	"strconv"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
)

// State holds the active tool, material, and the three interdependent
// physical quantities of one machining session: spindle speed, surface
// speed, and feed rate. All mutation goes through the setter methods, which
// keep the quantities mutually consistent under the machine limits and
// record every derivation in the session log.
//
// State is single-threaded by design; concurrent sessions each get their
// own State and Log.
type State struct {
	cfg Config
	log *gcode.Log

	tool    catalog.IndexedTool
	hasTool bool

	material string

	rpm     float64
	surface float64
	feed    float64
}

// NewState creates a State for the given machine configuration, writing its
// derivation trail to log.
func NewState(cfg Config, log *gcode.Log) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SafeZ == 0 {
		cfg.SafeZ = DefaultSafeZ
	}
	if log == nil {
		log = gcode.NewLog()
	}
	return &State{cfg: cfg, log: log}, nil
}

// Config returns the machine configuration the state was created with.
func (s *State) Config() Config {
	return s.cfg
}

// Log returns the session command log.
func (s *State) Log() *gcode.Log {
	return s.log
}

// SetTool selects the active tool.
func (s *State) SetTool(t catalog.IndexedTool) {
	s.tool = t
	s.hasTool = true
}

// Tool returns the active tool and whether one is selected.
func (s *State) Tool() (catalog.IndexedTool, bool) {
	return s.tool, s.hasTool
}

// SetMaterial selects the active workpiece material.
func (s *State) SetMaterial(material string) {
	s.material = material
}

// Material returns the active workpiece material.
func (s *State) Material() string {
	return s.material
}

// RPM returns the current spindle speed.
func (s *State) RPM() float64 {
	return s.rpm
}

// SurfaceSpeed returns the current surface speed in m/s.
func (s *State) SurfaceSpeed() float64 {
	return s.surface
}

// FeedRate returns the current feed rate in mm/min.
func (s *State) FeedRate() float64 {
	return s.feed
}

// SetSurfaceSpeed requests a constant surface speed in m/s. The implied
// spindle speed is derived from the active tool diameter; when it exceeds
// the machine maximum, the spindle is clamped to the maximum, the effective
// surface speed is recomputed from the clamp, and a warning is logged
// instead of failing the call. Non-positive requests are rejected.
func (s *State) SetSurfaceSpeed(value float64) error {
	if value <= 0 {
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"surface speed must be positive, got %v", value)
	}
	diameter, err := s.activeDiameter()
	if err != nil {
		return err
	}

	rpm, effective, entries := planSurfaceSpeed(s.cfg.Name, float64(s.cfg.MaxSpindleRPM), diameter, value)
	s.rpm = rpm
	s.surface = effective
	s.log.Append(entries...)
	return nil
}

// planSurfaceSpeed is the pure half of SetSurfaceSpeed: it derives the
// spindle speed implied by the requested surface speed, applies the clamp
// rule, and returns the entries describing what happened.
func planSurfaceSpeed(name string, maxRPM, diameter, requested float64) (rpm, effective float64, entries []gcode.Entry) {
	rpm = rpmFromSurface(requested, diameter)
	effective = requested

	if rpm > maxRPM {
		effective = surfaceFromRPM(maxRPM, diameter)
		entries = append(entries, gcode.Warning(fmt.Sprintf(
			"%s cannot do %.4f rpm.  Maxing out at %v rpm | %.4f m/s | %.4f ft/min",
			name, rpm, maxRPM, effective, effective*SFMPerMeterSecond)))
		clampTotal.Inc()
		rpm = maxRPM
	}

	entries = append(entries, gcode.Comment(gcode.CategoryMill, fmt.Sprintf(
		"Setting RPM: %.4f | %.4f Hz on the VFD", rpm, rpm/60)))
	return rpm, effective, entries
}

// SetSpindleSpeed sets the spindle speed directly. A request above the
// machine maximum is rejected with a LIMIT_EXCEEDED error and leaves the
// state unchanged; the surface-speed path clamps instead. The asymmetry is
// deliberate and preserved.
func (s *State) SetSpindleSpeed(value float64) error {
	if value <= 0 {
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"spindle speed must be positive, got %v", value)
	}
	if value > float64(s.cfg.MaxSpindleRPM) {
		return errors.NewWithContext(errors.ErrCodeLimitExceeded,
			"requested spindle speed exceeds machine maximum",
			map[string]any{
				"requested": value,
				"max":       s.cfg.MaxSpindleRPM,
				"machine":   s.cfg.Name,
			})
	}

	s.rpm = value
	s.log.Append(
		gcode.Command("G97", "Constant Spindle Speed"),
		gcode.Command("S"+strconv.FormatFloat(value, 'f', -1, 64),
			fmt.Sprintf("Set Spindle RPM: %.4f", value)),
	)

	if s.hasTool && s.tool.Diameter > 0 {
		surface := surfaceFromRPM(value, s.tool.Diameter)
		if round4(surface) != round4(s.surface) {
			s.surface = surface
			s.log.Append(gcode.Comment(gcode.CategoryMill, fmt.Sprintf(
				"Calculated Tool Constant Surface Speed (CSS): %.4f m/s | %.4f ft/min",
				surface, surface*SFMPerMeterSecond)))
		}
	} else {
		s.log.Append(gcode.Warning("Cannot calculate CSS from RPM because tool diameter is undefined"))
	}

	return nil
}

// setFeed stores the feed rate and logs the corresponding feed word.
func (s *State) setFeed(value float64) {
	s.feed = value
	s.log.Append(gcode.Command(
		"F"+strconv.FormatFloat(round4(value), 'f', -1, 64),
		fmt.Sprintf("Set Feed Rate: %.4f mm/min", value)))
}

// activeDiameter returns the active tool diameter, failing when no tool is
// selected or the diameter is not strictly positive.
func (s *State) activeDiameter() (float64, error) {
	if !s.hasTool {
		return 0, errors.New(errors.ErrCodeInvalidRequest,
			"no active tool; select a tool before deriving speeds")
	}
	if s.tool.Diameter <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidRequest,
			"active tool %q has non-positive diameter %v", s.tool.Description, s.tool.Diameter)
	}
	return s.tool.Diameter, nil
}
