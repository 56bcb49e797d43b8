package machine

import (
	"github.com/millworks/millwright/pkg/defaults"
	"github.com/millworks/millwright/pkg/errors"
)

// DefaultSafeZ is the retract height applied when a configuration does not
// set one.
const DefaultSafeZ = defaults.SafeZ

// Config describes one machine. Loaded once, immutable for the life of a
// session.
type Config struct {
	// Name identifies the machine in log entries.
	Name string `json:"name" yaml:"name"`

	// MaxSpindleRPM is the spindle ceiling enforced on every mutation.
	MaxSpindleRPM int `json:"maxSpindleRPM" yaml:"maxSpindleRPM"`

	// ToolTable references the tool inventory this machine is set up with.
	ToolTable string `json:"toolTable" yaml:"toolTable"`

	// SafeZ is the retract height between operations.
	SafeZ float64 `json:"safeZ,omitempty" yaml:"safeZ,omitempty"`
}

// Validate checks that all required configuration fields are present.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrCodeConfig, "machine configuration must have a name")
	}
	if c.MaxSpindleRPM <= 0 {
		return errors.Newf(errors.ErrCodeConfig,
			"machine %q must declare a positive max spindle RPM", c.Name)
	}
	if c.ToolTable == "" {
		return errors.Newf(errors.ErrCodeConfig,
			"machine %q configuration must reference a tool table", c.Name)
	}
	return nil
}
