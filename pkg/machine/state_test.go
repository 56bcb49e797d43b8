package machine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
)

func testConfig() Config {
	return Config{
		Name:          "Sherline 2000",
		MaxSpindleRPM: 10000,
		ToolTable:     "tool_inventory.yaml",
	}
}

func testTool(diameter float64) catalog.IndexedTool {
	return catalog.IndexedTool{
		ID: 0,
		Tool: catalog.Tool{
			Type:        "End Mill",
			Description: "test end mill",
			Diameter:    diameter,
			Material:    "HSS",
			Flutes:      2,
		},
	}
}

func newTestState(t *testing.T) *State {
	t.Helper()
	st, err := NewState(testConfig(), gcode.NewLog())
	require.NoError(t, err)
	return st
}

func TestNewState_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing name", cfg: Config{MaxSpindleRPM: 1000, ToolTable: "t.yaml"}},
		{name: "missing tool table", cfg: Config{Name: "m", MaxSpindleRPM: 1000}},
		{name: "zero max rpm", cfg: Config{Name: "m", ToolTable: "t.yaml"}},
		{name: "negative max rpm", cfg: Config{Name: "m", MaxSpindleRPM: -1, ToolTable: "t.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.cfg, gcode.NewLog())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeConfig))
		})
	}
}

func TestNewState_SafeZDefault(t *testing.T) {
	st := newTestState(t)
	assert.Equal(t, DefaultSafeZ, st.Config().SafeZ)

	cfg := testConfig()
	cfg.SafeZ = 25
	st, err := NewState(cfg, gcode.NewLog())
	require.NoError(t, err)
	assert.Equal(t, 25.0, st.Config().SafeZ)
}

func TestSetSurfaceSpeed_WithinLimit(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(10))

	// 1 m/s on a 10 mm tool implies ~1909.86 rpm.
	require.NoError(t, st.SetSurfaceSpeed(1.0))

	want := 1.0 * 60000 / math.Pi / 10
	assert.InDelta(t, want, st.RPM(), 1e-9)
	assert.Equal(t, 1.0, st.SurfaceSpeed())
	assert.Empty(t, st.Log().Warnings())

	entries := st.Log().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, gcode.CategoryMill, entries[0].Category)
	assert.Contains(t, entries[0].Comment, "Setting RPM")
}

func TestSetSurfaceSpeed_ClampsToMax(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(0.5))

	// Implied rpm is 114591.6, far over the 10000 maximum.
	require.NoError(t, st.SetSurfaceSpeed(3.0))

	assert.Equal(t, 10000.0, st.RPM())

	// Effective surface speed is recomputed from the clamped spindle speed.
	wantSurface := 10000 * math.Pi * 0.5 / 60000
	assert.InDelta(t, wantSurface, st.SurfaceSpeed(), 1e-9)

	warnings := st.Log().Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Comment, "cannot do 114591.5590 rpm")
	assert.Contains(t, warnings[0].Comment, "Maxing out at 10000 rpm")
}

func TestSetSurfaceSpeed_RequiresTool(t *testing.T) {
	st := newTestState(t)

	err := st.SetSurfaceSpeed(1.0)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	assert.Zero(t, st.Log().Len())
}

func TestSetSurfaceSpeed_RejectsNonPositive(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(10))
	require.NoError(t, st.SetSurfaceSpeed(1.0))
	before := st.Log().Len()

	for _, v := range []float64{0, -2} {
		err := st.SetSurfaceSpeed(v)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	}

	// Rejection leaves the state untouched.
	assert.Greater(t, st.RPM(), 0.0)
	assert.Equal(t, 1.0, st.SurfaceSpeed())
	assert.Equal(t, before, st.Log().Len())
}

func TestSetSpindleSpeed_Direct(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(10))

	require.NoError(t, st.SetSpindleSpeed(6000))
	assert.Equal(t, 6000.0, st.RPM())

	// Surface speed is derived from the new spindle speed.
	want := 6000 * math.Pi * 10 / 60000
	assert.InDelta(t, want, st.SurfaceSpeed(), 1e-9)

	entries := st.Log().Entries()
	require.GreaterOrEqual(t, len(entries), 3)
	assert.Equal(t, "G97", entries[0].Code)
	assert.Equal(t, "S6000", entries[1].Code)
	assert.Contains(t, entries[2].Comment, "Constant Surface Speed (CSS)")
}

func TestSetSpindleSpeed_RejectsOverLimit(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(0.5))
	require.NoError(t, st.SetSpindleSpeed(5000))
	before := st.Log().Len()

	err := st.SetSpindleSpeed(114591)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLimitExceeded))

	// Rejection leaves the state untouched: no clamp, no log entries.
	assert.Equal(t, 5000.0, st.RPM())
	assert.Equal(t, before, st.Log().Len())
}

func TestSetSpindleSpeed_RejectsNonPositive(t *testing.T) {
	st := newTestState(t)
	for _, v := range []float64{0, -100} {
		err := st.SetSpindleSpeed(v)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	}
}

func TestSetSpindleSpeed_NoToolWarns(t *testing.T) {
	st := newTestState(t)

	require.NoError(t, st.SetSpindleSpeed(2000))
	assert.Equal(t, 2000.0, st.RPM())

	warnings := st.Log().Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Comment, "tool diameter is undefined")
}

func TestSetSpindleSpeed_SkipsRederiveWithinTolerance(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(10))

	require.NoError(t, st.SetSpindleSpeed(6000))
	n := st.Log().Len()

	// Same value again: surface speed unchanged within tolerance, so no
	// CSS entry is appended, only the spindle commands.
	require.NoError(t, st.SetSpindleSpeed(6000))
	assert.Equal(t, n+2, st.Log().Len())
}

func TestRoundTrip_NoDrift(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(12.7))

	const rpm = 8765.4321
	require.NoError(t, st.SetSpindleSpeed(rpm))
	surface := st.SurfaceSpeed()

	require.NoError(t, st.SetSurfaceSpeed(surface))
	assert.InDelta(t, rpm, st.RPM(), 1e-4,
		"one spindle->surface->spindle round trip must not drift")
}

func TestLimitInvariant_HoldsAcrossSequences(t *testing.T) {
	st := newTestState(t)
	st.SetTool(testTool(3.175))
	maxRPM := float64(st.Config().MaxSpindleRPM)

	ops := []func() error{
		func() error { return st.SetSurfaceSpeed(0.5) },
		func() error { return st.SetSpindleSpeed(9999) },
		func() error { return st.SetSurfaceSpeed(50) }, // clamps
		func() error { return st.SetSpindleSpeed(20000) }, // rejected
		func() error { return st.SetSurfaceSpeed(0.01) },
	}

	for i, op := range ops {
		_ = op()
		if st.RPM() != 0 {
			assert.LessOrEqual(t, st.RPM(), maxRPM, "after op %d", i)
		}
	}
}
