package motion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
	"github.com/millworks/millwright/pkg/machine"
)

// fakeOp records its invocation and emits one entry per argument.
type fakeOp struct {
	kind   Kind
	params []string
	calls  int
	fail   error
}

func (f *fakeOp) Kind() Kind           { return f.kind }
func (f *fakeOp) Parameters() []string { return f.params }

func (f *fakeOp) Execute(_ *machine.State, args []any) ([]gcode.Entry, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	var entries []gcode.Entry
	for i, a := range args {
		entries = append(entries, gcode.Comment(gcode.CategoryMill,
			fmt.Sprintf("%s %s=%v", f.kind, f.params[i], a)))
	}
	return entries, nil
}

func newMotionState(t *testing.T) *machine.State {
	t.Helper()
	st, err := machine.NewState(machine.Config{
		Name:          "test",
		MaxSpindleRPM: 10000,
		ToolTable:     "t.yaml",
	}, gcode.NewLog())
	require.NoError(t, err)
	return st
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("pocket_circle")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	op := &fakeOp{kind: KindHelix, params: []string{"diameter", "depth"}}

	require.NoError(t, r.Register(op))

	// Duplicate registration fails.
	err := r.Register(&fakeOp{kind: KindHelix})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	// Unknown kinds are rejected outright.
	err = r.Register(&fakeOp{kind: Kind("Engrave")})
	require.Error(t, err)

	assert.Equal(t, []Kind{KindHelix}, r.Registered())
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	op := &fakeOp{kind: KindBoltCircle, params: []string{"holes", "circleDiameter", "depth"}}
	require.NoError(t, r.Register(op))

	st := newMotionState(t)
	entries, err := r.Dispatch(KindBoltCircle, st, []any{4, 25.0, -3.0})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, 1, op.calls)

	// Produced entries land in the session log, sequenced.
	logged := st.Log().Entries()
	require.Len(t, logged, 3)
	assert.Equal(t, "BoltCircle holes=4", logged[0].Comment)
	assert.Equal(t, 2, logged[2].Sequence)
}

func TestRegistry_Dispatch_UnknownKind(t *testing.T) {
	r := NewRegistry()
	st := newMotionState(t)

	_, err := r.Dispatch(KindFrame, st, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestRegistry_Dispatch_ArityMismatch(t *testing.T) {
	r := NewRegistry()
	op := &fakeOp{kind: KindMillDrill, params: []string{"x", "y", "depth"}}
	require.NoError(t, r.Register(op))

	st := newMotionState(t)
	_, err := r.Dispatch(KindMillDrill, st, []any{1.0, 2.0})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	assert.Zero(t, op.calls, "operation must not run on arity mismatch")
	assert.Zero(t, st.Log().Len())
}

func TestRegistry_Dispatch_OperationError(t *testing.T) {
	r := NewRegistry()
	opErr := errors.New(errors.ErrCodeInvalidRequest, "boom")
	op := &fakeOp{kind: KindLegacyPocket, params: nil, fail: opErr}
	require.NoError(t, r.Register(op))

	st := newMotionState(t)
	_, err := r.Dispatch(KindLegacyPocket, st, nil)
	require.ErrorIs(t, err, opErr)
	assert.Zero(t, st.Log().Len(), "failed operations append nothing")
}
