package motion

import (
	"sort"

	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
	"github.com/millworks/millwright/pkg/machine"
)

// Kind identifies a machining operation.
type Kind string

// Valid Kind constants for the supported machining operations.
const (
	KindBoltCircle     Kind = "BoltCircle"
	KindFrame          Kind = "Frame"
	KindHelix          Kind = "Helix"
	KindMillDrill      Kind = "MillDrill"
	KindPocketCircle   Kind = "PocketCircle"
	KindCircularPocket Kind = "CircularPocket"
	KindLegacyPocket   Kind = "LegacyPocket"
)

// Kinds is the list of all supported operation kinds.
var Kinds = []Kind{
	KindBoltCircle,
	KindFrame,
	KindHelix,
	KindMillDrill,
	KindPocketCircle,
	KindCircularPocket,
	KindLegacyPocket,
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind parses a string into a Kind. Returns the Kind and true if
// parsing succeeds, or empty Kind and false if the string is invalid.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	if k.IsValid() {
		return k, true
	}
	return "", false
}

// Operation is one machining operation implementation. The geometry an
// operation generates is owned by the implementation; the engine only
// guarantees the dispatch contract: kind, declared parameters, produced
// log entries.
type Operation interface {
	// Kind returns the identifier the operation registers under.
	Kind() Kind

	// Parameters returns the declared parameter names in call order.
	Parameters() []string

	// Execute runs the operation against the machine state with the given
	// positional arguments and returns the log entries it produced.
	Execute(st *machine.State, args []any) ([]gcode.Entry, error)
}

// Registry maps operation kinds to their implementations. It replaces
// dispatch-by-runtime-string-name with an explicit, typed mapping.
type Registry struct {
	ops map[Kind]Operation
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[Kind]Operation)}
}

// Register adds an operation to the registry. Registering an invalid kind
// or a kind that is already present fails.
func (r *Registry) Register(op Operation) error {
	kind := op.Kind()
	if !kind.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidRequest, "unknown operation kind %q", kind)
	}
	if _, exists := r.ops[kind]; exists {
		return errors.Newf(errors.ErrCodeInvalidRequest, "operation %q already registered", kind)
	}
	r.ops[kind] = op
	return nil
}

// Registered returns the registered kinds in sorted order.
func (r *Registry) Registered() []Kind {
	out := make([]Kind, 0, len(r.ops))
	for k := range r.ops {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dispatch runs the operation registered under kind with the given
// positional arguments, appends the produced entries to the state's log,
// and returns them. Unknown kinds fail with NOT_FOUND; an argument count
// that does not match the operation's declared parameters fails with
// INVALID_REQUEST before the operation runs.
func (r *Registry) Dispatch(kind Kind, st *machine.State, args []any) ([]gcode.Entry, error) {
	op, ok := r.ops[kind]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeNotFound, "no operation registered for %q", kind)
	}

	if want := len(op.Parameters()); want != len(args) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"argument count does not match operation parameters",
			map[string]any{
				"operation":  kind.String(),
				"parameters": op.Parameters(),
				"got":        len(args),
			})
	}

	entries, err := op.Execute(st, args)
	if err != nil {
		return nil, err
	}

	st.Log().Append(entries...)
	return entries, nil
}
