// Package machine models the mutable state of one machining session: the
// active tool and material, and the three interdependent quantities --
// spindle speed, surface speed, and feed rate -- kept mutually consistent
// under the machine limits.
//
// # State transitions
//
// Surface speed and spindle speed each have an explicit setter that derives
// the other quantity exactly once, guarded by a 1e-4 rounding tolerance, so
// there is no hidden circular recomputation. The two setters treat a limit
// overshoot differently on purpose:
//
//   - SetSurfaceSpeed clamps the implied spindle speed to the machine
//     maximum, recomputes the achievable surface speed, and records a
//     warning. The call succeeds.
//   - SetSpindleSpeed rejects a request above the maximum with a
//     LIMIT_EXCEEDED error and leaves the state unchanged.
//
// DeriveFeed consults the feeds-and-speeds reference: manufacturer spindle
// and feed ranges take precedence, the generic surface-speed and chipload
// charts fill the gaps, and missing chipload data degrades to "leave feed
// unchanged" plus a warning rather than failing the derivation.
//
// Every decision is appended to the session's gcode.Log.
//
// # Usage
//
//	log := gcode.NewLog()
//	st, err := machine.NewState(cfg, log)
//	if err != nil {
//	    return err
//	}
//	st.SetTool(tool)
//	st.SetMaterial("Aluminum")
//	if err := st.DeriveFeed(fas); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// A State performs no internal locking; one session, one State, one Log.
package machine
