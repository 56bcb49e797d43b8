// Package gcode provides the append-only command log that records every
// derivation decision and warning made while computing speeds and feeds.
//
// # Overview
//
// The log is the audit trail and the input to the external instruction
// renderer: the machine state and the resolvers emit entries describing
// what was set, what was substituted, and what could not be derived. No
// entry is ever removed, edited, or reordered.
//
// # Usage
//
//	log := gcode.NewLog()
//	log.Append(
//	    gcode.Command("G97", "Constant Spindle Speed"),
//	    gcode.Comment(gcode.CategoryMill, "Setting RPM: 6000.0000"),
//	)
//
//	for _, e := range log.Entries() {
//	    fmt.Println(e.Sequence, e.Category, e.Comment)
//	}
//
// Entries are created unsequenced so that pure computations can return the
// entries they would produce without touching a log; Append assigns the
// monotonically increasing sequence numbers.
//
// # Concurrency
//
// A Log has a single producer and no internal locking. Concurrent sessions
// each require their own Log instance.
package gcode
