// Package motion dispatches machining operations through an explicit
// registry instead of invoking methods by runtime string name.
//
// The registry preserves the dispatch contract -- operation identifier,
// positional parameter list, log entries produced -- while leaving the
// geometry of each operation to the registered implementation. Consumers
// register their operation implementations at startup:
//
//	reg := motion.NewRegistry()
//	if err := reg.Register(boltCircle); err != nil {
//	    return err
//	}
//
//	entries, err := reg.Dispatch(motion.KindBoltCircle, st, []any{4, 25.0, -3.0})
//
// Dispatch validates the argument count against the operation's declared
// parameters before running it and appends the produced entries to the
// session log.
package motion
