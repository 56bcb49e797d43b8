// Package speeds resolves nominal surface speed and spindle speed for a
// (material, tool type, diameter) triple from an injected reference table.
//
// # Overview
//
// The reference table maps material and tool type to a surface-speed scalar
// and a set of spindle-speed samples keyed by diameter. Diameters present
// in the table resolve to the stored value exactly; diameters between two
// samples are linearly interpolated; diameters outside the sampled range
// fail with an OUT_OF_RANGE error advising that the table be extended or a
// manual override used.
//
// # Usage
//
//	r := speeds.New(table)
//	res, err := r.Resolve("Aluminum", "End Mill", 0.1875)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.SurfaceSpeed, res.RPM, res.Interpolated)
//
// The resolver is pure: it never mutates the table, caches nothing, and
// performs no I/O. Table loading belongs to the tables package.
//
// # Observability
//
// Prometheus metrics:
//   - millwright_resolve_duration_seconds: resolution latency
//   - millwright_resolve_total: resolutions by outcome (exact, interpolated, failure)
package speeds
