package speeds

import (
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/millworks/millwright/pkg/errors"
)

// Resolver maps (material, tool type, diameter) to a surface-speed and
// spindle-speed pair from an injected reference table. It is pure and
// side-effect-free; the table is owned by the caller.
type Resolver struct {
	table Table
}

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// New creates a Resolver over the given reference table.
func New(table Table, opts ...Option) *Resolver {
	r := &Resolver{table: table}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the surface speed and spindle speed for the given
// material, tool type, and diameter. Exact diameter keys return the stored
// value unmodified; other diameters within the table range are linearly
// interpolated between the bracketing pair.
func (r *Resolver) Resolve(material, toolType string, diameter float64) (*Result, error) {
	start := time.Now()
	defer func() {
		resolveDuration.Observe(time.Since(start).Seconds())
	}()

	if diameter <= 0 {
		resolveTotal.WithLabelValues(outcomeFailure).Inc()
		return nil, errors.Newf(errors.ErrCodeInvalidRequest,
			"diameter must be positive, got %v", diameter)
	}

	tools, ok := r.table[material]
	if !ok {
		resolveTotal.WithLabelValues(outcomeFailure).Inc()
		return nil, errors.Newf(errors.ErrCodeNotFound, "material %q not in speed table", material)
	}

	entry, ok := tools[toolType]
	if !ok {
		resolveTotal.WithLabelValues(outcomeFailure).Inc()
		return nil, errors.Newf(errors.ErrCodeNotFound,
			"tool type %q not in speed table for material %q", toolType, material)
	}

	points, err := entry.points()
	if err != nil {
		resolveTotal.WithLabelValues(outcomeFailure).Inc()
		return nil, err
	}

	// Exact match on a stored diameter returns the table value as-is.
	for _, p := range points {
		if p.diameter == diameter {
			resolveTotal.WithLabelValues(outcomeExact).Inc()
			return &Result{SurfaceSpeed: entry.SurfaceSpeed, RPM: p.rpm}, nil
		}
	}

	rpm, ok := interpolate(points, diameter)
	if !ok {
		resolveTotal.WithLabelValues(outcomeFailure).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeOutOfRange,
			"diameter outside interpolation range; extend the speed table or use a manual override",
			map[string]any{
				"material": material,
				"tool":     toolType,
				"diameter": diameter,
			})
	}

	slog.Debug("interpolated spindle speed",
		"material", material,
		"tool", toolType,
		"diameter", diameter,
		"rpm", rpm,
	)

	resolveTotal.WithLabelValues(outcomeInterpolated).Inc()
	return &Result{SurfaceSpeed: entry.SurfaceSpeed, RPM: rpm, Interpolated: true}, nil
}

// point is one parsed (diameter, rpm) table sample.
type point struct {
	diameter float64
	rpm      float64
}

// points parses and ascending-sorts the entry's diameter keys.
func (e Entry) points() ([]point, error) {
	if len(e.RPMByDiameter) == 0 {
		return nil, errors.New(errors.ErrCodeDataFormat, "entry has no spindle-speed samples")
	}

	out := make([]point, 0, len(e.RPMByDiameter))
	for key, rpm := range e.RPMByDiameter {
		d, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataFormat,
				"spindle-speed table has non-numeric diameter key "+strconv.Quote(key), err)
		}
		out = append(out, point{diameter: d, rpm: rpm})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].diameter < out[j].diameter })
	return out, nil
}

// interpolate linearly interpolates rpm at diameter d between the bracketing
// pair of samples. Returns false when d lies outside the sampled range.
func interpolate(points []point, d float64) (float64, bool) {
	for i := 0; i < len(points)-1; i++ {
		d1, d2 := points[i].diameter, points[i+1].diameter
		if d1 <= d && d <= d2 {
			r1, r2 := points[i].rpm, points[i+1].rpm
			return r1 + (r2-r1)*(d-d1)/(d2-d1), true
		}
	}
	return 0, false
}
