package machine

import "math"

// Unit conversion constants. The engine works in millimeters and meters per
// second; the reference charts publish surface feet per minute and inches
// per minute.
const (
	// MMPerInch converts inches to millimeters.
	MMPerInch = 25.4

	// SFMPerMeterSecond converts meters per second to surface feet per minute.
	SFMPerMeterSecond = 196.85

	// mmPerMinutePerMeterSecond converts a surface speed in m/s to the
	// mm/min used against a tool circumference in millimeters.
	mmPerMinutePerMeterSecond = 60000.0
)

// rpmFromSurface converts a surface speed (m/s) to spindle RPM for a tool
// diameter in millimeters.
func rpmFromSurface(surface, diameter float64) float64 {
	return surface * mmPerMinutePerMeterSecond / math.Pi / diameter
}

// surfaceFromRPM converts spindle RPM to a surface speed (m/s) for a tool
// diameter in millimeters.
func surfaceFromRPM(rpm, diameter float64) float64 {
	return rpm * math.Pi * diameter / mmPerMinutePerMeterSecond
}

// round4 rounds to the 4-decimal tolerance used when deciding whether two
// mutually-derived quantities have drifted apart.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
