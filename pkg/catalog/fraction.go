package catalog

import (
	"fmt"
	"math"
)

// maxDenominator bounds fraction displays to the denominators found on
// fractional tooling: eighths, sixteenths, thirty-seconds, sixty-fourths.
const maxDenominator = 64

// FormatFraction renders a positive decimal diameter as its best rational
// approximation with denominator at most 64. Common binary fractions
// (1/4, 1/8, 1/16, ...) round-trip exactly. Whole values render without a
// denominator.
func FormatFraction(value float64) string {
	num, den := approximate(value)
	if den == 1 {
		return fmt.Sprintf("%d", num)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// approximate returns the reduced best rational approximation of value with
// denominator at most maxDenominator.
func approximate(value float64) (num, den int64) {
	// Binary fractions are exact in float64, so n/64 reduced by gcd
	// reproduces them without approximation error.
	if scaled := value * maxDenominator; scaled == math.Trunc(scaled) {
		n := int64(scaled)
		g := gcd(n, maxDenominator)
		if g == 0 {
			return 0, 1
		}
		return n / g, maxDenominator / g
	}

	// Continued-fraction expansion, stopping at the last convergent whose
	// denominator stays within bound.
	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	x := value
	for {
		a := int64(math.Floor(x))
		q2 := a*q1 + q0
		if q2 > maxDenominator {
			break
		}
		p0, q0, p1, q1 = p1, q1, a*p1+p0, q2

		frac := x - math.Floor(x)
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}

	// The semiconvergent with the largest admissible coefficient can beat
	// the last convergent; pick whichever lands closer.
	if q1 == 0 {
		return p0, q0
	}
	k := (maxDenominator - q0) / q1
	sp, sq := k*p1+p0, k*q1+q0
	if sq > 0 && closer(value, sp, sq, p1, q1) {
		return sp, sq
	}
	return p1, q1
}

// closer reports whether a/b approximates value at least as well as c/d.
func closer(value float64, a, b, c, d int64) bool {
	return math.Abs(value-float64(a)/float64(b)) < math.Abs(value-float64(c)/float64(d))
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
