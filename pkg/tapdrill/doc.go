// Package tapdrill looks up tap and clearance drill sizes for threaded
// holes. The chart maps screw sizes to their pitch, tap drills at 75% and
// 50% thread engagement, and clearance drills by fit.
package tapdrill
