package tts

import "math"

// SafetyDuration substitutes for a synthesized asset that reports an invalid
// length, so one bad probe never stalls or corrupts segment timing.
const SafetyDuration = 1.5

// ClampDuration returns d unchanged when it is a positive real number and the
// safety duration otherwise.
func ClampDuration(d float64) float64 {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return SafetyDuration
	}
	return d
}
