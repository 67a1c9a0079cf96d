package camera

import "math"

// DampenFactor returns the fraction of the remaining distance to cover this
// frame when approaching a target at the given rate (per second).
// The result is frame-rate independent: two steps of dt cover the same
// distance as one step of 2*dt. A negative rate snaps instantly.
func DampenFactor(rate, dt float32) float32 {
	if rate < 0 {
		return 1
	}
	return 1 - float32(math.Exp(-float64(rate)*float64(dt)))
}

// lerp interpolates from a to b by t without clamping t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// clamp01 restricts x to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
