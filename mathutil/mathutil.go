// Package mathutil provides small scalar helpers shared by the physics
// and camera code. Pure functions only.
package mathutil

// ClampFloat clamps v to [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves cur toward target by at most maxDelta.
func Approach(cur, target, maxDelta float64) float64 {
	d := target - cur
	if d > maxDelta {
		return cur + maxDelta
	}
	if d < -maxDelta {
		return cur - maxDelta
	}
	return target
}
