package math

import "github.com/chewxy/math32"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
