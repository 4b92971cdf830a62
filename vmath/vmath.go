package vmath

import "math"

// Epsilon is the smallest magnitude treated as non-zero by direction helpers
const Epsilon = 1e-9

// TwoPi is one full revolution in radians
const TwoPi = 2 * math.Pi

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapAngle folds an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}
