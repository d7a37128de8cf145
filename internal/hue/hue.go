// Package hue converts between the two hue spaces used by the wheel.
//
// Scientific hue is the uniform 0-360 HSV hue used for storage and all color
// math. Artistic hue follows the visual spacing of a painter's (RYB-like)
// color wheel, and is what the wheel uses as its polar angle and for harmony
// offsets. The two are related by a monotonic piecewise-linear bijection over
// shared anchor points.
package hue

import "math"

var (
	artisticAnchors   = [...]float64{0, 60, 122, 165, 218, 275, 330, 360}
	scientificAnchors = [...]float64{0, 35, 60, 120, 180, 240, 300, 360}
)

// ToScientific maps an artistic hue in [0,360) to scientific hue.
func ToScientific(h float64) float64 {
	return mapAnchors(h, artisticAnchors[:], scientificAnchors[:])
}

// ToArtistic maps a scientific hue in [0,360) to artistic hue.
func ToArtistic(h float64) float64 {
	return mapAnchors(h, scientificAnchors[:], artisticAnchors[:])
}

// mapAnchors finds the segment of from containing h and interpolates into the
// matching segment of to. Values past the last anchor extrapolate along the
// final segment.
func mapAnchors(h float64, from, to []float64) float64 {
	i := 1
	for i < len(from)-1 && h >= from[i] {
		i++
	}
	return mapRange(h, from[i-1], from[i], to[i-1], to[i])
}

// mapRange maps v from [fromLo, fromHi] onto [toLo, toHi].
func mapRange(v, fromLo, fromHi, toLo, toHi float64) float64 {
	return toLo + (v-fromLo)*(toHi-toLo)/(fromHi-fromLo)
}

// Normalize folds an angle into [0,360). Inputs are expected to be within
// (-720, +inf), which covers every offset the harmony engine produces.
func Normalize(deg float64) float64 {
	n := math.Mod(deg+720, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// ShortestDelta returns the signed rotation in degrees, within (-180, 180],
// that takes from to to.
func ShortestDelta(from, to float64) float64 {
	back := Normalize(360 + from - to)
	fwd := Normalize(360 + to - from)
	if back < fwd {
		return -back
	}
	return fwd
}
