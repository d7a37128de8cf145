// Package harmony computes the derived colors of a wheel.
//
// Given the markers of a wheel (in collection order) and a mode, the engine
// assigns every visible marker a hue, saturation and value relative to the
// root marker, the first visible one. Hue offsets are applied in artistic
// space and converted back to scientific hue before being stored.
//
// During a drag the engine works incrementally instead: every marker's hue
// is rotated from the hue it had when the drag started, so peers follow the
// dragged marker without accumulating error across pointer events.
package harmony

import (
	"math"
	"math/rand"

	"github.com/irfansharif/tinted/internal/hue"
	"github.com/irfansharif/tinted/internal/marker"
)

// saturationStep is how much each further lap around a repeating cycle
// (complementary, triad, tetrad) desaturates its markers.
const saturationStep = 0.08

// Distance maps a visible-marker index to its signed distance from the root:
// 0, 1, -1, 2, -2, 3, -3, ...
func Distance(i int) int {
	d := (i + 1) / 2
	if i%2 == 0 {
		return -d
	}
	return d
}

// Step returns the staircase function i -> floor(i/base).
func Step(base int) func(int) int {
	return func(i int) int { return i / base }
}

// SwatchOrder is the presentation order of the i'th visible marker in a
// palette strip.
func SwatchOrder(mode Mode, i int) int {
	if mode == Triad {
		return i % 3
	}
	return Distance(i)
}

// Compute assigns harmony colors to every visible marker. slice is the
// analogous spacing in artistic degrees; rng supplies the randomness for
// monochromatic and shades, which deliberately differ between calls. It
// returns false, touching nothing, if no marker is visible.
func Compute(mode Mode, markers *marker.Collection, slice float64, rng *rand.Rand) bool {
	root := markers.Root()
	if root == nil {
		return false
	}
	rootHue := hue.ToArtistic(root.Hue)

	set := func(m *marker.Marker, artistic, s, v float64) {
		m.Hue = hue.ToScientific(hue.Normalize(artistic))
		m.Saturation = s
		m.Value = v
	}
	cycle := func(laps int, span float64) {
		step := Step(laps)
		for i, m := range markers.Visible() {
			set(m, rootHue+float64(i%laps)*span, 1-saturationStep*float64(step(i)), 1)
		}
	}

	switch mode {
	case Analogous:
		for i, m := range markers.Visible() {
			set(m, rootHue+float64(Distance(i))*slice, 1, 1)
		}
	case Monochromatic:
		for i, m := range markers.Visible() {
			s := 1 - (0.15*float64(i) + rng.Float64()*0.1)
			set(m, rootHue, math.Max(0, s), 0.75+rng.Float64()*0.25)
		}
	case Shades:
		for _, m := range markers.Visible() {
			set(m, rootHue, 1, 0.25+rng.Float64()*0.75)
		}
	case Complementary:
		cycle(2, 180)
	case Triad:
		cycle(3, 120)
	case Tetrad:
		cycle(4, 90)
	case Custom:
	}
	return true
}

// Drag rotates the visible markers by theta artistic degrees relative to
// their starting hues. target is the dragged marker's position among visible
// markers; its own hue and saturation have already been set from the pointer.
// Markers without a starting hue are left alone.
func Drag(mode Mode, markers *marker.Collection, target int, theta float64) {
	rotate := func(m *marker.Marker, delta float64) {
		if m.StartingHue == nil {
			return
		}
		start := hue.ToArtistic(*m.StartingHue)
		m.Hue = hue.ToScientific(hue.Normalize(start + delta))
	}

	switch mode {
	case Analogous:
		targetDistance := Distance(target)
		for i, m := range markers.Visible() {
			if i == target {
				continue
			}
			ratio := 1.0
			if targetDistance != 0 {
				ratio = float64(Distance(i)) / float64(targetDistance)
			}
			rotate(m, ratio*theta)
		}
	case Monochromatic, Complementary, Shades, Triad, Tetrad:
		for _, m := range markers.Visible() {
			if mode == Shades {
				m.Saturation = 1
			}
			rotate(m, theta)
		}
	case Custom:
	}
}

// RecalibrateSlice returns the analogous spacing implied by the current hues
// of the root and the next visible marker, or slice if there is no such
// neighbor.
func RecalibrateSlice(markers *marker.Collection, slice float64) float64 {
	var pair []*marker.Marker
	for _, m := range markers.Visible() {
		pair = append(pair, m)
		if len(pair) == 2 {
			break
		}
	}
	if len(pair) < 2 {
		return slice
	}
	root := hue.ToArtistic(pair[0].Hue)
	neighbor := hue.ToArtistic(pair[1].Hue)
	return math.Mod(360+neighbor-root, 360)
}
