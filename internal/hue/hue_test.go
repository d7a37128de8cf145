package hue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestAnchorsMapExactly(t *testing.T) {
	for i := range artisticAnchors {
		a, s := artisticAnchors[i], scientificAnchors[i]
		if a == 360 {
			continue // outside the input domain
		}
		assert.InDelta(t, s, ToScientific(a), eps, "artistic anchor %v", a)
		assert.InDelta(t, a, ToArtistic(s), eps, "scientific anchor %v", s)
	}
}

func TestSegmentInterpolation(t *testing.T) {
	tests := []struct {
		name       string
		artistic   float64
		scientific float64
	}{
		{name: "first segment midpoint", artistic: 30, scientific: 17.5},
		{name: "red-orange segment", artistic: 91, scientific: 47.5},
		{name: "yellow-green segment", artistic: 143.5, scientific: 90},
		{name: "blue segment", artistic: 246.5, scientific: 210},
		{name: "last segment", artistic: 345, scientific: 330},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.scientific, ToScientific(tt.artistic), eps)
			assert.InDelta(t, tt.artistic, ToArtistic(tt.scientific), eps)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 0.25 {
		assert.InDelta(t, h, ToArtistic(ToScientific(h)), eps, "artistic %v", h)
		assert.InDelta(t, h, ToScientific(ToArtistic(h)), eps, "scientific %v", h)
	}
}

func TestMonotonic(t *testing.T) {
	prevS, prevA := -1.0, -1.0
	for h := 0.0; h < 360; h += 0.5 {
		s, a := ToScientific(h), ToArtistic(h)
		assert.Greater(t, s, prevS)
		assert.Greater(t, a, prevA)
		prevS, prevA = s, a
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-20, 340},
		{-350, 10},
		{380, 20},
		{725, 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Normalize(tt.in), eps, "Normalize(%v)", tt.in)
	}
}

func TestShortestDelta(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{10, 20, 10},
		{20, 10, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{90, 90, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ShortestDelta(tt.from, tt.to), eps, "ShortestDelta(%v, %v)", tt.from, tt.to)
	}
}
