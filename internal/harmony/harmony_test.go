package harmony

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/tinted/internal/hue"
	"github.com/irfansharif/tinted/internal/marker"
)

const eps = 1e-9

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

// collection returns n visible markers all at the given scientific hue.
func collection(n int, h float64) *marker.Collection {
	markers := make([]*marker.Marker, n)
	for i := range markers {
		markers[i] = marker.New(h, 0.5, 0.5)
	}
	return marker.NewCollection(markers)
}

func artisticHues(c *marker.Collection) []float64 {
	var out []float64
	for _, m := range c.Visible() {
		out = append(out, hue.ToArtistic(m.Hue))
	}
	return out
}

// assertAngle compares angles modulo 360.
func assertAngle(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, 0, hue.ShortestDelta(want, got), 1e-7, msgAndArgs...)
}

func TestDistance(t *testing.T) {
	var got []int
	for i := 0; i <= 6; i++ {
		got = append(got, Distance(i))
	}
	assert.Equal(t, []int{0, 1, -1, 2, -2, 3, -3}, got)
}

func TestStep(t *testing.T) {
	step := Step(3)
	var got []int
	for i := 0; i <= 6; i++ {
		got = append(got, step(i))
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2}, got)
	assert.Equal(t, 2, Step(2)(5))
}

func TestSwatchOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 0}, []int{
		SwatchOrder(Triad, 0), SwatchOrder(Triad, 1), SwatchOrder(Triad, 2), SwatchOrder(Triad, 3),
	})
	assert.Equal(t, []int{0, 1, -1}, []int{
		SwatchOrder(Analogous, 0), SwatchOrder(Analogous, 1), SwatchOrder(Analogous, 2),
	})
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("not-a-real-mode")
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Contains(t, err.Error(), "not-a-real-mode")

	assert.ErrorIs(t, Mode("").Validate(), ErrInvalidMode)
	assert.Len(t, Modes(), 7)
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, Analogous, Custom.Next())
	assert.Equal(t, Custom, Shades.Next())
	assert.Equal(t, Custom, Mode("bogus").Next())
}

func TestComputeAnalogous(t *testing.T) {
	const root = 200.0 // scientific
	c := collection(3, root)
	require.True(t, Compute(Analogous, c, 20, newRand()))

	rootArtistic := hue.ToArtistic(root)
	got := artisticHues(c)
	require.Len(t, got, 3)
	assertAngle(t, rootArtistic, got[0])
	assertAngle(t, rootArtistic+20, got[1])
	assertAngle(t, rootArtistic-20, got[2])
	for _, m := range c.All() {
		assert.Equal(t, 1.0, m.Saturation)
		assert.Equal(t, 1.0, m.Value)
	}
	// The root keeps its hue.
	assert.InDelta(t, root, c.At(0).Hue, 1e-7)
}

func TestComputeAnalogousWrapsAroundZero(t *testing.T) {
	c := collection(5, 0)
	Compute(Analogous, c, 30, newRand())
	got := artisticHues(c)
	assertAngle(t, 0, got[0])
	assertAngle(t, 30, got[1])
	assertAngle(t, 330, got[2])
	assertAngle(t, 60, got[3])
	assertAngle(t, 300, got[4])
	for _, m := range c.All() {
		assert.GreaterOrEqual(t, m.Hue, 0.0)
		assert.Less(t, m.Hue, 360.0)
	}
}

func TestComputeCycles(t *testing.T) {
	tests := []struct {
		mode    Mode
		n       int
		offsets []float64
		sats    []float64
	}{
		{
			mode:    Triad,
			n:       4,
			offsets: []float64{0, 120, 240, 0},
			sats:    []float64{1, 1, 1, 1 - 0.08},
		},
		{
			mode:    Complementary,
			n:       5,
			offsets: []float64{0, 180, 0, 180, 0},
			sats:    []float64{1, 1, 0.92, 0.92, 0.84},
		},
		{
			mode:    Tetrad,
			n:       5,
			offsets: []float64{0, 90, 180, 270, 0},
			sats:    []float64{1, 1, 1, 1, 0.92},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			c := collection(tt.n, 0)
			require.True(t, Compute(tt.mode, c, 20, newRand()))
			got := artisticHues(c)
			for i, m := range c.All() {
				assertAngle(t, tt.offsets[i], got[i], "marker %d", i)
				assert.InDelta(t, tt.sats[i], m.Saturation, eps, "marker %d", i)
				assert.Equal(t, 1.0, m.Value)
			}
		})
	}
}

func TestComputeTriadStoresScientificHue(t *testing.T) {
	c := collection(3, 0)
	Compute(Triad, c, 20, newRand())
	// Artistic 120 and 240 converted back through the anchor table.
	assert.InDelta(t, 35+60.0*25/62, c.At(1).Hue, eps)
	assert.InDelta(t, 180+22.0*60/57, c.At(2).Hue, eps)
}

func TestComputeMonochromatic(t *testing.T) {
	c := collection(5, 100)
	Compute(Monochromatic, c, 20, newRand())
	for i, m := range c.All() {
		assert.InDelta(t, 100, m.Hue, 1e-7)
		lo, hi := 1-(0.15*float64(i)+0.1), 1-0.15*float64(i)
		assert.GreaterOrEqual(t, m.Saturation, lo)
		assert.LessOrEqual(t, m.Saturation, hi)
		assert.GreaterOrEqual(t, m.Value, 0.75)
		assert.LessOrEqual(t, m.Value, 1.0)
	}

	// Long runs never go below zero saturation.
	long := collection(12, 100)
	Compute(Monochromatic, long, 20, newRand())
	for _, m := range long.All() {
		assert.GreaterOrEqual(t, m.Saturation, 0.0)
	}
}

func TestComputeShades(t *testing.T) {
	c := collection(4, 250)
	Compute(Shades, c, 20, newRand())
	for _, m := range c.All() {
		assert.InDelta(t, 250, m.Hue, 1e-7)
		assert.Equal(t, 1.0, m.Saturation)
		assert.GreaterOrEqual(t, m.Value, 0.25)
		assert.LessOrEqual(t, m.Value, 1.0)
	}
}

func TestComputeRandomModesAreNotIdempotent(t *testing.T) {
	rng := newRand()
	for _, mode := range []Mode{Monochromatic, Shades} {
		c := collection(5, 40)
		Compute(mode, c, 20, rng)
		first := c.Snapshot()
		Compute(mode, c, 20, rng)
		second := c.Snapshot()
		assert.NotEqual(t, first, second, "mode %s", mode)
	}
}

func TestComputeCustomLeavesMarkersAlone(t *testing.T) {
	c := marker.NewCollection([]*marker.Marker{marker.New(10, 0.3, 0.4), marker.New(200, 0.6, 0.7)})
	before := c.Snapshot()
	require.True(t, Compute(Custom, c, 20, newRand()))
	assert.Equal(t, before, c.Snapshot())
}

func TestComputeNoVisibleMarkers(t *testing.T) {
	c := collection(3, 50)
	for i := 0; i < c.Len(); i++ {
		c.SetVisible(i, false)
	}
	before := c.Snapshot()
	assert.False(t, Compute(Analogous, c, 20, newRand()))
	assert.Equal(t, before, c.Snapshot())

	assert.False(t, Compute(Triad, marker.NewCollection(nil), 20, newRand()))
}

func TestComputeSkipsHiddenMarkers(t *testing.T) {
	c := collection(4, 0)
	c.SetVisible(0, false)
	c.SetVisible(2, false)
	c.At(1).Hue = 120 // becomes the root
	hiddenBefore := *c.At(2)

	Compute(Complementary, c, 20, newRand())
	assert.InDelta(t, 120, c.At(1).Hue, 1e-7)
	assertAngle(t, hue.ToArtistic(120)+180, hue.ToArtistic(c.At(3).Hue))
	assert.Equal(t, hiddenBefore.Hue, c.At(2).Hue)
	assert.Equal(t, hiddenBefore.Saturation, c.At(2).Saturation)
}

func TestDragAnalogousFromRoot(t *testing.T) {
	c := collection(5, 0)
	Compute(Analogous, c, 20, newRand())
	c.BeginDrag()
	start := artisticHues(c)

	// Mutate current hues to prove the update is relative to the starting
	// hue and not the current one.
	for _, m := range c.All()[1:] {
		m.Hue = 333
	}

	Drag(Analogous, c, 0, 10)
	got := artisticHues(c)
	for i := 1; i < 5; i++ {
		// Root distance is zero so every peer moves by theta.
		assertAngle(t, start[i]+10, got[i], "marker %d", i)
	}
}

func TestDragAnalogousScalesByDistance(t *testing.T) {
	c := collection(5, 0)
	Compute(Analogous, c, 20, newRand())
	c.BeginDrag()
	start := artisticHues(c)

	// Dragging marker 3 (distance 2) by 10 degrees.
	Drag(Analogous, c, 3, 10)
	got := artisticHues(c)
	assertAngle(t, start[0], got[0], "root has distance 0")
	assertAngle(t, start[1]+5, got[1])
	assertAngle(t, start[2]-5, got[2])
	assertAngle(t, start[3], got[3], "target is driven by the caller")
	assertAngle(t, start[4]-10, got[4])
}

func TestDragRotatesEveryMarker(t *testing.T) {
	for _, mode := range []Mode{Monochromatic, Complementary, Triad, Tetrad, Shades} {
		t.Run(string(mode), func(t *testing.T) {
			c := collection(4, 30)
			Compute(mode, c, 20, newRand())
			for _, m := range c.All() {
				m.Saturation = 0.5
			}
			c.BeginDrag()
			start := artisticHues(c)

			Drag(mode, c, 2, -25)
			got := artisticHues(c)
			for i := range got {
				assertAngle(t, start[i]-25, got[i], "marker %d", i)
			}
			for _, m := range c.All() {
				if mode == Shades {
					assert.Equal(t, 1.0, m.Saturation)
				} else {
					assert.Equal(t, 0.5, m.Saturation)
				}
			}
		})
	}
}

func TestDragCustomTouchesNothing(t *testing.T) {
	c := collection(3, 30)
	c.BeginDrag()
	before := c.Snapshot()
	Drag(Custom, c, 1, 40)
	assert.Equal(t, before, c.Snapshot())
}

func TestDragWithoutStartingHue(t *testing.T) {
	c := collection(3, 30)
	before := c.Snapshot()
	Drag(Triad, c, 0, 40)
	assert.Equal(t, before, c.Snapshot())
}

func TestRecalibrateSlice(t *testing.T) {
	c := collection(3, 0)
	c.At(1).Hue = hue.ToScientific(35)
	assert.InDelta(t, 35, RecalibrateSlice(c, 20), 1e-7)

	// Neighbor is by collection order, skipping hidden markers.
	c.SetVisible(1, false)
	c.At(2).Hue = hue.ToScientific(300)
	assert.InDelta(t, 300, RecalibrateSlice(c, 20), 1e-7)

	// A lone marker keeps the old slice.
	c.SetVisible(2, false)
	assert.Equal(t, 20.0, RecalibrateSlice(c, 20))
}

func TestRecalibrateSliceRoundTripsCompute(t *testing.T) {
	c := collection(5, 75)
	Compute(Analogous, c, 42, newRand())
	slice := RecalibrateSlice(c, 20)
	assert.InDelta(t, 42, slice, 1e-7)
}
