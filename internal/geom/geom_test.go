package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertPointInDelta(t *testing.T, want, got Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

func TestAffineInverse(t *testing.T) {
	tr := MakeAffine(2, 0.5, 10, -1, 3, -4)
	inv, err := tr.Inv()
	require.NoError(t, err)

	p := MakePoint(7, -3)
	assertPointInDelta(t, p, inv.MulPoint(tr.MulPoint(p)))
	assertPointInDelta(t, p, tr.Mul(inv).MulPoint(p))

	_, err = MakeAffine(1, 2, 0, 2, 4, 0).Inv()
	require.Error(t, err)
}

func TestFillBox(t *testing.T) {
	// A 250x250 wheel viewBox fit into a 1000x500 window is scaled by 2 and
	// centered horizontally.
	tr, err := FillBox(MakeBox(-12.5, -12.5, 250, 250), MakeBox(0, 0, 1000, 500))
	require.NoError(t, err)
	assertPointInDelta(t, MakePoint(500, 250), tr.MulPoint(MakePoint(112.5, 112.5)))
	assertPointInDelta(t, MakePoint(250, 0), tr.MulPoint(MakePoint(-12.5, -12.5)))

	_, err = FillBox(MakeBox(0, 0, 0, 10), MakeBox(0, 0, 10, 10))
	require.Error(t, err)
}

func TestCenteredRoundTrip(t *testing.T) {
	const radius = 100
	for x := 0.0; x <= 200; x += 12.5 {
		for y := 0.0; y <= 200; y += 12.5 {
			p := MakePoint(x, y)
			assert.Equal(t, p, CenteredToSVG(SVGToCentered(p, radius), radius))
			assert.Equal(t, p, SVGToCentered(CenteredToSVG(p, radius), radius))
		}
	}
	assert.Equal(t, MakePoint(0, 0), SVGToCentered(MakePoint(100, 100), radius))
	assert.Equal(t, MakePoint(100, 100), SVGToCentered(MakePoint(200, 0), radius))
}

func TestClampToCircle(t *testing.T) {
	const radius = 100

	t.Run("inside is unchanged", func(t *testing.T) {
		for _, p := range []Point{{100, 100}, {150, 50}, {100, 0}, {30, 120}} {
			assert.Equal(t, p, ClampToCircle(p, radius))
		}
	})

	t.Run("outside lands on the boundary", func(t *testing.T) {
		for _, p := range []Point{{300, 100}, {-50, -50}, {100, 400}, {250, 10}} {
			got := ClampToCircle(p, radius)
			assert.InDelta(t, radius, SVGToCentered(got, radius).Norm(), eps)

			// Same direction from the center.
			c, g := SVGToCentered(p, radius), SVGToCentered(got, radius)
			assert.InDelta(t, math.Atan2(c.Y, c.X), math.Atan2(g.Y, g.X), eps)

			// Idempotent.
			assertPointInDelta(t, got, ClampToCircle(got, radius))
		}
	})
}

func TestHSRoundTrip(t *testing.T) {
	const radius = 100
	for h := 0.0; h < 360; h += 7.5 {
		for _, s := range []float64{0.05, 0.25, 0.5, 0.99, 1} {
			p := HSToSVG(h, s, radius)
			gotH, gotS := SVGToHS(p, radius)
			assert.InDelta(t, h, gotH, 1e-7, "hue %v sat %v", h, s)
			assert.InDelta(t, s, gotS, eps, "hue %v sat %v", h, s)
			assertPointInDelta(t, p, HSToSVG(gotH, gotS, radius))
		}
	}
}

func TestHSToSVGAxes(t *testing.T) {
	const radius = 100
	// Scientific 0 (red) sits at artistic 0, the right-hand edge.
	assertPointInDelta(t, MakePoint(200, 100), HSToSVG(0, 1, radius))
	// Scientific 120 (green) sits at artistic 165.
	p := HSToSVG(120, 0.5, radius)
	assert.InDelta(t, 165, PointerAngle(p, radius), eps)
	// Zero saturation is the center regardless of hue.
	assertPointInDelta(t, MakePoint(100, 100), HSToSVG(200, 0, radius))
}

func TestSVGToHSClampsSaturation(t *testing.T) {
	h, s := SVGToHS(MakePoint(100, -500), 100)
	assert.Equal(t, 1.0, s)
	// Straight up is artistic 90, inside the [60,122) segment.
	assert.InDelta(t, 35+30.0*25/62, h, eps)
}
