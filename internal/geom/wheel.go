package geom

import (
	"math"

	"github.com/irfansharif/tinted/internal/hue"
)

// The wheel lives in an SVG-style square of side 2*radius: the origin is the
// top-left corner and y grows downwards. Centered coordinates put the origin
// at the wheel's center with y growing upwards, so polar angles read
// counter-clockwise.

// SVGToCentered converts an SVG-space point into centered Cartesian space.
func SVGToCentered(p Point, radius float64) Point {
	return Point{X: p.X - radius, Y: radius - p.Y}
}

// CenteredToSVG is the inverse of SVGToCentered.
func CenteredToSVG(p Point, radius float64) Point {
	return Point{X: p.X + radius, Y: radius - p.Y}
}

// ClampToCircle returns the closest point to p (SVG space) that lies within
// the wheel.
func ClampToCircle(p Point, radius float64) Point {
	c := SVGToCentered(p, radius)
	if c.Norm() <= radius {
		return p
	}
	theta := math.Atan2(c.Y, c.X)
	edge := Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	return CenteredToSVG(edge, radius)
}

// HSToSVG returns the SVG position of a color with the given scientific hue
// and saturation. The artistic hue is the polar angle, saturation the
// fraction of the radius.
func HSToSVG(h, s, radius float64) Point {
	return CenteredToSVG(Polar(hue.ToArtistic(h), radius*s), radius)
}

// SVGToHS is the inverse of HSToSVG. Points outside the wheel report a
// saturation of 1.
func SVGToHS(p Point, radius float64) (h, s float64) {
	c := SVGToCentered(p, radius)
	h = hue.ToScientific(PointerAngle(p, radius))
	s = math.Min(c.Norm()/radius, 1)
	return h, s
}

// PointerAngle returns the artistic angle, in [0,360), of an SVG point
// relative to the wheel's center.
func PointerAngle(p Point, radius float64) float64 {
	c := SVGToCentered(p, radius)
	deg := math.Atan2(c.Y, c.X) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
