// Package scene builds the triangle geometry of a color wheel: the wheel
// background, its markers and the palette strip. Geometry lives in the
// wheel's SVG space and carries its own colors, ready for upload to the GPU.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/irfansharif/tinted/internal/config"
	"github.com/irfansharif/tinted/internal/geom"
	"github.com/irfansharif/tinted/internal/harmony"
	"github.com/irfansharif/tinted/internal/marker"
	"github.com/irfansharif/tinted/internal/palette"
)

const (
	FloatsPerVertex = 6 // x, y, r, g, b, a

	WheelSectors = 90 // hue resolution of the wheel background
	WheelRings   = 8  // saturation resolution of the wheel background
	discSegments = 32 // polygon approximation of a marker disc

	swatchStripRatio = 0.3 // palette strip height, relative to the radius
)

// Mesh is interleaved triangle vertex data, six floats per vertex.
type Mesh []float32

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int { return len(m) / FloatsPerVertex }

func (m *Mesh) addTriangle(tri [3]geom.Point, c color.RGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for _, p := range tri {
		*m = append(*m, float32(p.X), float32(p.Y), r, g, b, a)
	}
}

// addPolygon triangulates path and appends it in a single color.
func (m *Mesh) addPolygon(path []geom.Point, c color.RGBA) error {
	triangles, err := earClip(path)
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		m.addTriangle(tri, c)
	}
	return nil
}

// circle approximates a circle of radius r around center (SVG space).
func circle(center geom.Point, r float64, segments int) []geom.Point {
	path := make([]geom.Point, segments)
	for i := range path {
		path[i] = center.Add(geom.Polar(360*float64(i)/float64(segments), r))
	}
	return path
}

// SceneBox returns the region the renderer fits into the window: the wheel's
// view box with the palette strip underneath.
func SceneBox(cfg config.Wheel) geom.Box {
	x, y, w, h := cfg.ViewBox()
	return geom.MakeBox(x, y, w, h+swatchStripHeight(cfg))
}

func swatchStripHeight(cfg config.Wheel) float64 { return cfg.Radius * swatchStripRatio }

// swatchStrip is the palette strip's box, just below the wheel's view box.
func swatchStrip(cfg config.Wheel) geom.Box {
	x, y, w, h := cfg.ViewBox()
	return geom.MakeBox(x+cfg.Margin, y+h, w-2*cfg.Margin, swatchStripHeight(cfg)-cfg.Margin/2)
}

// WheelMesh builds the wheel background: sectors of constant hue, split in
// rings of constant saturation. The innermost ring is made of wedges
// meeting at the center.
func WheelMesh(cfg config.Wheel, sectors, rings int) (Mesh, error) {
	if sectors < 3 || rings < 1 {
		return nil, fmt.Errorf("wheel needs at least 3 sectors and 1 ring, got %d and %d", sectors, rings)
	}
	radius := cfg.Radius
	at := func(deg, r float64) geom.Point {
		return geom.CenteredToSVG(geom.Polar(deg, r), radius)
	}

	var mesh Mesh
	for i := 0; i < sectors; i++ {
		a0 := 360 * float64(i) / float64(sectors)
		a1 := 360 * float64(i+1) / float64(sectors)
		for j := 0; j < rings; j++ {
			inner := radius * float64(j) / float64(rings)
			outer := radius * float64(j+1) / float64(rings)
			c := palette.WheelColor((a0+a1)/2, (inner+outer)/2/radius)

			var path []geom.Point
			if j == 0 {
				path = []geom.Point{at(0, 0), at(a0, outer), at(a1, outer)}
			} else {
				path = []geom.Point{at(a0, inner), at(a0, outer), at(a1, outer), at(a1, inner)}
			}
			if err := mesh.addPolygon(path, c); err != nil {
				return nil, fmt.Errorf("sector %d ring %d: %w", i, j, err)
			}
		}
	}
	return mesh, nil
}

// MarkerMesh builds the markers drawn on top of the wheel: for every visible
// marker, a trail from the center and an outlined disc filled with the
// marker's hue and saturation. Hidden markers are not drawn.
func MarkerMesh(cfg config.Wheel, markers []marker.Marker) (Mesh, error) {
	radius := cfg.Radius
	center := geom.MakePoint(radius, radius)
	discRadius := cfg.MarkerWidth / 2

	var mesh Mesh
	for i, m := range markers {
		if !m.Visible {
			continue
		}
		pos := geom.HSToSVG(m.Hue, m.Saturation, radius)

		if trail := pos.Sub(center); trail.Norm() > cfg.MarkerOutlineWidth {
			// Perpendicular to the trail, half a stroke wide.
			n := geom.MakePoint(-trail.Y, trail.X).Scale(cfg.MarkerOutlineWidth / 2 / trail.Norm())
			quad := []geom.Point{center.Add(n), pos.Add(n), pos.Sub(n), center.Sub(n)}
			if err := mesh.addPolygon(quad, colornames.White); err != nil {
				return nil, fmt.Errorf("marker %d trail: %w", i, err)
			}
		}

		outline := circle(pos, discRadius+cfg.MarkerOutlineWidth, discSegments)
		if err := mesh.addPolygon(outline, colornames.White); err != nil {
			return nil, fmt.Errorf("marker %d outline: %w", i, err)
		}
		if err := mesh.addPolygon(circle(pos, discRadius, discSegments), palette.Fill(m)); err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
	}
	return mesh, nil
}

// SwatchMesh builds the palette strip: one rectangle per visible marker,
// painted with its full color including value, left to right in palette
// order for the given mode.
func SwatchMesh(cfg config.Wheel, markers []marker.Marker, mode harmony.Mode) (Mesh, error) {
	type swatch struct {
		order int
		color color.RGBA
	}
	var swatches []swatch
	for _, m := range markers {
		if !m.Visible {
			continue
		}
		swatches = append(swatches, swatch{
			order: harmony.SwatchOrder(mode, len(swatches)),
			color: palette.Swatch(m),
		})
	}
	if len(swatches) == 0 {
		return nil, nil
	}
	sort.SliceStable(swatches, func(i, j int) bool { return swatches[i].order < swatches[j].order })

	strip := swatchStrip(cfg)
	w := strip.W / float64(len(swatches))
	var mesh Mesh
	for i, s := range swatches {
		x0 := strip.X + float64(i)*w
		x1 := math.Min(x0+w, strip.X+strip.W)
		rect := []geom.Point{
			geom.MakePoint(x0, strip.Y),
			geom.MakePoint(x1, strip.Y),
			geom.MakePoint(x1, strip.Y+strip.H),
			geom.MakePoint(x0, strip.Y+strip.H),
		}
		if err := mesh.addPolygon(rect, s.color); err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
	}
	return mesh, nil
}

// ViewTransform maps SVG space onto a window of w x h pixels (y down),
// fitting the scene box centered in the window.
func ViewTransform(cfg config.Wheel, w, h int) (geom.Affine, error) {
	if w <= 0 || h <= 0 {
		return geom.Affine{}, fmt.Errorf("invalid viewport dimensions %dx%d", w, h)
	}
	return geom.FillBox(SceneBox(cfg), geom.MakeBox(0, 0, float64(w), float64(h)))
}
