// Package palette turns wheel markers into displayable colors. It parses seed
// colors, formats marker colors as HEX/RGB/HSL/HSV strings and produces the
// RGBA values the renderer paints with.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/irfansharif/tinted/internal/hue"
	"github.com/irfansharif/tinted/internal/marker"
)

// Format selects the textual representation used by Export.
type Format int

const (
	HEX Format = iota // #rrggbb
	RGB               // rgb(255, 0, 0)
	HSL               // hsl(0, 100%, 50%)
	HSV               // hsv(0, 100%, 100%)
)

func (f Format) String() string {
	switch f {
	case HEX:
		return "hex"
	case RGB:
		return "rgb"
	case HSL:
		return "hsl"
	case HSV:
		return "hsv"
	default:
		return "unknown"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseColor accepts a CSS/SVG color name ("red"), a hex string ("#f00",
// "#ff0000") or comma-separated HSV components ("h,s,v" with h in degrees,
// s and v in [0,1]).
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		col, _ := colorful.MakeColor(c)
		return col, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return c, nil
	}
	if parts := strings.Split(s, ","); len(parts) == 3 {
		var hsv [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return colorful.Color{}, fmt.Errorf("invalid hsv color %q: %w", s, err)
			}
			hsv[i] = v
		}
		return colorful.Hsv(hue.Normalize(hsv[0]), clamp(hsv[1], 0, 1), clamp(hsv[2], 0, 1)), nil
	}
	return colorful.Color{}, fmt.Errorf("invalid color format: %s", s)
}

// FormatColor renders c in the given format.
func FormatColor(c colorful.Color, f Format) string {
	c = c.Clamped()
	pct := func(v float64) int { return int(math.Round(v * 100)) }
	deg := func(h float64) int { return int(math.Round(h)) % 360 }

	switch f {
	case RGB:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case HSL:
		h, s, l := c.Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", deg(h), pct(s), pct(l))
	case HSV:
		h, s, v := c.Hsv()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)", deg(h), pct(s), pct(v))
	default:
		return c.Hex()
	}
}

// Export formats the visible markers' colors, sorted by ascending hue.
func Export(markers []marker.Marker, f Format) []string {
	visible := make([]marker.Marker, 0, len(markers))
	for _, m := range markers {
		if m.Visible {
			visible = append(visible, m)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Hue < visible[j].Hue })

	out := make([]string, len(visible))
	for i, m := range visible {
		out[i] = FormatColor(colorful.Hsv(m.Hue, m.Saturation, m.Value), f)
	}
	return out
}

// hsv converts HSV components to an opaque RGBA using go-colorful.
func hsv(h, s, v float64) color.RGBA {
	c := colorful.Hsv(hue.Normalize(h), clamp(s, 0, 1), clamp(v, 0, 1))
	red, green, blue := c.Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Swatch returns the color a marker is painted with.
func Swatch(m marker.Marker) color.RGBA {
	return hsv(m.Hue, m.Saturation, m.Value)
}

// Fill returns a marker's color at full brightness, as drawn on the wheel
// (the wheel itself only shows hue and saturation).
func Fill(m marker.Marker) color.RGBA {
	return hsv(m.Hue, m.Saturation, 1)
}

// WheelColor returns the wheel's color at the given artistic angle and
// saturation.
func WheelColor(artistic, s float64) color.RGBA {
	return hsv(hue.ToScientific(hue.Normalize(artistic)), s, 1)
}
