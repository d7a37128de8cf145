// Package marker holds the ordered set of color handles shown on the wheel.
//
// Order matters: it is the visual order of the markers and the basis for
// every "distance from root" computation. The root is the first visible
// marker.
package marker

import (
	"iter"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCount is the number of markers created when no count is given.
const DefaultCount = 5

// Marker is a single color handle on the wheel.
type Marker struct {
	Hue        float64 // scientific hue in [0,360)
	Saturation float64 // [0,1]
	Value      float64 // [0,1]
	Visible    bool
	Label      string // display name, empty if none

	// StartingHue is the scientific hue captured when a drag starts, nil
	// outside of a drag.
	StartingHue *float64
}

// New returns a visible marker with the given HSV components.
func New(h, s, v float64) *Marker {
	return &Marker{Hue: h, Saturation: s, Value: v, Visible: true}
}

// FromColor returns a visible marker for the given color.
func FromColor(c colorful.Color, label string) *Marker {
	h, s, v := c.Clamped().Hsv()
	m := New(h, s, v)
	m.Label = label
	return m
}

// Color returns the marker's color.
func (m *Marker) Color() colorful.Color {
	return colorful.Hsv(m.Hue, m.Saturation, m.Value)
}

// FromSeed returns n visible markers all sharing the seed color.
func FromSeed(seed colorful.Color, n int) []*Marker {
	markers := make([]*Marker, n)
	for i := range markers {
		markers[i] = FromColor(seed, "")
	}
	return markers
}

// Collection is an ordered list of markers owned by a single wheel.
type Collection struct {
	markers []*Marker
}

// NewCollection returns a collection holding the given markers.
func NewCollection(markers []*Marker) *Collection {
	c := &Collection{}
	c.Rebuild(markers)
	return c
}

// Rebuild replaces the collection's contents.
func (c *Collection) Rebuild(markers []*Marker) {
	c.markers = append([]*Marker(nil), markers...)
}

func (c *Collection) Len() int           { return len(c.markers) }
func (c *Collection) At(i int) *Marker   { return c.markers[i] }
func (c *Collection) All() []*Marker     { return c.markers }
func (c *Collection) InRange(i int) bool { return i >= 0 && i < len(c.markers) }

// RootIndex returns the collection index of the first visible marker.
func (c *Collection) RootIndex() (int, bool) {
	for i, m := range c.markers {
		if m.Visible {
			return i, true
		}
	}
	return -1, false
}

// Root returns the first visible marker, or nil if all are hidden.
func (c *Collection) Root() *Marker {
	if i, ok := c.RootIndex(); ok {
		return c.markers[i]
	}
	return nil
}

// Visible yields visible markers in collection order along with their
// position among visible markers (0 is the root). Each range re-scans the
// live collection.
func (c *Collection) Visible() iter.Seq2[int, *Marker] {
	return func(yield func(int, *Marker) bool) {
		i := 0
		for _, m := range c.markers {
			if !m.Visible {
				continue
			}
			if !yield(i, m) {
				return
			}
			i++
		}
	}
}

// VisibleCount returns the number of visible markers.
func (c *Collection) VisibleCount() int {
	n := 0
	for range c.Visible() {
		n++
	}
	return n
}

// VisibleIndexOf converts a collection index into a position among visible
// markers. Hidden or out-of-range markers report false.
func (c *Collection) VisibleIndexOf(idx int) (int, bool) {
	if !c.InRange(idx) || !c.markers[idx].Visible {
		return -1, false
	}
	n := 0
	for _, m := range c.markers[:idx] {
		if m.Visible {
			n++
		}
	}
	return n, true
}

// SetVisible shows or hides the marker at idx.
func (c *Collection) SetVisible(idx int, visible bool) {
	c.markers[idx].Visible = visible
}

// SetValue sets the brightness of the marker at idx, clamped to [0,1].
func (c *Collection) SetValue(idx int, v float64) {
	c.markers[idx].Value = math.Max(0, math.Min(1, v))
}

// BeginDrag records the current hue of every visible marker as its starting
// hue.
func (c *Collection) BeginDrag() {
	for _, m := range c.Visible() {
		h := m.Hue
		m.StartingHue = &h
	}
}

// EndDrag clears every marker's starting hue.
func (c *Collection) EndDrag() {
	for _, m := range c.markers {
		m.StartingHue = nil
	}
}

// Snapshot returns copies of the markers, safe to hand to listeners.
func (c *Collection) Snapshot() []Marker {
	out := make([]Marker, len(c.markers))
	for i, m := range c.markers {
		out[i] = *m
		out[i].StartingHue = nil
		if m.StartingHue != nil {
			h := *m.StartingHue
			out[i].StartingHue = &h
		}
	}
	return out
}
