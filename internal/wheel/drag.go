package wheel

import (
	"github.com/irfansharif/tinted/internal/event"
	"github.com/irfansharif/tinted/internal/geom"
	"github.com/irfansharif/tinted/internal/harmony"
	"github.com/irfansharif/tinted/internal/hue"
)

// A drag is three kinds of calls from the host: DragStart when the pointer
// goes down on a marker, DragMove for every pointer move, and DragEnd when
// the pointer is released. Positions are in SVG space.

// DragStart captures every visible marker's hue as the reference for the
// moves that follow.
func (w *Wheel) DragStart() {
	w.markers.BeginDrag()
	w.dragging = true
	w.logger.Printf("drag start (mode=%s)", w.mode)
}

// DragMove moves the marker at collection index idx to the pointer and
// brings its peers along according to the current mode. Moves outside a
// drag, or on hidden or unknown markers, are ignored.
func (w *Wheel) DragMove(p geom.Point, idx int) {
	if !w.dragging {
		return
	}
	target, ok := w.markers.VisibleIndexOf(idx)
	if !ok {
		return
	}
	radius := w.cfg.Radius
	m := w.markers.At(idx)

	m.Hue, m.Saturation = geom.SVGToHS(geom.ClampToCircle(p, radius), radius)
	if m.StartingHue != nil {
		start := hue.ToArtistic(*m.StartingHue)
		theta := hue.ShortestDelta(start, geom.PointerAngle(p, radius))
		harmony.Drag(w.mode, w.markers, target, theta)
	}

	w.bus.Announce(event.MarkersUpdated, w.markers.Snapshot())
}

// DragEnd finishes the drag. In analogous mode the spacing between markers
// is recalibrated from the root and its neighbor, so that later harmony
// computations keep the spacing the user dragged to.
func (w *Wheel) DragEnd() {
	if !w.dragging {
		return
	}
	if w.mode == harmony.Analogous {
		w.slice = harmony.RecalibrateSlice(w.markers, w.slice)
	}
	w.markers.EndDrag()
	w.dragging = false
	w.logger.Printf("drag end (slice=%.2f)", w.slice)

	w.bus.Announce(event.UpdateFinished, nil)
}

// Dragging reports whether a drag is in progress.
func (w *Wheel) Dragging() bool { return w.dragging }
