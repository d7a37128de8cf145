// Package wheel implements the color wheel widget: it owns the markers,
// keeps them in harmony as the mode changes or markers are dragged, and
// announces every change on its event bus for renderers to pick up.
package wheel

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/tinted/internal/config"
	"github.com/irfansharif/tinted/internal/event"
	"github.com/irfansharif/tinted/internal/geom"
	"github.com/irfansharif/tinted/internal/harmony"
	"github.com/irfansharif/tinted/internal/marker"
	"github.com/irfansharif/tinted/internal/palette"
)

var wheelLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("TINTED_DEBUG_WHEEL") == "1" {
		wheelLogger = log.New(os.Stdout, "[wheel] ", log.Ltime|log.Lmsgprefix)
	}
}

// Wheel is a single color wheel instance. It is not safe for concurrent use;
// all calls are expected from the goroutine driving the host UI.
type Wheel struct {
	cfg     config.Wheel
	seed    colorful.Color
	markers *marker.Collection
	bus     *event.Bus
	mode    harmony.Mode
	slice   float64 // analogous spacing, artistic degrees
	rng     *rand.Rand
	logger  *log.Logger

	dragging bool
	setups   []func(*Wheel)
}

// Option configures a Wheel at construction.
type Option func(*Wheel)

// WithRand sets the source of randomness for the monochromatic and shades
// modes.
func WithRand(rng *rand.Rand) Option {
	return func(w *Wheel) {
		w.rng = rng
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Wheel) {
		w.logger = l
	}
}

// WithSetup registers a callback run once the wheel is constructed, typically
// to subscribe renderers to its events. Setups run in the order given.
func WithSetup(fn func(*Wheel)) Option {
	return func(w *Wheel) {
		w.setups = append(w.setups, fn)
	}
}

// New creates a wheel from cfg. It fails if the configured geometry, mode or
// seed color is invalid. The wheel starts out empty; call BindData to create
// markers.
func New(cfg config.Wheel, opts ...Option) (*Wheel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := harmony.ParseMode(cfg.InitMode)
	if err != nil {
		return nil, err
	}
	seed, err := palette.ParseColor(cfg.InitRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid root color: %w", err)
	}

	w := &Wheel{
		cfg:     cfg,
		seed:    seed,
		markers: marker.NewCollection(nil),
		bus:     event.NewBus(),
		mode:    mode,
		slice:   cfg.DefaultSlice,
		logger:  wheelLogger,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for _, setup := range w.setups {
		setup(w)
	}
	w.setups = nil
	return w, nil
}

// Datum describes one explicitly bound marker.
type Datum struct {
	Color  colorful.Color
	Label  string // optional display name
	Hidden bool
}

// Input is the data a wheel is bound to: a marker count or explicit data.
// The zero value creates marker.DefaultCount markers from the seed color.
type Input struct {
	count    int
	hasCount bool
	data     []Datum
	hasData  bool
}

// Count binds n markers, all starting from the seed color.
func Count(n int) Input {
	return Input{count: n, hasCount: true}
}

// Data binds one marker per datum and switches the wheel to custom mode.
func Data(data ...Datum) Input {
	return Input{data: data, hasData: true}
}

// Colors binds one visible, unlabeled marker per color and switches the wheel
// to custom mode.
func Colors(colors ...colorful.Color) Input {
	data := make([]Datum, len(colors))
	for i, c := range colors {
		data[i] = Datum{Color: c}
	}
	return Data(data...)
}

// InputFromConfig returns the input described by cfg: its explicit colors if
// any, otherwise its marker count.
func InputFromConfig(cfg config.Wheel) (Input, error) {
	if len(cfg.Colors) == 0 {
		return Count(cfg.MarkerCount), nil
	}
	data := make([]Datum, len(cfg.Colors))
	for i, mc := range cfg.Colors {
		c, err := palette.ParseColor(mc.Color)
		if err != nil {
			return Input{}, fmt.Errorf("color %d: %w", i, err)
		}
		data[i] = Datum{Color: c, Label: mc.Label, Hidden: mc.Hidden}
	}
	return Data(data...), nil
}

// BindData replaces the wheel's markers and computes their initial harmony.
func (w *Wheel) BindData(in Input) {
	var markers []*marker.Marker
	switch {
	case in.hasData:
		markers = make([]*marker.Marker, len(in.data))
		for i, d := range in.data {
			markers[i] = marker.FromColor(d.Color, d.Label)
			markers[i].Visible = !d.Hidden
		}
	case in.hasCount:
		markers = marker.FromSeed(w.seed, max(in.count, 0))
	default:
		markers = marker.FromSeed(w.seed, marker.DefaultCount)
	}
	w.markers.Rebuild(markers)
	w.dragging = false
	w.logger.Printf("bound %d marker(s)", len(markers))

	if in.hasData && w.mode != harmony.Custom {
		w.mode = harmony.Custom
		w.bus.Announce(event.ModeChanged, nil)
	}
	harmony.Compute(w.mode, w.markers, w.slice, w.rng)

	w.bus.Announce(event.DataBound, w.markers.Snapshot())
	w.bus.Announce(event.MarkersUpdated, w.markers.Snapshot())
	w.bus.Announce(event.UpdateFinished, nil)
}

// SetHarmony recomputes the markers' colors for the current mode. Nothing is
// announced if no marker is visible. During a drag the recomputed hues become
// the new drag references, so the following moves rotate from them.
func (w *Wheel) SetHarmony() {
	if !harmony.Compute(w.mode, w.markers, w.slice, w.rng) {
		return
	}
	if w.dragging {
		w.markers.BeginDrag()
	}
	w.bus.Announce(event.MarkersUpdated, w.markers.Snapshot())
}

// SetMode switches the harmony mode. Unknown modes are rejected with an
// error wrapping harmony.ErrInvalidMode and leave the wheel untouched.
func (w *Wheel) SetMode(m harmony.Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	w.logger.Printf("mode %s -> %s", w.mode, m)
	w.mode = m
	w.SetHarmony()

	w.bus.Announce(event.ModeChanged, nil)
	w.bus.Announce(event.UpdateFinished, nil)
	return nil
}

// SetVisible shows or hides a marker and recomputes harmony.
func (w *Wheel) SetVisible(idx int, visible bool) error {
	if !w.markers.InRange(idx) {
		return fmt.Errorf("marker index %d out of range [0, %d)", idx, w.markers.Len())
	}
	w.markers.SetVisible(idx, visible)
	w.SetHarmony()
	w.bus.Announce(event.UpdateFinished, nil)
	return nil
}

// SetValue sets a marker's brightness, as a palette slider does while it
// moves. Call CommitValue when the slider is released.
func (w *Wheel) SetValue(idx int, v float64) error {
	if !w.markers.InRange(idx) {
		return fmt.Errorf("marker index %d out of range [0, %d)", idx, w.markers.Len())
	}
	w.markers.SetValue(idx, v)
	w.bus.Announce(event.MarkersUpdated, w.markers.Snapshot())
	return nil
}

// CommitValue ends a series of SetValue calls.
func (w *Wheel) CommitValue() {
	w.bus.Announce(event.UpdateFinished, nil)
}

// HitTest returns the collection index of the visible marker under p (SVG
// space). Later markers are drawn on top and win ties.
func (w *Wheel) HitTest(p geom.Point) (int, bool) {
	r := w.cfg.MarkerWidth / 2
	for i := w.markers.Len() - 1; i >= 0; i-- {
		m := w.markers.At(i)
		if !m.Visible {
			continue
		}
		if geom.Dist(p, geom.HSToSVG(m.Hue, m.Saturation, w.cfg.Radius)) <= r {
			return i, true
		}
	}
	return -1, false
}

// Markers returns a copy of the wheel's markers in collection order.
func (w *Wheel) Markers() []marker.Marker { return w.markers.Snapshot() }

// Mode returns the current harmony mode.
func (w *Wheel) Mode() harmony.Mode { return w.mode }

// Slice returns the current analogous spacing in artistic degrees.
func (w *Wheel) Slice() float64 { return w.slice }

// Config returns the wheel's configuration.
func (w *Wheel) Config() config.Wheel { return w.cfg }

// Bus returns the wheel's event bus.
func (w *Wheel) Bus() *event.Bus { return w.bus }

// Colors returns the visible markers' colors in the given format, sorted by
// hue.
func (w *Wheel) Colors(f palette.Format) []string {
	return palette.Export(w.markers.Snapshot(), f)
}
