// Package render draws a color wheel with OpenGL.
//
// Geometry is built in the wheel's SVG space and mapped to the window by a
// single transform uniform:
// 1. The wheel background is triangulated once, when the renderer is created.
// 2. Markers and the palette strip are rebuilt whenever the wheel announces
// new marker data.
package render

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/irfansharif/tinted/internal/config"
	"github.com/irfansharif/tinted/internal/event"
	"github.com/irfansharif/tinted/internal/geom"
	"github.com/irfansharif/tinted/internal/harmony"
	"github.com/irfansharif/tinted/internal/marker"
	"github.com/irfansharif/tinted/internal/scene"
	"github.com/irfansharif/tinted/internal/wheel"
)

var renderLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("TINTED_DEBUG_RENDER") == "1" {
		renderLogger = log.New(os.Stdout, "[render] ", log.Ltime|log.Lmsgprefix)
	}
}

type Renderer struct {
	cfg  config.Wheel
	w, h int

	svgToScreen geom.Affine
	screenToSVG geom.Affine

	shaderManager *ShaderManager
	background    *buffer // wheel
	foreground    *buffer // markers and palette strip
	stats         Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	Vertices          int     // vertices uploaded across both buffers
	LastPrepareTimeMs float64 // time spent in last Update() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	BufferGrowths     int
}

// NewRenderer compiles the shaders and uploads the wheel background. It
// requires a current OpenGL context.
func NewRenderer(cfg config.Wheel, w, h int) (*Renderer, error) {
	sm, err := NewShaderManager()
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		cfg:           cfg,
		shaderManager: sm,
	}
	if err := r.SetViewport(w, h); err != nil {
		return nil, err
	}

	mesh, err := scene.WheelMesh(cfg, scene.WheelSectors, scene.WheelRings)
	if err != nil {
		return nil, fmt.Errorf("building wheel: %w", err)
	}
	r.background = newBuffer(mesh.VertexCount())
	r.background.upload(mesh)
	r.foreground = newBuffer(initialBufferVertices)
	r.stats.Vertices = mesh.VertexCount()
	renderLogger.Printf("wheel background: %d triangles", mesh.VertexCount()/3)
	return r, nil
}

// SetViewport updates the window size the scene is fit into.
func (r *Renderer) SetViewport(w, h int) error {
	toScreen, err := scene.ViewTransform(r.cfg, w, h)
	if err != nil {
		return err
	}
	toSVG, err := toScreen.Inv()
	if err != nil {
		return err
	}
	r.w, r.h = w, h
	r.svgToScreen, r.screenToSVG = toScreen, toSVG
	return nil
}

// ScreenToSVG maps a window position (pixels, y down) into the wheel's SVG
// space.
func (r *Renderer) ScreenToSVG(x, y float64) geom.Point {
	return r.screenToSVG.MulPoint(geom.MakePoint(x, y))
}

// Update rebuilds the marker and palette geometry.
func (r *Renderer) Update(markers []marker.Marker, mode harmony.Mode) error {
	startTime := time.Now()

	mesh, err := scene.MarkerMesh(r.cfg, markers)
	if err != nil {
		return err
	}
	swatches, err := scene.SwatchMesh(r.cfg, markers, mode)
	if err != nil {
		return err
	}
	mesh = append(mesh, swatches...)

	if r.foreground.upload(mesh) {
		r.stats.BufferGrowths++
		renderLogger.Printf("foreground buffer grew to %d vertices", r.foreground.capacity)
	}
	r.stats.Vertices = int(r.background.count) + mesh.VertexCount()
	r.stats.LastPrepareTimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0
	return nil
}

// Attach subscribes the renderer to a wheel's events, so that it redraws
// whenever the markers change. It is meant to be passed to wheel.WithSetup.
func (r *Renderer) Attach(w *wheel.Wheel) {
	onMarkers := func(e event.Event) {
		if err := r.Update(e.Markers, w.Mode()); err != nil {
			log.Printf("Error updating markers: %v", err)
		}
	}
	w.Bus().Subscribe(event.DataBound, onMarkers)
	w.Bus().Subscribe(event.MarkersUpdated, onMarkers)
	// Palette order depends on the mode.
	w.Bus().Subscribe(event.ModeChanged, func(event.Event) {
		if err := r.Update(w.Markers(), w.Mode()); err != nil {
			log.Printf("Error updating markers: %v", err)
		}
	})
}

func (r *Renderer) Draw() {
	startTime := time.Now()

	r.shaderManager.SetTransform(r.computeTransformMatrix())
	r.background.draw()
	r.foreground.draw()

	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Cleanup releases the renderer's GPU resources.
func (r *Renderer) Cleanup() {
	r.background.cleanup()
	r.foreground.cleanup()
	r.shaderManager.Cleanup()
}

// computeTransformMatrix computes the complete transformation matrix from SVG
// coordinates to OpenGL NDC.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	return affineToMatrix4(screenToNDC(r.w, r.h).Mul(r.svgToScreen))
}

// screenToNDC converts screen coordinates to OpenGL NDC.
func screenToNDC(w, h int) geom.Affine {
	return geom.MakeAffine(
		2.0/float64(w), 0, -1,
		0, -2.0/float64(h), 1,
	)
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.D), 0, 0,
		float32(transform.B), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
