package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/tinted/internal/geom"
	"github.com/irfansharif/tinted/internal/harmony"
	"github.com/irfansharif/tinted/internal/palette"
	"github.com/irfansharif/tinted/internal/render"
	"github.com/irfansharif/tinted/internal/wheel"
)

const valueStep = 0.05 // brightness change per up/down key press

// EventHandlers translates window input into wheel operations.
type EventHandlers struct {
	window   *glfw.Window
	wheel    *wheel.Wheel
	renderer *render.Renderer

	// Marker under the pointer when the left button went down, if any.
	dragIdx int
	// Marker whose value the up/down keys change; the last one clicked.
	selected int

	// Input buffer for numeric input (marker count). Accumulates digits until
	// Space rebinds the wheel.
	inputBuffer string
}

// NewEventHandlers creates the handlers and installs them on window.
func NewEventHandlers(window *glfw.Window, w *wheel.Wheel, renderer *render.Renderer) *EventHandlers {
	eh := &EventHandlers{
		window:   window,
		wheel:    w,
		renderer: renderer,
		dragIdx:  -1,
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods)
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action)
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleFramebufferSize(newW, newH)
	})
}

// handleFramebufferSize handles window resize events.
func (eh *EventHandlers) handleFramebufferSize(newW, newH int) {
	if newW == 0 || newH == 0 {
		return // minimized
	}
	if err := eh.renderer.SetViewport(newW, newH); err != nil {
		log.Printf("Failed to resize viewport: %v", err)
	}
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		if key >= glfw.Key0 && key <= glfw.Key9 {
			eh.inputBuffer += string(rune('0' + int(key-glfw.Key0)))
			return
		}
		if key == glfw.KeyEscape {
			eh.inputBuffer = ""
			return
		}
		if key != glfw.KeySpace {
			eh.inputBuffer = ""
		}
	}

	switch key {
	case glfw.KeySpace:
		if action == glfw.Press {
			eh.handleRebindKey()
		}
	case glfw.KeyTab:
		if action == glfw.Press {
			eh.handleModeKey((mods & glfw.ModShift) == 0)
		}
	case glfw.KeyX:
		if action == glfw.Press {
			eh.printColors(palette.HEX)
		}
	case glfw.KeyR:
		if action == glfw.Press {
			eh.printColors(palette.RGB)
		}
	case glfw.KeyL:
		if action == glfw.Press {
			eh.printColors(palette.HSL)
		}
	case glfw.KeyV:
		if action == glfw.Press {
			eh.printColors(palette.HSV)
		}
	case glfw.KeyA:
		if action == glfw.Press {
			eh.handleShowAllKey()
		}
	case glfw.KeyUp:
		eh.handleValueKeys(action, valueStep)
	case glfw.KeyDown:
		eh.handleValueKeys(action, -valueStep)
	}
}

// handleRebindKey rebinds the wheel to the number of markers typed before
// Space, or to the default count.
func (eh *EventHandlers) handleRebindKey() {
	input := wheel.Input{}
	if count, ok := eh.parseInput(); ok {
		input = wheel.Count(count)
	}
	eh.dragIdx, eh.selected = -1, 0
	eh.wheel.BindData(input)
}

// handleShowAllKey makes every hidden marker visible again.
func (eh *EventHandlers) handleShowAllKey() {
	for i, m := range eh.wheel.Markers() {
		if m.Visible {
			continue
		}
		if err := eh.wheel.SetVisible(i, true); err != nil {
			log.Printf("Failed to show marker: %v", err)
		}
	}
}

// handleModeKey cycles through the harmony modes.
func (eh *EventHandlers) handleModeKey(next bool) {
	steps := 1
	if !next {
		// Going back is going forward all the way around but one.
		steps = len(harmony.Modes()) - 1
	}
	mode := eh.wheel.Mode()
	for range steps {
		mode = mode.Next()
	}
	if err := eh.wheel.SetMode(mode); err != nil {
		log.Printf("Failed to set mode: %v", err)
	}
}

// handleValueKeys changes the selected marker's brightness while up/down is
// held, committing on release.
func (eh *EventHandlers) handleValueKeys(action glfw.Action, delta float64) {
	switch action {
	case glfw.Press, glfw.Repeat:
		markers := eh.wheel.Markers()
		if eh.selected >= len(markers) {
			return // nothing to do
		}
		v := markers[eh.selected].Value + delta
		if err := eh.wheel.SetValue(eh.selected, v); err != nil {
			log.Printf("Failed to set value: %v", err)
		}
	case glfw.Release:
		eh.wheel.CommitValue()
	}
}

func (eh *EventHandlers) printColors(f palette.Format) {
	fmt.Printf("%s: %s\n", f, strings.Join(eh.wheel.Colors(f), " "))
}

// pointerSVG returns the cursor position in the wheel's SVG space.
func (eh *EventHandlers) pointerSVG(xpos, ypos float64) geom.Point {
	// Cursor positions are in screen coordinates, the renderer works in
	// framebuffer pixels.
	scaleX, scaleY := eh.window.GetContentScale()
	return eh.renderer.ScreenToSVG(xpos*float64(scaleX), ypos*float64(scaleY))
}

// handleMouseButton drags markers with the left button and hides them with
// the right one.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	p := eh.pointerSVG(eh.window.GetCursorPos())

	switch button {
	case glfw.MouseButtonLeft:
		switch action {
		case glfw.Press:
			idx, ok := eh.wheel.HitTest(p)
			if !ok {
				return // nothing to do
			}
			eh.dragIdx, eh.selected = idx, idx
			eh.wheel.DragStart()
		case glfw.Release:
			if eh.dragIdx < 0 {
				return
			}
			eh.dragIdx = -1
			eh.wheel.DragEnd()
		}

	case glfw.MouseButtonRight:
		if action != glfw.Press {
			return
		}
		idx, ok := eh.wheel.HitTest(p)
		if !ok {
			return
		}
		if err := eh.wheel.SetVisible(idx, false); err != nil {
			log.Printf("Failed to hide marker: %v", err)
		}
	}
}

// handleCursorPos moves the dragged marker.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	if eh.dragIdx < 0 {
		return
	}
	eh.wheel.DragMove(eh.pointerSVG(xpos, ypos), eh.dragIdx)
}

func (eh *EventHandlers) parseInput() (count int, ok bool) {
	input := strings.TrimSpace(eh.inputBuffer)
	eh.inputBuffer = ""
	if input == "" {
		return 0, false
	}
	val, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return val, true
}
