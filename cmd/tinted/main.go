package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/tinted/internal/config"
	"github.com/irfansharif/tinted/internal/render"
	"github.com/irfansharif/tinted/internal/wheel"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var configDir = flag.String("config", "", "directory containing "+config.FileName)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("TINTED_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(w *wheel.Wheel, fps float64, renderStats render.Stats) string {
	return fmt.Sprintf("Tinted (%s, %d markers, %.1f FPS, %d triangles, %.2fµs/draw, %.2fms/update)",
		w.Mode(),
		len(w.Markers()),
		fps,
		renderStats.Vertices/3,
		renderStats.LastDrawTimeUs,
		renderStats.LastPrepareTimeMs,
	)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	input, err := wheel.InputFromConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid colors in config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, "Tinted", nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	gl.Enable(gl.MULTISAMPLE)

	cw, ch := window.GetFramebufferSize()
	renderer, err := render.NewRenderer(cfg, cw, ch)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Cleanup()

	s := seed()
	runtimeLogger.Printf("seed %d", s)
	w, err := wheel.New(cfg,
		wheel.WithRand(rand.New(rand.NewSource(s))),
		wheel.WithSetup(renderer.Attach),
	)
	if err != nil {
		log.Fatalf("Failed to create wheel: %v", err)
	}
	w.BindData(input)

	NewEventHandlers(window, w, renderer)

	frameCount := 0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !window.ShouldClose() {
		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Draw()
		window.SwapBuffers()
		glfw.WaitEventsTimeout(0.1)

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			frameCount = 0
			lastFPSUpdate = now

			renderStats := renderer.Stats()
			window.SetTitle(makeTitle(w, fps, renderStats))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS", fps)
			runtimeLogger.Printf("Shapes:         %d triangles, %d vertices", renderStats.Vertices/3, renderStats.Vertices)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last update)", renderStats.LastDrawTimeUs, renderStats.LastPrepareTimeMs)
			runtimeLogger.Printf("Buffers:        %d growth event(s)", renderStats.BufferGrowths)
			runtimeLogger.Println("==============================")
		}
	}
}

func seed() int64 {
	seedStr := os.Getenv("TINTED_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid TINTED_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
