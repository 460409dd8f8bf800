// Package viewer runs the interactive solar system window.
package viewer

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/session"
)

// Title is the window title.
const Title = "Orrery"

// maxFrameTime caps the simulation step after stalls such as window drags.
const maxFrameTime = 250 * time.Millisecond

// Viewer owns the window, renderer and session state.
type Viewer struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	ctx         *session.Context
	screenshots *debug.ScreenshotCapture
}

// New creates the window and GL resources and loads the configured system.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("catalog", cfg.Scene.Catalog),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	winW, winH := v.window.GetSize()
	fbW, fbH := v.window.DrawableSize()

	v.ctx, err = session.FromConfig(cfg, winW, winH)
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.ctx.Camera.Resize(fbW, fbH)

	sky := ""
	if cfg.Scene.Skybox {
		sky = cfg.Scene.SkyTexture
	}
	v.renderer, err = renderer.New(renderer.Config{
		Width:      fbW,
		Height:     fbH,
		TextureDir: cfg.Scene.TextureDir,
		SkyTexture: sky,
		Shininess:  cfg.Scene.Shininess,
		Ambient:    cfg.Scene.Ambient,
		Wireframe:  cfg.Graphics.Wireframe,
	}, v.ctx.System)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.screenshots = debug.NewScreenshotCapture(cfg.Screenshots.Dir, "orrery")

	v.log.Info("viewer initialized", zap.Int("bodies", len(v.ctx.System.Bodies)))
	return v, nil
}

// Run drives the frame loop until the window closes or the user quits.
func (v *Viewer) Run() error {
	v.running = true
	printHelp(os.Stdout)

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := min(now.Sub(lastTime), maxFrameTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}
		if !v.running {
			break
		}

		v.ctx.Step(float32(dt.Seconds()))
		v.renderer.Draw(v.ctx.Camera, v.ctx.System)
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		v.resize(event.Width, event.Height)
	case input.EventMouseDown:
		v.ctx.PointerDown(event.MouseX, event.MouseY, event.Button, event.Mods)
	case input.EventMouseUp:
		v.ctx.PointerUp(event.Button)
	case input.EventMouseMove:
		v.ctx.PointerMove(event.MouseX, event.MouseY)
	case input.EventKeyDown:
		v.handleKey(keyActions[event.Key])
	}
}

// resize takes the new window size; the viewport uses the drawable size.
func (v *Viewer) resize(width, height int) {
	v.ctx.SetWindowSize(width, height)
	fbW, fbH := v.window.DrawableSize()
	v.ctx.Camera.Resize(fbW, fbH)
	v.renderer.Resize(fbW, fbH)
}

func (v *Viewer) handleKey(a action) {
	switch a {
	case actionQuit:
		v.running = false
	case actionHelp:
		printHelp(os.Stdout)
	case actionWireframe:
		v.renderer.SetWireframe(!v.renderer.Wireframe())
		mode := "solid"
		if v.renderer.Wireframe() {
			mode = "wireframe"
		}
		v.log.Info("polygon mode", zap.String("mode", mode))
	case actionResetCamera:
		v.ctx.ResetCamera()
		v.log.Info("camera reset")
	case actionScreenshot:
		v.screenshot()
	case actionPause:
		v.log.Info("orbits", zap.Bool("paused", v.ctx.TogglePause()))
	case actionDebugLog:
		switch {
		case logger.Level() != "debug":
			logger.SetLevel("debug")
		case v.config.Logging.Level != "debug":
			logger.SetLevel(v.config.Logging.Level)
		default:
			logger.SetLevel("info")
		}
		v.log.Info("log level changed", zap.String("level", logger.Level()))
	}
}

func (v *Viewer) screenshot() {
	// The back buffer is undefined after a swap, so draw into it again.
	v.renderer.Draw(v.ctx.Camera, v.ctx.System)
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and window resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
