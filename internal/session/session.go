// Package session holds the viewer's mutable state and applies user
// gestures to it. It has no windowing or GL dependencies.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/controls"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orbit"
	"github.com/Faultbox/orrery/internal/trackball"
)

// Context is the state shared by the event handlers and the frame loop.
// It is passed explicitly rather than held in globals.
type Context struct {
	Camera    *camera.Camera
	System    *orbit.System
	Trackball *trackball.Trackball

	TimeScale float32
	Paused    bool

	// Window size in the same coordinates as pointer events.
	width, height int

	log *zap.Logger
}

// New creates a context for a width x height window.
func New(cam *camera.Camera, sys *orbit.System, tb *trackball.Trackball, timeScale float32, width, height int) *Context {
	c := &Context{
		Camera:    cam,
		System:    sys,
		Trackball: tb,
		TimeScale: timeScale,
		log:       logger.Named("session"),
	}
	c.SetWindowSize(width, height)
	return c
}

// SetWindowSize records the size used to normalize pointer positions.
func (c *Context) SetWindowSize(width, height int) {
	c.width, c.height = width, height
}

// WindowSize returns the size used to normalize pointer positions.
func (c *Context) WindowSize() (int, int) {
	return c.width, c.height
}

// PointerDown starts a gesture if the button maps to a trackball mode.
// It reports whether a gesture started.
func (c *Context) PointerDown(x, y int, b controls.Button, mods controls.Modifiers) bool {
	mode, ok := controls.ModeFor(b, mods)
	if !ok {
		return false
	}
	nx, ny := controls.NormalizeCursor(x, y, c.width, c.height)
	c.Trackball.Begin(c.Camera.View, nx, ny, mode)
	c.log.Debug("gesture started",
		zap.Stringer("mode", mode),
		zap.Float32("x", nx),
		zap.Float32("y", ny),
	)
	return true
}

// PointerMove updates the camera while a gesture is active.
func (c *Context) PointerMove(x, y int) {
	if !c.Trackball.Tracking() {
		return
	}
	nx, ny := controls.NormalizeCursor(x, y, c.width, c.height)
	c.Camera.View = c.Trackball.Update(nx, ny)
}

// PointerUp ends the gesture when one of the gesture buttons is released.
func (c *Context) PointerUp(b controls.Button) {
	if b == controls.ButtonOther || !c.Trackball.Tracking() {
		return
	}
	c.Trackball.End()
	c.log.Debug("gesture ended", zap.Stringer("mode", c.Trackball.Mode()))
}

// ResetCamera restores the starting view and drops any active gesture.
func (c *Context) ResetCamera() {
	c.Trackball.End()
	c.Camera.Reset()
}

// TogglePause stops or resumes orbital motion and reports the new state.
func (c *Context) TogglePause() bool {
	c.Paused = !c.Paused
	return c.Paused
}

// Step advances the system by dt seconds of wall time.
func (c *Context) Step(dt float32) {
	if c.Paused || dt <= 0 {
		return
	}
	c.System.Advance(dt * c.TimeScale)
}
