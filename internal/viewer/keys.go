package viewer

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"
)

// action is a keyboard command.
type action int

const (
	actionNone action = iota
	actionQuit
	actionHelp
	actionWireframe
	actionResetCamera
	actionScreenshot
	actionPause
	actionDebugLog
)

var keyActions = map[sdl.Scancode]action{
	sdl.SCANCODE_ESCAPE: actionQuit,
	sdl.SCANCODE_Q:      actionQuit,
	sdl.SCANCODE_H:      actionHelp,
	sdl.SCANCODE_F1:     actionHelp,
	sdl.SCANCODE_W:      actionWireframe,
	sdl.SCANCODE_HOME:   actionResetCamera,
	sdl.SCANCODE_F12:    actionScreenshot,
	sdl.SCANCODE_SPACE:  actionPause,
	sdl.SCANCODE_F2:     actionDebugLog,
}

const helpText = `[help]
- press ESC or 'q' to quit
- press F1 or 'h' to see help
- press 'w' to toggle wireframe
- press Home to reset camera
- press Space to pause orbits
- press F12 to save a screenshot
- press F2 to toggle debug logging
- drag left to rotate, shift+left or right to zoom, ctrl+left or middle to pan
`

func printHelp(w io.Writer) {
	fmt.Fprintln(w, helpText)
}
