// Package controls maps pointer buttons and modifier keys to trackball
// gestures, independent of the windowing library.
package controls

import "github.com/Faultbox/orrery/internal/trackball"

// Button identifies a mouse button.
type Button uint8

const (
	ButtonOther Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Has reports whether all of m's bits in flag are set.
func (m Modifiers) Has(flag Modifiers) bool {
	return m&flag == flag
}

// ModeFor picks the trackball mode for a button press.
// Left rotates, Shift+Left zooms, Ctrl+Left pans; right zooms and middle pans.
// Shift wins when both modifiers are held. ok is false for other buttons.
func ModeFor(b Button, mods Modifiers) (mode trackball.Mode, ok bool) {
	switch b {
	case ButtonLeft:
		switch {
		case mods.Has(ModShift):
			return trackball.Zoom, true
		case mods.Has(ModCtrl):
			return trackball.Pan, true
		default:
			return trackball.Rotate, true
		}
	case ButtonRight:
		return trackball.Zoom, true
	case ButtonMiddle:
		return trackball.Pan, true
	default:
		return 0, false
	}
}

// NormalizeCursor maps a pixel position to [0,1] across a width x height
// viewport, so the last pixel column and row map to exactly 1.
func NormalizeCursor(x, y, width, height int) (float32, float32) {
	w := float32(width - 1)
	h := float32(height - 1)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return float32(x) / w, float32(y) / h
}
