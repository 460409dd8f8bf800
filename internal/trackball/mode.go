package trackball

import "fmt"

// Mode selects how a drag gesture transforms the view.
type Mode uint8

const (
	// Rotate spins the view about an axis derived from the drag direction.
	Rotate Mode = iota
	// Zoom scales the view uniformly by the vertical drag.
	Zoom
	// Pan translates the view along the drag direction.
	Pan
)

var modeNames = [...]string{
	Rotate: "rotate",
	Zoom:   "zoom",
	Pan:    "pan",
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trackball mode %q", s)
}
