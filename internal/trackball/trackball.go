// Package trackball implements a virtual trackball that turns pointer drags
// into rotate, zoom and pan transforms of a camera view matrix.
//
// A gesture is one Begin, any number of Update calls, and an End. Every
// Update is computed from the view and cursor captured by Begin, so the
// result depends only on where the cursor is now, never on the path it took.
package trackball

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultSensitivity is the displacement scale used when none is configured.
const DefaultSensitivity float32 = 1.0

const (
	// Cursor displacements shorter than this are treated as jitter.
	jitterThreshold float32 = 1e-4

	// Upper bound on the asin argument; float error can push |n| past 1.
	maxAngleSine float32 = 0.999

	// Smallest scale a zoom gesture can produce.
	minZoomFactor float32 = 0.1

	// Pan tuning constants. Empirical, kept as-is.
	panLift  float32 = 10
	panScale float32 = 3
)

// forward is the point the camera looks through before a drag starts.
var forward = math.Vec3{X: 0, Y: 0, Z: 1}

// Trackball holds the state of one pointer-drag gesture.
// It is not safe for concurrent use; the host drives it from its event loop.
type Trackball struct {
	tracking     bool
	sensitivity  float32
	anchorView   math.Mat4
	anchorCursor math.Vec2
	mode         Mode
}

// New creates an idle trackball. A non-positive sensitivity falls back to
// DefaultSensitivity.
func New(sensitivity float32) *Trackball {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Trackball{
		sensitivity: sensitivity,
		anchorView:  math.Identity(),
	}
}

// Begin starts a gesture. x and y are the cursor in normalized [0,1] screen
// coordinates; view is the camera's current view matrix.
func (tb *Trackball) Begin(view math.Mat4, x, y float32, mode Mode) {
	tb.tracking = true
	tb.anchorCursor = math.Vec2{X: x*2 - 1, Y: y*2 - 1}
	tb.anchorView = view
	tb.mode = mode
}

// End stops the current gesture. Calling it while idle is a no-op.
func (tb *Trackball) End() {
	tb.tracking = false
}

// Tracking reports whether a gesture is in progress.
func (tb *Trackball) Tracking() bool { return tb.tracking }

// Mode returns the mode of the current (or last) gesture.
func (tb *Trackball) Mode() Mode { return tb.mode }

// Sensitivity returns the displacement scale.
func (tb *Trackball) Sensitivity() float32 { return tb.sensitivity }

// Update returns the view matrix for the cursor at (x, y), in normalized
// [0,1] screen coordinates. Values outside [0,1] are extrapolated.
// When idle, or when the cursor has not moved measurably since Begin,
// the anchor view is returned unchanged.
func (tb *Trackball) Update(x, y float32) math.Mat4 {
	if !tb.tracking {
		return tb.anchorView
	}

	// Screen Y grows downward; the sphere model wants it up.
	d := math.Vec2{
		X: x*2 - 1 - tb.anchorCursor.X,
		Y: tb.anchorCursor.Y - (y*2 - 1),
	}
	if !d.IsFinite() || d.Length() < jitterThreshold {
		return tb.anchorView
	}
	d = d.Scale(tb.sensitivity)

	switch tb.mode {
	case Rotate:
		return tb.rotate(d)
	case Zoom:
		return tb.zoom(d)
	case Pan:
		return tb.pan(d)
	default:
		return tb.anchorView
	}
}

func (tb *Trackball) rotate(d math.Vec2) math.Mat4 {
	p1 := liftToSphere(d.X, d.Y, d.LengthSquared())

	// Axis in view space, taken back into the anchor's frame.
	n := tb.anchorView.TransposeTransformDirection(forward.Cross(p1))
	angle := rotationAngle(n)

	return tb.anchorView.Mul(math.RotateAxis(n.Normalize(), angle))
}

func (tb *Trackball) zoom(d math.Vec2) math.Mat4 {
	s := zoomFactor(d.Y)
	return tb.anchorView.Mul(math.Scale(s, s, s))
}

func (tb *Trackball) pan(d math.Vec2) math.Mat4 {
	// Axes are swapped and negated so the cross product below lines up
	// with the drag direction.
	p1 := liftToSphere(d.Y, -d.X, d.LengthSquared()).Scale(panLift)
	n := tb.anchorView.TransposeTransformDirection(forward.Cross(p1)).Scale(panScale)

	return tb.anchorView.Mul(math.Translate(n.X, n.Y, n.Z))
}

// liftToSphere raises a planar point onto the unit hemisphere facing +Z.
// lenSq is the squared length used for the height, which is the length of
// the displacement before x and y were permuted.
func liftToSphere(x, y, lenSq float32) math.Vec3 {
	z := math32.Sqrt(math32.Max(0, 1-lenSq))
	return math.Vec3{X: x, Y: y, Z: z}.Normalize()
}

func rotationAngle(n math.Vec3) float32 {
	return math32.Asin(math32.Min(n.Length(), maxAngleSine))
}

func zoomFactor(dy float32) float32 {
	s := 1 + dy
	if s <= minZoomFactor {
		return minZoomFactor
	}
	return s
}
