// Package physics implements the per-frame gravity integrator used by every
// physics-bound entity in a scene. Units are world pixels and frames; there is
// no time step other than "one frame".
package physics

import "github.com/vovakirdan/tui-parley/internal/core"

// Contact is the vertical contact state of a body.
type Contact int

const (
	Airborne Contact = iota // bottom edge above the floor plane
	Grounded                // bottom edge resting on the floor plane
)

// String returns a human-readable name for the contact state.
func (c Contact) String() string {
	switch c {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// Body is an axis-aligned box under constant gravity.
// Positive Y points down, so a negative VelY moves the body up.
type Body struct {
	X, Y    float64 // Top-left corner
	W, H    float64 // Size
	VelY    float64 // Vertical velocity, pixels per frame
	Speed   float64 // Horizontal speed magnitude, pixels per frame
	Gravity float64 // Added to VelY every frame

	contact Contact
}

// NewBody creates a body at rest at (x, y).
func NewBody(x, y, w, h, speed, gravity float64) *Body {
	return &Body{
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Speed:   speed,
		Gravity: gravity,
	}
}

// Step advances the body by one frame and clamps it to the floor plane.
// Reports whether the contact state changed (landing or take-off).
func (b *Body) Step(floorY float64) bool {
	b.VelY += b.Gravity
	b.Y += b.VelY

	next := Airborne
	if b.Y+b.H >= floorY {
		b.Y = floorY - b.H
		b.VelY = 0
		next = Grounded
	}

	changed := next != b.contact
	b.contact = next
	return changed
}

// Jump sets the vertical velocity to -power, overriding whatever it was.
// Callers decide whether jumping is allowed.
func (b *Body) Jump(power float64) {
	b.VelY = -power
}

// Move shifts the body horizontally by Speed for each held direction.
// Holding both directions cancels out.
func (b *Body) Move(left, right bool) {
	if left {
		b.X -= b.Speed
	}
	if right {
		b.X += b.Speed
	}
}

// OnGround reports whether the bottom edge touches or passes floorY.
func (b *Body) OnGround(floorY float64) bool {
	return b.Y+b.H >= floorY
}

// Contact returns the contact state recorded by the last Step.
func (b *Body) Contact() Contact {
	return b.contact
}

// Rect returns the body's bounds in world units.
func (b *Body) Rect() core.FRect {
	return core.FRect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}
