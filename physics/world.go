package physics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/magic-lab/vmath"
)

var (
	ErrUnknownBody  = errors.New("unknown body")
	ErrInvalidMass  = errors.New("invalid mass")
	ErrInvalidStep  = errors.New("invalid step")
	ErrInvalidShape = errors.New("invalid shape")
)

// BodyID is an opaque handle into a World; never reused after removal
type BodyID = uuid.UUID

// ShapeKind selects the collision geometry of a body
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
)

// Shape describes body geometry; HalfExtent is used by boxes, Radius by spheres
type Shape struct {
	Kind       ShapeKind
	HalfExtent vmath.Vec3F
	Radius     float64
}

// Box returns a cube shape with the given half extent
func Box(half float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtent: vmath.Vec3F{X: half, Y: half, Z: half}}
}

// Sphere returns a sphere shape
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// BoundingRadius returns the radius of the sphere enclosing the shape
func (s Shape) BoundingRadius() float64 {
	if s.Kind == ShapeSphere {
		return s.Radius
	}
	return vmath.V3FMag(s.HalfExtent)
}

// BodyState is the per-body readback after a step
type BodyState struct {
	Position    vmath.Vec3F
	Orientation mgl64.Quat
	Velocity    vmath.Vec3F
}

// World is the rigid-body engine consumed by the simulation
// Bodies are created and removed by the entity registry; impulses come from force application
type World interface {
	// CreateBody registers a body; mass 0 makes it static
	CreateBody(mass float64, shape Shape, position vmath.Vec3F) (BodyID, error)

	// RemoveBody releases a body, returns false for unknown handles
	RemoveBody(id BodyID) bool

	// ApplyImpulse changes body velocity instantly, returns false for unknown handles
	ApplyImpulse(id BodyID, impulse, atPoint vmath.Vec3F) bool

	// Step advances the simulation by realDt using up to maxSubsteps internal steps of fixedDt
	Step(fixedDt, realDt float64, maxSubsteps int) error

	// State reads back body position and orientation
	State(id BodyID) (BodyState, bool)

	// BodyCount returns the number of registered bodies
	BodyCount() int
}
