package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/vmath"
)

// ID identifies a live entity; never reused within a registry
type ID uint64

// Kind selects archetype defaults and cosmetic motion
type Kind uint8

const (
	KindBox Kind = iota
	KindBook
	KindTarget
	KindFragment
)

var kindNames = [...]string{"box", "book", "target", "fragment"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// spawnKinds is the rotation used by bulk respawn
var spawnKinds = [...]Kind{KindBox, KindBook, KindTarget}

// Transform is a position plus orientation
type Transform struct {
	Position    vmath.Vec3F
	Orientation mgl64.Quat
}

// FragmentTemplate makes an entity shatter into Count smaller entities on removal
type FragmentTemplate struct {
	Count   int
	Scale   float64
	Impulse float64
	TTL     float64
}

// DefaultFragmentTemplate is the shatter setup of target entities
func DefaultFragmentTemplate() *FragmentTemplate {
	return &FragmentTemplate{
		Count:   parameter.ShatterFragments,
		Scale:   parameter.FragmentScale,
		Impulse: parameter.ShatterImpulse,
		TTL:     parameter.FragmentTTL,
	}
}

// Entity pairs a physics body with its visual transform
// Physics is the last body readback; Visual is Physics plus cosmetic bob and sway
type Entity struct {
	ID         ID
	Kind       Kind
	Mass       float64
	HalfExtent float64

	Physics Transform
	Visual  Transform

	Phase      float64
	BaseHeight float64
	Fragments  *FragmentTemplate

	// TTL > 0 marks a timed entity removed once Age exceeds it
	TTL float64
	Age float64

	body physics.BodyID
}

// Body returns the owned physics handle
func (e *Entity) Body() physics.BodyID {
	return e.body
}

// HitPosition is the physics-derived position, never the cosmetic one
func (e *Entity) HitPosition() vmath.Vec3F {
	return e.Physics.Position
}

// archetype returns mass and half extent for a kind
func archetype(k Kind) (mass, half float64) {
	switch k {
	case KindBook:
		return parameter.BookMass, parameter.BookHalfExtent
	case KindTarget:
		return parameter.TargetMass, parameter.TargetHalfExtent
	default:
		return parameter.BoxMass, parameter.BoxHalfExtent
	}
}

// applyCosmetic layers bob and sway on top of the physics transform
func (e *Entity) applyCosmetic(elapsed float64) {
	e.Visual = e.Physics
	if e.Kind != KindBook {
		return
	}
	wave := elapsed*parameter.BookBobFrequency + e.Phase
	e.Visual.Position.Y += math.Sin(wave) * parameter.BookBobAmplitude
	sway := mgl64.QuatRotate(math.Sin(wave*0.5)*parameter.BookSwayAmplitude, mgl64.Vec3{0, 1, 0})
	e.Visual.Orientation = sway.Mul(e.Physics.Orientation)
}
