// Package scene holds the cosmetic state advanced each frame: camera orbit, ground spin, portal, fireflies, wand and overlays
// Nothing here touches physics
package scene

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

// Firefly is one ambient point; Position shimmers vertically around Base
type Firefly struct {
	Base     vmath.Vec3F
	Phase    float64
	Position vmath.Vec3F
}

// OverlayKind selects how an overlay is drawn
type OverlayKind uint8

const (
	OverlayBeam OverlayKind = iota
	OverlayRing
)

// OverlayID identifies a one-shot visual
type OverlayID uint64

// Overlay is a short-lived visual removed by a real-time timer
// Beams use From and To; rings use From as centre and Radius
type Overlay struct {
	ID     OverlayID
	Kind   OverlayKind
	From   vmath.Vec3F
	To     vmath.Vec3F
	Radius float64
	Color  core.RGB
}

// Scene is the cosmetic state of the lab
type Scene struct {
	CameraAngle float64
	GroundAngle float64
	PortalPhase float64
	Elapsed     float64

	Fireflies []Firefly
	Overlays  []Overlay
	Wand      Wand

	rng       *rand.Rand
	overlayID OverlayID
}

func New(rng *rand.Rand) *Scene {
	return &Scene{
		rng:  rng,
		Wand: NewWand(),
	}
}

// Advance moves every cosmetic clock by dt
// orbitSpeed is in revolutions per second, groundSpeed in radians per second
func (s *Scene) Advance(dt, orbitSpeed, groundSpeed float64) {
	s.Elapsed += dt
	s.CameraAngle = vmath.WrapAngle(s.CameraAngle + dt*orbitSpeed*vmath.TwoPi)
	s.GroundAngle = vmath.WrapAngle(s.GroundAngle + dt*groundSpeed)
	s.PortalPhase += dt

	omega := vmath.TwoPi / parameter.FireflyShimmerPeriod.Seconds()
	for i := range s.Fireflies {
		f := &s.Fireflies[i]
		f.Position = f.Base
		f.Position.Y += math.Sin(s.Elapsed*omega+f.Phase) * parameter.FireflyShimmerAmplitude
	}

	s.Wand.Advance(dt)
}

// Reinitialize resamples the firefly cloud in the spawn box
func (s *Scene) Reinitialize(count int, radius float64) {
	if count < 0 {
		count = 0
	}
	s.Fireflies = s.Fireflies[:0]
	for i := 0; i < count; i++ {
		base := vmath.Vec3F{
			X: (s.rng.Float64() - 0.5) * 2 * radius,
			Y: parameter.SpawnHeightMin + s.rng.Float64()*parameter.SpawnHeightSpan,
			Z: (s.rng.Float64() - 0.5) * 2 * radius,
		}
		s.Fireflies = append(s.Fireflies, Firefly{
			Base:     base,
			Phase:    s.rng.Float64() * vmath.TwoPi,
			Position: base,
		})
	}
}

// CameraPosition is the orbiting eye; it always looks at the origin
func (s *Scene) CameraPosition() vmath.Vec3F {
	start := vmath.Vec3F{X: parameter.CameraX, Y: parameter.CameraY, Z: parameter.CameraZ}
	return vmath.RotateAboutY(start, s.CameraAngle)
}

// AddOverlay stores a one-shot visual and returns its ID
func (s *Scene) AddOverlay(o Overlay) OverlayID {
	s.overlayID++
	o.ID = s.overlayID
	s.Overlays = append(s.Overlays, o)
	return o.ID
}

// RemoveOverlay drops an overlay; unknown IDs report false
func (s *Scene) RemoveOverlay(id OverlayID) bool {
	for i, o := range s.Overlays {
		if o.ID == id {
			s.Overlays = append(s.Overlays[:i], s.Overlays[i+1:]...)
			return true
		}
	}
	return false
}
