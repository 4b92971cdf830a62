// Package force computes explosion knockback and pushes it into the physics world
package force

import (
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/vmath"
)

// Target is a physics-backed object that can receive knockback
type Target interface {
	Body() physics.BodyID
	HitPosition() vmath.Vec3F
}

// Impulse records one applied knockback
type Impulse struct {
	Body      physics.BodyID
	At        vmath.Vec3F
	Vector    vmath.Vec3F
	Magnitude float64
}

// RadialImpulse returns the knockback vector for a body at pos
// Magnitude falls off linearly to zero at radius; the vertical component is never negative
// A body at the centre is pushed straight up
func RadialImpulse(center, pos vmath.Vec3F, radius, peak float64) (vmath.Vec3F, bool) {
	if radius <= 0 {
		return vmath.Vec3F{}, false
	}
	dist := vmath.V3FDist(center, pos)
	if dist >= radius {
		return vmath.Vec3F{}, false
	}

	falloff := 1 - dist/radius
	dir := vmath.V3FNormalizeOr(vmath.V3FSub(pos, center), vmath.V3FUp)
	if dir.Y < 0 {
		dir.Y = -dir.Y
	}
	return vmath.V3FScale(dir, falloff*peak), true
}

// ApplyRadialImpulse applies knockback to every target within radius of center
// Impulses act at the body position; targets whose body is gone are skipped
func ApplyRadialImpulse[T Target](world physics.World, targets []T, center vmath.Vec3F, radius, peak float64) []Impulse {
	var applied []Impulse
	for _, t := range targets {
		pos := t.HitPosition()
		vec, ok := RadialImpulse(center, pos, radius, peak)
		if !ok {
			continue
		}
		if !world.ApplyImpulse(t.Body(), vec, pos) {
			continue
		}
		applied = append(applied, Impulse{
			Body:      t.Body(),
			At:        pos,
			Vector:    vec,
			Magnitude: vmath.V3FMag(vec),
		})
	}
	return applied
}
