// Package hit holds the distance tests that decide projectile and beam hits
package hit

import (
	"github.com/lixenwraith/magic-lab/vmath"
)

// Positioned is anything with a world position that can be hit
type Positioned interface {
	HitPosition() vmath.Vec3F
}

// Sphere returns the first candidate strictly within radius of pos, in slice order
func Sphere[T Positioned](pos vmath.Vec3F, radius float64, candidates []T) (T, bool) {
	rSq := radius * radius
	for _, c := range candidates {
		if vmath.V3FDistSq(pos, c.HitPosition()) < rSq {
			return c, true
		}
	}
	var zero T
	return zero, false
}

// Beam is an instantaneous line segment with thickness
type Beam struct {
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
	Range     float64
	Radius    float64
}

// NewBeam builds a beam, normalizing direction; a degenerate direction falls back to -Z
func NewBeam(origin, direction vmath.Vec3F, maxRange, radius float64) Beam {
	return Beam{
		Origin:    origin,
		Direction: vmath.V3FNormalizeOr(direction, vmath.V3FFwd),
		Range:     maxRange,
		Radius:    radius,
	}
}

// End returns the far endpoint of the beam
func (b Beam) End() vmath.Vec3F {
	return vmath.V3FAddScaled(b.Origin, b.Direction, b.Range)
}

// Contains reports whether p projects onto [0, Range] and lies strictly closer than Radius to the beam axis
func (b Beam) Contains(p vmath.Vec3F) bool {
	rel := vmath.V3FSub(p, b.Origin)
	proj := vmath.V3FDot(rel, b.Direction)
	if proj < 0 || proj > b.Range {
		return false
	}
	closest := vmath.V3FAddScaled(b.Origin, b.Direction, proj)
	return vmath.V3FDistSq(closest, p) < b.Radius*b.Radius
}

// BeamHits returns every candidate inside the beam, in slice order
func BeamHits[T Positioned](b Beam, candidates []T) []T {
	var hits []T
	for _, c := range candidates {
		if b.Contains(c.HitPosition()) {
			hits = append(hits, c)
		}
	}
	return hits
}
