package physics

import (
	"math"

	"github.com/lixenwraith/magic-lab/vmath"
)

// ElasticCollision3DF is float64-native elastic collision
// Zero inverse mass marks a static body
// Returns false when bodies coincide or are already separating
func ElasticCollision3DF(
	posA, posB *vmath.Vec3F,
	velA, velB *vmath.Vec3F,
	invA, invB, restitution float64,
) bool {
	dx := posB.X - posA.X
	dy := posB.Y - posA.Y
	dz := posB.Z - posA.Z

	distSq := dx*dx + dy*dy + dz*dz
	if distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	invDist := 1.0 / dist
	nx, ny, nz := dx*invDist, dy*invDist, dz*invDist

	relVx := velA.X - velB.X
	relVy := velA.Y - velB.Y
	relVz := velA.Z - velB.Z

	vn := relVx*nx + relVy*ny + relVz*nz
	if vn <= 0 {
		return false
	}

	invSum := invA + invB
	if invSum == 0 {
		return false
	}
	j := (1.0 + restitution) * vn / invSum

	jInvA := j * invA
	jInvB := j * invB

	velA.X -= jInvA * nx
	velA.Y -= jInvA * ny
	velA.Z -= jInvA * nz
	velB.X += jInvB * nx
	velB.Y += jInvB * ny
	velB.Z += jInvB * nz

	return true
}

// SeparateOverlap3DF pushes overlapping spheres apart, split by inverse mass
func SeparateOverlap3DF(posA, posB *vmath.Vec3F, radiusA, radiusB, invA, invB, margin float64) bool {
	dx := posB.X - posA.X
	dy := posB.Y - posA.Y
	dz := posB.Z - posA.Z

	distSq := dx*dx + dy*dy + dz*dz
	minDist := radiusA + radiusB
	minDistSq := minDist * minDist

	if distSq >= minDistSq || distSq == 0 {
		return false
	}

	invSum := invA + invB
	if invSum == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	overlap := minDist - dist
	invDist := 1.0 / dist

	nx, ny, nz := dx*invDist, dy*invDist, dz*invDist

	ratioA := invA / invSum
	ratioB := invB / invSum

	sepA := (overlap + margin) * ratioA
	sepB := (overlap + margin) * ratioB

	posA.X -= nx * sepA
	posA.Y -= ny * sepA
	posA.Z -= nz * sepA
	posB.X += nx * sepB
	posB.Y += ny * sepB
	posB.Z += nz * sepB

	return true
}

// ReflectFloor clamps a coordinate to lo and reflects its velocity upward
func ReflectFloor(pos, vel *float64, lo, restitution float64) bool {
	if *pos >= lo {
		return false
	}
	*pos = lo
	if *vel < 0 {
		*vel = -*vel * restitution
	}
	return true
}
