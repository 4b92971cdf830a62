package parameter

import "time"

// Hit Detection
const (
	// HitRadius is the projectile vs entity sphere test radius
	HitRadius = 1.0

	// BeamRadius is the lightning beam half-width
	BeamRadius = 1.2

	// BeamRange is the lightning beam length from the wand tip
	BeamRange = 8.0
)

// Bolt (plain projectile, default explosion on expiry)
const (
	BoltSpeed   = 10.0
	BoltMaxLife = 1.5
	BoltSize    = 0.2
)

// Fireball (projectile with colored burst on expiry)
const (
	FireballSpeed   = 8.0
	FireballMaxLife = 1.5
	FireballSize    = 0.3
)

// Lightning
const (
	// BeamVisibleDuration is how long the beam overlay stays before the end burst
	BeamVisibleDuration = 100 * time.Millisecond
)

// Frost
const (
	// FrostRingRadius is the ground ring overlay radius
	FrostRingRadius = 2.5

	// FrostRingDuration is how long the ring overlay stays
	FrostRingDuration = 500 * time.Millisecond

	// FrostTimeScale is the slowed simulation speed while frost is active
	FrostTimeScale = 0.35

	// FrostSlowDuration is the real-time length of the slow-motion effect
	FrostSlowDuration = 2 * time.Second
)

// Wand
const (
	// WandSwingDuration is the cosmetic swing after a cast in seconds
	WandSwingDuration = 0.3

	// WandSwingAngle is the peak swing tilt in radians
	WandSwingAngle = 0.6

	// WandMaxPitch bounds aim pitch in radians
	WandMaxPitch = 1.2
)
