package parameter

import "time"

// Particle Effects
const (
	// EffectTTL is the lifetime of a particle burst in seconds
	EffectTTL = 2.0

	// ParticleGravity is the downward acceleration used for drift (units/sec²)
	ParticleGravity = 9.8

	// ParticleGravityFactor scales gravity into a constant per-second downward drift
	ParticleGravityFactor = 0.2

	// ParticleSpeedFactor converts explosion strength into particle launch speed
	ParticleSpeedFactor = 4.0

	// ExplosionParticleSize and SparkParticleSize are render hints for point size
	ExplosionParticleSize = 0.5
	SparkParticleSize     = 0.3
)

// Particle Counts
const (
	// DefaultParticleCount is particles per burst
	DefaultParticleCount = 100

	// MinParticleCount and MaxParticleCount bound live tuning
	MinParticleCount = 0
	MaxParticleCount = 500

	// ImpactParticleDivisor reduces bursts spawned per hit entity (beam, projectile impact)
	ImpactParticleDivisor = 3
)

// Fireflies
const (
	// DefaultFireflyCount is the ambient point cloud size
	DefaultFireflyCount = 200

	// MaxFireflyCount bounds live tuning
	MaxFireflyCount = 1000

	// FireflyShimmerAmplitude is the cosmetic vertical oscillation (units)
	FireflyShimmerAmplitude = 0.05

	// FireflyShimmerPeriod is the duration of one shimmer cycle
	FireflyShimmerPeriod = 2 * time.Second
)
