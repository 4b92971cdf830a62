package config

import (
	"math"

	"github.com/lixenwraith/magic-lab/parameter"
)

// Params are the live-tunable scene parameters
type Params struct {
	EntityCount       int     `mapstructure:"entity_count"`
	SpawnRadius       float64 `mapstructure:"spawn_radius"`
	ParticleCount     int     `mapstructure:"particle_count"`
	ExplosionStrength float64 `mapstructure:"explosion_strength"`
	OrbitSpeed        float64 `mapstructure:"orbit_speed"`
	GroundSpeed       float64 `mapstructure:"ground_speed"`
	TimeScale         float64 `mapstructure:"time_scale"`
	FireflyCount      int     `mapstructure:"firefly_count"`
}

// DefaultParams returns the initial lab setup
func DefaultParams() Params {
	return Params{
		EntityCount:       parameter.DefaultEntityCount,
		SpawnRadius:       parameter.DefaultSpawnRadius,
		ParticleCount:     parameter.DefaultParticleCount,
		ExplosionStrength: parameter.DefaultExplosionStrength,
		OrbitSpeed:        parameter.DefaultOrbitSpeed,
		GroundSpeed:       parameter.DefaultGroundSpeed,
		TimeScale:         parameter.DefaultTimeScale,
		FireflyCount:      parameter.DefaultFireflyCount,
	}
}

// Sanitize clamps every field into its valid range
// Invalid values degrade to the nearest valid one, never to an error
func (p Params) Sanitize() Params {
	p.EntityCount = clampInt(p.EntityCount, 0, parameter.MaxEntityCount)
	p.SpawnRadius = clampFloat(p.SpawnRadius, parameter.MinSpawnRadius, parameter.MaxSpawnRadius, parameter.MinSpawnRadius)
	p.ParticleCount = clampInt(p.ParticleCount, parameter.MinParticleCount, parameter.MaxParticleCount)
	p.ExplosionStrength = clampFloat(p.ExplosionStrength, parameter.MinExplosionStrength, parameter.MaxExplosionStrength, parameter.DefaultExplosionStrength)
	p.OrbitSpeed = clampFloat(p.OrbitSpeed, -parameter.MaxOrbitSpeed, parameter.MaxOrbitSpeed, 0)
	p.GroundSpeed = clampFloat(p.GroundSpeed, -parameter.MaxGroundSpeed, parameter.MaxGroundSpeed, 0)
	p.TimeScale = clampFloat(p.TimeScale, parameter.MinTimeScale, parameter.MaxTimeScale, parameter.DefaultTimeScale)
	p.FireflyCount = clampInt(p.FireflyCount, 0, parameter.MaxFireflyCount)
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat bounds v, replacing NaN with nan
func clampFloat(v, lo, hi, nan float64) float64 {
	if math.IsNaN(v) {
		return nan
	}
	return math.Max(lo, math.Min(hi, v))
}
