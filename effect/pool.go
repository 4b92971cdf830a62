package effect

import (
	"math/rand"

	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

// ID identifies a spawned effect; never reused within a pool
type ID uint64

// Effect is a point-cloud burst
// Positions and Velocities always have the same length, fixed at spawn
type Effect struct {
	ID         ID
	Color      core.RGB
	Size       float64
	Positions  []vmath.Vec3F
	Velocities []vmath.Vec3F
	Age        float64
	TTL        float64
	// Drift is a per-axis displacement rate applied to every particle on top of its velocity
	Drift vmath.Vec3F
}

// Count returns the particle count
func (e *Effect) Count() int {
	return len(e.Positions)
}

// Expired reports whether the effect has outlived its ttl
func (e *Effect) Expired() bool {
	return e.Age > e.TTL
}

// Spec fully describes a burst; zero Size, TTL fall back to pool defaults
type Spec struct {
	Center   vmath.Vec3F
	Count    int
	Color    core.RGB
	Strength float64
	Size     float64
	TTL      float64
	Drift    *vmath.Vec3F
}

// Pool owns every live effect
type Pool struct {
	effects []*Effect
	nextID  ID
	rng     *rand.Rand

	// SpeedFactor converts spawn strength into particle speed
	SpeedFactor  float64
	DefaultTTL   float64
	DefaultSize  float64
	DefaultDrift vmath.Vec3F

	spawned uint64
	expired uint64
}

// NewPool creates an empty pool drawing particle directions from rng
func NewPool(rng *rand.Rand) *Pool {
	return &Pool{
		rng:          rng,
		SpeedFactor:  parameter.ParticleSpeedFactor,
		DefaultTTL:   parameter.EffectTTL,
		DefaultSize:  parameter.ExplosionParticleSize,
		DefaultDrift: vmath.Vec3F{Y: -parameter.ParticleGravity * parameter.ParticleGravityFactor},
	}
}

// Spawn creates a burst of count particles at center with default lifetime and drift
func (p *Pool) Spawn(center vmath.Vec3F, count int, color core.RGB, strength float64) ID {
	return p.SpawnSpec(Spec{Center: center, Count: count, Color: color, Strength: strength})
}

// SpawnSpec creates a burst from a full description
// Every particle starts at the centre moving along a random unit direction at Strength*SpeedFactor
// A non-positive count yields an empty effect that is culled on the next update
func (p *Pool) SpawnSpec(s Spec) ID {
	count := s.Count
	if count < 0 {
		count = 0
	}

	e := &Effect{
		ID:         p.allocID(),
		Color:      s.Color,
		Size:       s.Size,
		TTL:        s.TTL,
		Drift:      p.DefaultDrift,
		Positions:  make([]vmath.Vec3F, count),
		Velocities: make([]vmath.Vec3F, count),
	}
	if e.Size <= 0 {
		e.Size = p.DefaultSize
	}
	if e.TTL <= 0 {
		e.TTL = p.DefaultTTL
	}
	if s.Drift != nil {
		e.Drift = *s.Drift
	}

	speed := s.Strength * p.SpeedFactor
	for i := 0; i < count; i++ {
		e.Positions[i] = s.Center
		e.Velocities[i] = vmath.V3FScale(vmath.RandomUnit3F(p.rng), speed)
	}

	p.effects = append(p.effects, e)
	p.spawned++
	return e.ID
}

func (p *Pool) allocID() ID {
	p.nextID++
	return p.nextID
}

// Update advances every effect by dt and culls expired ones in place
// Returns the number of effects removed
func (p *Pool) Update(dt float64) int {
	if dt < 0 {
		dt = 0
	}

	kept := p.effects[:0]
	removed := 0
	for _, e := range p.effects {
		e.Age += dt
		for i := range e.Positions {
			pos := vmath.V3FAddScaled(e.Positions[i], e.Velocities[i], dt)
			e.Positions[i] = vmath.V3FAddScaled(pos, e.Drift, dt)
		}

		if e.Expired() || len(e.Positions) == 0 {
			removed++
			continue
		}
		kept = append(kept, e)
	}

	// Release references in the dropped tail
	for i := len(kept); i < len(p.effects); i++ {
		p.effects[i] = nil
	}
	p.effects = kept
	p.expired += uint64(removed)
	return removed
}

// Live returns the live effects in spawn order
// The slice is owned by the pool and valid until the next Spawn or Update
func (p *Pool) Live() []*Effect {
	return p.effects
}

func (p *Pool) Get(id ID) (*Effect, bool) {
	for _, e := range p.effects {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (p *Pool) Len() int {
	return len(p.effects)
}

// Particles returns the total live particle count
func (p *Pool) Particles() int {
	n := 0
	for _, e := range p.effects {
		n += len(e.Positions)
	}
	return n
}

// Clear drops every effect
func (p *Pool) Clear() {
	for i := range p.effects {
		p.effects[i] = nil
	}
	p.effects = p.effects[:0]
}

// Spawned and Expired return lifetime counters
func (p *Pool) Spawned() uint64 { return p.spawned }
func (p *Pool) Expired() uint64 { return p.expired }
