// Package projectile moves kinematic spell projectiles and resolves their hits and timeouts
package projectile

import (
	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/vmath"
)

// ID identifies a projectile; never reused within a set
type ID uint64

// TargetID is the opaque identity of whatever a projectile struck
type TargetID uint64

// State is the resolution of a projectile after an update
type State uint8

const (
	StateLive State = iota
	StateHit
	StateExpired
)

// Projectile is a point moving at constant velocity
type Projectile struct {
	ID       ID
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Life     float64
	MaxLife  float64
	OnExpire Action
	Color    core.RGB
	Size     float64
	State    State
	// Target is set when State is StateHit
	Target TargetID
}

// Targets answers hit queries against the current entity set
type Targets interface {
	Probe(pos vmath.Vec3F) (TargetID, bool)
}

// Handler receives resolved projectiles; called synchronously from Update
// Handlers must not spawn into the set being updated
type Handler interface {
	ProjectileHit(p *Projectile)
	ProjectileExpired(p *Projectile)
}

// Spec describes a projectile at spawn
type Spec struct {
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
	Speed     float64
	MaxLife   float64
	OnExpire  Action
	Color     core.RGB
	Size      float64
}

// Result counts resolutions of one update
type Result struct {
	Hits    int
	Expired int
}

// Set owns every live projectile
type Set struct {
	items  []*Projectile
	nextID ID
}

func NewSet() *Set {
	return &Set{}
}

// Spawn launches a projectile from origin along direction
// A degenerate direction falls back to -Z
func (s *Set) Spawn(origin, direction vmath.Vec3F, speed, maxLife float64, onExpire Action) ID {
	return s.SpawnSpec(Spec{
		Origin:    origin,
		Direction: direction,
		Speed:     speed,
		MaxLife:   maxLife,
		OnExpire:  onExpire,
	})
}

func (s *Set) SpawnSpec(spec Spec) ID {
	s.nextID++
	dir := vmath.V3FNormalizeOr(spec.Direction, vmath.V3FFwd)
	s.items = append(s.items, &Projectile{
		ID:       s.nextID,
		Position: spec.Origin,
		Velocity: vmath.V3FScale(dir, spec.Speed),
		MaxLife:  spec.MaxLife,
		OnExpire: spec.OnExpire,
		Color:    spec.Color,
		Size:     spec.Size,
	})
	return s.nextID
}

// Update moves every projectile by dt, then resolves it
// The hit test runs before the lifetime check, so a projectile that would do both resolves as a hit
// Resolved projectiles are removed before Update returns; targets may be nil to disable hits
func (s *Set) Update(dt float64, targets Targets, handler Handler) Result {
	if dt < 0 {
		dt = 0
	}

	var res Result
	kept := s.items[:0]
	for _, p := range s.items {
		p.Position = vmath.V3FAddScaled(p.Position, p.Velocity, dt)
		p.Life += dt

		if targets != nil {
			if target, ok := targets.Probe(p.Position); ok {
				p.State = StateHit
				p.Target = target
				res.Hits++
				if handler != nil {
					handler.ProjectileHit(p)
				}
				continue
			}
		}

		if p.Life > p.MaxLife {
			p.State = StateExpired
			res.Expired++
			if handler != nil {
				handler.ProjectileExpired(p)
			}
			continue
		}

		kept = append(kept, p)
	}

	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return res
}

// Live returns projectiles in spawn order; valid until the next Spawn or Update
func (s *Set) Live() []*Projectile {
	return s.items
}

func (s *Set) Get(id ID) (*Projectile, bool) {
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (s *Set) Len() int {
	return len(s.items)
}

func (s *Set) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
