// Package entity owns the physics-backed scene objects and keeps their visuals in sync
package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/vmath"
)

// ErrRespawn wraps a physics failure during bulk respawn; the registry is left empty
var ErrRespawn = errors.New("respawn failed")

// Registry is the sole owner of entity physics bodies
type Registry struct {
	world    physics.World
	rng      *rand.Rand
	entities []*Entity
	nextID   ID

	created   uint64
	destroyed uint64
}

// NewRegistry creates an empty registry bound to a physics world
func NewRegistry(world physics.World, rng *rand.Rand) *Registry {
	return &Registry{
		world: world,
		rng:   rng,
	}
}

// Respawn destroys every entity and creates count new ones in the spawn box
// Negative count clamps to 0, non-positive radius to the minimum spawn radius
// On a body creation failure everything created so far is released and the registry stays empty
func (r *Registry) Respawn(count int, radius float64) error {
	if count < 0 {
		count = 0
	}
	if !(radius >= parameter.MinSpawnRadius) {
		radius = parameter.MinSpawnRadius
	}

	r.Clear()

	fresh := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		kind := spawnKinds[i%len(spawnKinds)]
		pos := vmath.Vec3F{
			X: (r.rng.Float64()*2 - 1) * radius,
			Y: parameter.SpawnHeightMin + r.rng.Float64()*parameter.SpawnHeightSpan,
			Z: (r.rng.Float64()*2 - 1) * radius,
		}
		e, err := r.create(kind, pos)
		if err != nil {
			for _, f := range fresh {
				r.world.RemoveBody(f.body)
			}
			return fmt.Errorf("%w: entity %d of %d: %w", ErrRespawn, i, count, err)
		}
		e.Phase = r.rng.Float64() * vmath.TwoPi
		if kind == KindTarget {
			e.Fragments = DefaultFragmentTemplate()
		}
		fresh = append(fresh, e)
	}

	r.entities = fresh
	r.created += uint64(len(fresh))
	return nil
}

func (r *Registry) create(kind Kind, pos vmath.Vec3F) (*Entity, error) {
	mass, half := archetype(kind)
	return r.createSized(kind, pos, mass, half)
}

func (r *Registry) createSized(kind Kind, pos vmath.Vec3F, mass, half float64) (*Entity, error) {
	body, err := r.world.CreateBody(mass, physics.Box(half), pos)
	if err != nil {
		return nil, err
	}
	r.nextID++
	t := Transform{Position: pos, Orientation: vmath.QuatIdent()}
	return &Entity{
		ID:         r.nextID,
		Kind:       kind,
		Mass:       mass,
		HalfExtent: half,
		Physics:    t,
		Visual:     t,
		BaseHeight: pos.Y,
		body:       body,
	}, nil
}

// Remove destroys one entity and releases its body
// Entities with a fragment template shatter; the fragment IDs are returned
// Unknown or already removed IDs report false
func (r *Registry) Remove(id ID) ([]ID, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	e := r.entities[idx]
	r.detach(idx)

	if e.Fragments == nil || e.Fragments.Count <= 0 {
		return nil, true
	}
	return r.shatter(e), true
}

// shatter spawns fragments around e's last position, each kicked outward
// A fragment whose body cannot be created is skipped
func (r *Registry) shatter(e *Entity) []ID {
	tmpl := e.Fragments
	half := e.HalfExtent * tmpl.Scale
	mass := e.Mass / float64(tmpl.Count)

	ids := make([]ID, 0, tmpl.Count)
	for i := 0; i < tmpl.Count; i++ {
		dir := vmath.RandomUnit3F(r.rng)
		if dir.Y < 0 {
			dir.Y = -dir.Y
		}
		pos := vmath.V3FAddScaled(e.Physics.Position, dir, half)

		f, err := r.createSized(KindFragment, pos, mass, half)
		if err != nil {
			continue
		}
		f.TTL = tmpl.TTL
		f.Phase = e.Phase
		r.world.ApplyImpulse(f.body, vmath.V3FScale(dir, tmpl.Impulse), pos)

		r.entities = append(r.entities, f)
		r.created++
		ids = append(ids, f.ID)
	}
	return ids
}

// Expire ages timed entities by dt and removes those past their ttl without shattering
func (r *Registry) Expire(dt float64) []ID {
	var expired []ID
	for i := 0; i < len(r.entities); {
		e := r.entities[i]
		if e.TTL <= 0 {
			i++
			continue
		}
		e.Age += dt
		if e.Age > e.TTL {
			expired = append(expired, e.ID)
			r.detach(i)
			continue
		}
		i++
	}
	return expired
}

// SyncVisuals copies body state into each entity, then layers cosmetic motion on the visual transform only
// Entities whose body the world no longer knows keep their last transform
func (r *Registry) SyncVisuals(elapsed float64) int {
	synced := 0
	for _, e := range r.entities {
		st, ok := r.world.State(e.body)
		if ok {
			e.Physics.Position = st.Position
			e.Physics.Orientation = st.Orientation
			synced++
		}
		e.applyCosmetic(elapsed)
	}
	return synced
}

// detach releases the body and removes index i preserving order
func (r *Registry) detach(i int) {
	e := r.entities[i]
	r.world.RemoveBody(e.body)
	copy(r.entities[i:], r.entities[i+1:])
	r.entities[len(r.entities)-1] = nil
	r.entities = r.entities[:len(r.entities)-1]
	r.destroyed++
}

func (r *Registry) indexOf(id ID) int {
	for i, e := range r.entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Clear destroys every entity without shattering
func (r *Registry) Clear() {
	for _, e := range r.entities {
		r.world.RemoveBody(e.body)
	}
	r.destroyed += uint64(len(r.entities))
	for i := range r.entities {
		r.entities[i] = nil
	}
	r.entities = r.entities[:0]
}

// Live returns entities in creation order; owned by the registry, valid until the next mutation
func (r *Registry) Live() []*Entity {
	return r.entities
}

func (r *Registry) Get(id ID) (*Entity, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.entities[i], true
	}
	return nil, false
}

func (r *Registry) Len() int {
	return len(r.entities)
}

// Created and Destroyed return lifetime counters
func (r *Registry) Created() uint64   { return r.created }
func (r *Registry) Destroyed() uint64 { return r.destroyed }
