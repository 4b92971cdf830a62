// Package sim drives the per-frame simulation: projectiles, cosmetics, particles, physics, entity sync and timers
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/magic-lab/config"
	"github.com/lixenwraith/magic-lab/effect"
	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/event"
	"github.com/lixenwraith/magic-lab/hit"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/parameter/visual"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/projectile"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/status"
	"github.com/lixenwraith/magic-lab/vmath"
)

var (
	ErrUnknownSpell   = errors.New("unknown spell")
	ErrUnknownParam   = errors.New("unknown parameter")
	ErrUnknownCommand = errors.New("unknown command")
)

// Options configure an Orchestrator; World is required
type Options struct {
	World         physics.World
	Params        config.Params
	MaxFrameDelta float64
	Seed          int64
	Logger        *slog.Logger
	Status        *status.Registry
}

// timerKind tags real-time timer payloads
type timerKind uint8

const (
	timerBeamEnd timerKind = iota
	timerRingEnd
	timerRestoreTimeScale
)

type timerTask struct {
	kind       timerKind
	overlay    scene.OverlayID
	at         vmath.Vec3F
	generation uint64
}

// Orchestrator owns the simulation state and runs frames in a fixed order
// Not safe for concurrent use; commands reach it through Run or the caller's own goroutine
type Orchestrator struct {
	state         State
	world         physics.World
	timers        *engine.Timers[timerTask]
	queue         *event.EventQueue
	router        *event.Router[*State]
	log           *slog.Logger
	metrics       *status.Registry
	maxFrameDelta float64

	now float64

	// frostGen invalidates stale time-scale restore timers when frost is recast
	frostGen    uint64
	frostActive bool

	m frameMetrics
}

// frameMetrics caches status pointers written every frame
type frameMetrics struct {
	frames      *atomic.Int64
	dt          *status.AtomicFloat
	peakDt      *status.AtomicFloat
	timeScale   *status.AtomicFloat
	effects     *atomic.Int64
	particles   *atomic.Int64
	projectiles *atomic.Int64
	entities    *atomic.Int64
	bodies      *atomic.Int64
	casts       *atomic.Int64
	hits        *atomic.Int64
	expired     *atomic.Int64
	destroyed   *atomic.Int64
	faults      *atomic.Int64
	renderErrs  *atomic.Int64
	lastSpell   *status.AtomicString
}

func newFrameMetrics(r *status.Registry) frameMetrics {
	return frameMetrics{
		frames:      r.Ints.Get("sim.frames"),
		dt:          r.Floats.Get("sim.dt"),
		peakDt:      r.Floats.Get("sim.dt_peak"),
		timeScale:   r.Floats.Get("sim.time_scale"),
		effects:     r.Ints.Get("effect.live"),
		particles:   r.Ints.Get("effect.particles"),
		projectiles: r.Ints.Get("projectile.live"),
		entities:    r.Ints.Get("entity.live"),
		bodies:      r.Ints.Get("physics.bodies"),
		casts:       r.Ints.Get("spell.casts"),
		hits:        r.Ints.Get("projectile.hits"),
		expired:     r.Ints.Get("projectile.expired"),
		destroyed:   r.Ints.Get("entity.destroyed"),
		faults:      r.Ints.Get("physics.faults"),
		renderErrs:  r.Ints.Get("render.errors"),
		lastSpell:   r.Strings.Get("spell.last"),
	}
}

// New builds the simulation and performs the initial respawn
func New(opts Options) (*Orchestrator, error) {
	if opts.World == nil {
		return nil, fmt.Errorf("new orchestrator: nil physics world")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if !(opts.MaxFrameDelta > 0) {
		opts.MaxFrameDelta = parameter.MaxFrameDelta
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	params := opts.Params.Sanitize()

	clock := engine.NewClock()
	clock.SetTimeScale(params.TimeScale)

	queue := event.NewEventQueue()
	o := &Orchestrator{
		state: State{
			Clock:       clock,
			Effects:     effect.NewPool(rng),
			Projectiles: projectile.NewSet(),
			Entities:    entity.NewRegistry(opts.World, rng),
			Scene:       scene.New(rng),
			Params:      params,
		},
		world:         opts.World,
		timers:        engine.NewTimers[timerTask](),
		queue:         queue,
		router:        event.NewRouter[*State](queue),
		log:           opts.Logger,
		metrics:       opts.Status,
		maxFrameDelta: opts.MaxFrameDelta,
		m:             newFrameMetrics(opts.Status),
	}

	if err := o.Reinitialize(); err != nil {
		return nil, fmt.Errorf("initial spawn: %w", err)
	}
	o.publishMetrics()
	return o, nil
}

// State exposes the owned state for rendering
func (o *Orchestrator) State() *State {
	return &o.state
}

// Metrics returns the status registry the orchestrator writes to
func (o *Orchestrator) Metrics() *status.Registry {
	return o.metrics
}

// Register routes simulation events to h; handlers run at the end of each frame
func (o *Orchestrator) Register(h event.Handler[*State]) {
	o.router.Register(h)
}

// Frame runs one simulation frame for the wall-clock timestamp nowMillis
func (o *Orchestrator) Frame(nowMillis float64) FrameStats {
	s := &o.state
	var stats FrameStats

	// 1. Time
	o.now = nowMillis
	stats.RawDt = s.Clock.Tick(nowMillis)
	dt := engine.ClampDelta(stats.RawDt, o.maxFrameDelta)
	stats.Dt = dt
	s.Frame++

	// 2. Projectiles: hit test before expiry
	res := s.Projectiles.Update(dt, o, o)
	stats.Hits, stats.Expired = res.Hits, res.Expired

	// 3. Cosmetics
	s.Scene.Advance(dt, s.Params.OrbitSpeed, s.Params.GroundSpeed)

	// 4. Particles
	stats.EffectsRemoved = s.Effects.Update(dt)

	// 5. Physics
	if err := o.world.Step(parameter.PhysicsFixedStep, dt, parameter.PhysicsMaxSubsteps); err != nil {
		stats.PhysicsErr = err
		o.physicsFault("step", err)
	}

	// 6. Timed fragments, then visuals from physics
	stats.Fragments = len(s.Entities.Expire(dt))
	s.Entities.SyncVisuals(s.Scene.Elapsed)

	// 7. Real-time timers
	due := o.timers.Due(nowMillis)
	for _, task := range due {
		o.runTimer(task)
	}
	stats.TimersFired = len(due)

	o.publishMetrics()
	o.m.dt.Set(dt)
	o.m.peakDt.Max(dt)
	o.router.DispatchAll(s)
	return stats
}

// Probe answers projectile hit queries against live entities
func (o *Orchestrator) Probe(pos vmath.Vec3F) (projectile.TargetID, bool) {
	e, ok := hit.Sphere(pos, parameter.HitRadius, o.state.Entities.Live())
	if !ok {
		return 0, false
	}
	return projectile.TargetID(e.ID), true
}

// ProjectileHit destroys the struck entity and bursts at the impact point
func (o *Orchestrator) ProjectileHit(p *projectile.Projectile) {
	o.m.hits.Add(1)
	target := entity.ID(p.Target)
	o.destroyEntity(target)

	color := p.Color
	if p.OnExpire.Kind == projectile.ActionSpawnEffect {
		color = p.OnExpire.Color
	}
	o.spawnEffect(effect.Spec{
		Center:   p.Position,
		Count:    o.state.Params.ParticleCount / parameter.ImpactParticleDivisor,
		Color:    color,
		Strength: o.state.Params.ExplosionStrength,
		Size:     parameter.SparkParticleSize,
	})
	o.emit(event.EventProjectileHit, &event.ProjectilePayload{
		ID:       p.ID,
		Position: p.Position,
		Action:   p.OnExpire.Kind,
		Target:   target,
	})
}

// ProjectileExpired interprets the projectile's on-expire action
func (o *Orchestrator) ProjectileExpired(p *projectile.Projectile) {
	o.m.expired.Add(1)
	strength := o.state.Params.ExplosionStrength
	if p.OnExpire.Strength > 0 {
		strength = p.OnExpire.Strength
	}

	switch p.OnExpire.Kind {
	case projectile.ActionExplode:
		o.explode(p.Position, strength)
	case projectile.ActionSpawnEffect:
		o.spawnEffect(effect.Spec{
			Center:   p.Position,
			Count:    o.state.Params.ParticleCount,
			Color:    p.OnExpire.Color,
			Strength: strength,
			Size:     parameter.SparkParticleSize,
		})
	case projectile.ActionNone:
	}

	o.emit(event.EventProjectileExpired, &event.ProjectilePayload{
		ID:       p.ID,
		Position: p.Position,
		Action:   p.OnExpire.Kind,
	})
}

// destroyEntity removes an entity by ID; stale IDs are skipped
func (o *Orchestrator) destroyEntity(id entity.ID) bool {
	e, ok := o.state.Entities.Get(id)
	if !ok {
		return false
	}
	kind, pos := e.Kind, e.Physics.Position

	frags, ok := o.state.Entities.Remove(id)
	if !ok {
		return false
	}
	o.m.destroyed.Add(1)

	payload := &event.EntityPayload{ID: id, Kind: kind, Position: pos, Fragments: frags}
	o.emit(event.EventEntityDestroyed, payload)
	if len(frags) > 0 {
		o.emit(event.EventEntityShattered, payload)
	}
	o.log.Debug("entity destroyed", "id", id, "kind", kind, "fragments", len(frags))
	return true
}

func (o *Orchestrator) spawnEffect(spec effect.Spec) effect.ID {
	id := o.state.Effects.SpawnSpec(spec)
	o.emit(event.EventEffectSpawned, &event.EffectSpawnedPayload{
		ID:     id,
		Center: spec.Center,
		Count:  spec.Count,
		Color:  spec.Color,
	})
	return id
}

func (o *Orchestrator) physicsFault(op string, err error) {
	o.m.faults.Add(1)
	o.log.Warn("physics fault", "op", op, "error", err, "frame", o.state.Frame)
	o.emit(event.EventPhysicsFault, &event.PhysicsFaultPayload{Op: op, Err: err})
}

func (o *Orchestrator) emit(t event.EventType, payload any) {
	o.queue.Push(event.GameEvent{Type: t, Payload: payload, Frame: o.state.Frame})
}

func (o *Orchestrator) runTimer(task timerTask) {
	switch task.kind {
	case timerBeamEnd:
		o.state.Scene.RemoveOverlay(task.overlay)
		o.spawnEffect(effect.Spec{
			Center:   task.at,
			Count:    o.state.Params.ParticleCount,
			Color:    visual.LightningColor,
			Strength: o.state.Params.ExplosionStrength,
			Size:     parameter.SparkParticleSize,
		})
	case timerRingEnd:
		o.state.Scene.RemoveOverlay(task.overlay)
	case timerRestoreTimeScale:
		if task.generation != o.frostGen {
			return
		}
		o.frostActive = false
		o.setTimeScale(o.state.Params.TimeScale)
	}
}

func (o *Orchestrator) setTimeScale(scale float64) {
	from := o.state.Clock.TimeScale()
	if from == scale {
		return
	}
	o.state.Clock.SetTimeScale(scale)
	o.emit(event.EventTimeScale, &event.TimeScalePayload{From: from, To: scale})
}

func (o *Orchestrator) publishMetrics() {
	s := &o.state
	o.m.frames.Store(s.Frame)
	o.m.timeScale.Set(s.Clock.TimeScale())
	o.m.effects.Store(int64(s.Effects.Len()))
	o.m.particles.Store(int64(s.Effects.Particles()))
	o.m.projectiles.Store(int64(s.Projectiles.Len()))
	o.m.entities.Store(int64(s.Entities.Len()))
	o.m.bodies.Store(int64(o.world.BodyCount()))
}
