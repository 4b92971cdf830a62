package sim

import (
	"fmt"

	"github.com/lixenwraith/magic-lab/effect"
	"github.com/lixenwraith/magic-lab/event"
	"github.com/lixenwraith/magic-lab/force"
	"github.com/lixenwraith/magic-lab/hit"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/parameter/visual"
	"github.com/lixenwraith/magic-lab/projectile"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/spell"
	"github.com/lixenwraith/magic-lab/vmath"
)

// Cast runs a spell from the wand tip along the current aim
func (o *Orchestrator) Cast(k spell.Kind) error {
	s := &o.state
	tip := s.Scene.Wand.Tip()
	dir := s.Scene.Wand.Direction()

	switch k {
	case spell.Burst:
		o.explode(tip, s.Params.ExplosionStrength)

	case spell.Bolt:
		o.launch(projectile.Spec{
			Origin:    tip,
			Direction: dir,
			Speed:     parameter.BoltSpeed,
			MaxLife:   parameter.BoltMaxLife,
			OnExpire:  projectile.Explode(),
			Color:     visual.BoltColor,
			Size:      parameter.BoltSize,
		})

	case spell.Fireball:
		o.launch(projectile.Spec{
			Origin:    tip,
			Direction: dir,
			Speed:     parameter.FireballSpeed,
			MaxLife:   parameter.FireballMaxLife,
			OnExpire:  projectile.SpawnEffect(visual.FireColor),
			Color:     visual.FireColor,
			Size:      parameter.FireballSize,
		})

	case spell.Lightning:
		o.lightning(tip, dir)

	case spell.Frost:
		o.frost(tip)

	default:
		return fmt.Errorf("cast %v: %w", k, ErrUnknownSpell)
	}

	s.Scene.Wand.Swing()
	o.m.casts.Add(1)
	o.m.lastSpell.Store(k.String())
	o.emit(event.EventSpellCast, &event.SpellCastPayload{Kind: k, Origin: tip, Direction: dir})
	o.log.Debug("spell cast", "spell", k, "frame", s.Frame)
	return nil
}

// explode bursts particles at center and knocks back entities in range
func (o *Orchestrator) explode(center vmath.Vec3F, strength float64) {
	o.spawnEffect(effect.Spec{
		Center:   center,
		Count:    o.state.Params.ParticleCount,
		Color:    visual.ExplosionColor,
		Strength: strength,
		Size:     parameter.ExplosionParticleSize,
	})

	peak := strength * parameter.ExplosionImpulseFactor
	applied := force.ApplyRadialImpulse(o.world, o.state.Entities.Live(), center, parameter.ExplosionRadius, peak)
	o.emit(event.EventImpulse, &event.ImpulsePayload{
		Center:   center,
		Radius:   parameter.ExplosionRadius,
		Peak:     peak,
		Impulses: len(applied),
	})
}

func (o *Orchestrator) launch(spec projectile.Spec) {
	id := o.state.Projectiles.SpawnSpec(spec)
	o.emit(event.EventProjectileSpawned, &event.ProjectilePayload{
		ID:       id,
		Position: spec.Origin,
		Action:   spec.OnExpire.Kind,
	})
}

// lightning hits every entity along the beam at once; the beam overlay and its end burst are timed in wall time
func (o *Orchestrator) lightning(tip, dir vmath.Vec3F) {
	s := &o.state
	beam := hit.NewBeam(tip, dir, parameter.BeamRange, parameter.BeamRadius)

	for _, e := range hit.BeamHits(beam, s.Entities.Live()) {
		pos := e.Physics.Position
		if !o.destroyEntity(e.ID) {
			continue
		}
		o.spawnEffect(effect.Spec{
			Center:   pos,
			Count:    s.Params.ParticleCount / parameter.ImpactParticleDivisor,
			Color:    visual.LightningColor,
			Strength: s.Params.ExplosionStrength,
			Size:     parameter.SparkParticleSize,
		})
	}

	end := beam.End()
	id := s.Scene.AddOverlay(scene.Overlay{
		Kind:  scene.OverlayBeam,
		From:  tip,
		To:    end,
		Color: visual.LightningColor,
	})
	o.timers.Schedule(o.now, parameter.BeamVisibleDuration, timerTask{kind: timerBeamEnd, overlay: id, at: end})
}

// frost rings the ground under the tip, bursts white at the tip and slows time for a wall-clock interval
func (o *Orchestrator) frost(tip vmath.Vec3F) {
	s := &o.state
	ring := s.Scene.AddOverlay(scene.Overlay{
		Kind:   scene.OverlayRing,
		From:   vmath.Vec3F{X: tip.X, Y: 0.01, Z: tip.Z},
		Radius: parameter.FrostRingRadius,
		Color:  visual.FrostRingColor,
	})
	o.timers.Schedule(o.now, parameter.FrostRingDuration, timerTask{kind: timerRingEnd, overlay: ring})

	o.spawnEffect(effect.Spec{
		Center:   tip,
		Count:    s.Params.ParticleCount,
		Color:    visual.FrostColor,
		Strength: s.Params.ExplosionStrength,
		Size:     parameter.SparkParticleSize,
	})

	o.frostGen++
	o.frostActive = true
	o.setTimeScale(min(s.Params.TimeScale, parameter.FrostTimeScale))
	o.timers.Schedule(o.now, parameter.FrostSlowDuration, timerTask{kind: timerRestoreTimeScale, generation: o.frostGen})
}
