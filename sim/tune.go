package sim

import (
	"fmt"
	"math"

	"github.com/lixenwraith/magic-lab/event"
	"github.com/lixenwraith/magic-lab/parameter"
)

// ParamValue reads the current value of p
func (o *Orchestrator) ParamValue(p Param) (float64, error) {
	ps := &o.state.Params
	switch p {
	case ParamEntityCount:
		return float64(ps.EntityCount), nil
	case ParamSpawnRadius:
		return ps.SpawnRadius, nil
	case ParamParticleCount:
		return float64(ps.ParticleCount), nil
	case ParamExplosionStrength:
		return ps.ExplosionStrength, nil
	case ParamOrbitSpeed:
		return ps.OrbitSpeed, nil
	case ParamGroundSpeed:
		return ps.GroundSpeed, nil
	case ParamTimeScale:
		return ps.TimeScale, nil
	case ParamFireflyCount:
		return float64(ps.FireflyCount), nil
	default:
		return 0, fmt.Errorf("read %v: %w", p, ErrUnknownParam)
	}
}

// Tune sets p to value after clamping and returns the applied value
// Continuous parameters take effect on the next frame; structural ones rebuild entities or fireflies now
func (o *Orchestrator) Tune(p Param, value float64) (float64, error) {
	next := o.state.Params
	switch p {
	case ParamEntityCount:
		next.EntityCount = roundCount(value)
	case ParamSpawnRadius:
		next.SpawnRadius = value
	case ParamParticleCount:
		next.ParticleCount = roundCount(value)
	case ParamExplosionStrength:
		next.ExplosionStrength = value
	case ParamOrbitSpeed:
		next.OrbitSpeed = value
	case ParamGroundSpeed:
		next.GroundSpeed = value
	case ParamTimeScale:
		next.TimeScale = value
	case ParamFireflyCount:
		next.FireflyCount = roundCount(value)
	default:
		return 0, fmt.Errorf("tune %v: %w", p, ErrUnknownParam)
	}

	prev := o.state.Params
	o.state.Params = next.Sanitize()
	applied, _ := o.ParamValue(p)
	o.log.Debug("param tuned", "param", p, "requested", value, "applied", applied)

	switch p {
	case ParamEntityCount:
		if o.state.Params.EntityCount != prev.EntityCount {
			return applied, o.respawn()
		}
	case ParamSpawnRadius:
		if o.state.Params.SpawnRadius != prev.SpawnRadius {
			return applied, o.Reinitialize()
		}
	case ParamFireflyCount:
		if o.state.Params.FireflyCount != prev.FireflyCount {
			o.state.Scene.Reinitialize(o.state.Params.FireflyCount, o.state.Params.SpawnRadius)
		}
	case ParamTimeScale:
		if o.frostActive {
			o.setTimeScale(min(o.state.Params.TimeScale, parameter.FrostTimeScale))
		} else {
			o.setTimeScale(o.state.Params.TimeScale)
		}
	}
	return applied, nil
}

func roundCount(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// Reinitialize respawns every entity and resamples the fireflies with the current parameters
func (o *Orchestrator) Reinitialize() error {
	o.state.Scene.Reinitialize(o.state.Params.FireflyCount, o.state.Params.SpawnRadius)
	return o.respawn()
}

// respawn rebuilds the entity set atomically between frames
// On physics failure the registry is left empty, the fault is reported and the error returned
func (o *Orchestrator) respawn() error {
	count, radius := o.state.Params.EntityCount, o.state.Params.SpawnRadius
	if err := o.state.Entities.Respawn(count, radius); err != nil {
		o.physicsFault("respawn", err)
		o.publishMetrics()
		return err
	}
	o.emit(event.EventRespawn, &event.RespawnPayload{Count: count, Radius: radius})
	o.log.Info("entities respawned", "count", count, "radius", radius)
	o.publishMetrics()
	return nil
}

// Apply executes one command; quit is handled by Run and ignored here
func (o *Orchestrator) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdCast:
		return o.Cast(cmd.Spell)
	case CmdTune:
		value := cmd.Value
		if cmd.Relative {
			cur, err := o.ParamValue(cmd.Param)
			if err != nil {
				return err
			}
			value += cur
		}
		_, err := o.Tune(cmd.Param, value)
		return err
	case CmdAim:
		o.state.Scene.Wand.Aim(cmd.Yaw, cmd.Pitch)
		return nil
	case CmdReinitialize:
		return o.Reinitialize()
	case CmdQuit:
		return nil
	default:
		return fmt.Errorf("apply %d: %w", cmd.Kind, ErrUnknownCommand)
	}
}
