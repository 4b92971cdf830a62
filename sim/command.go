package sim

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/magic-lab/spell"
)

// Param names a live-tunable parameter
type Param uint8

const (
	ParamEntityCount Param = iota
	ParamSpawnRadius
	ParamParticleCount
	ParamExplosionStrength
	ParamOrbitSpeed
	ParamGroundSpeed
	ParamTimeScale
	ParamFireflyCount

	paramCount
)

var paramNames = [paramCount]string{
	"entity_count",
	"spawn_radius",
	"particle_count",
	"explosion_strength",
	"orbit_speed",
	"ground_speed",
	"time_scale",
	"firefly_count",
}

func (p Param) String() string {
	if p < paramCount {
		return paramNames[p]
	}
	return fmt.Sprintf("param(%d)", uint8(p))
}

// Structural reports whether changing p rebuilds entities or fireflies
func (p Param) Structural() bool {
	return p == ParamEntityCount || p == ParamSpawnRadius || p == ParamFireflyCount
}

// Params returns every tunable parameter in declaration order
func Params() []Param {
	out := make([]Param, paramCount)
	for i := range out {
		out[i] = Param(i)
	}
	return out
}

// ParseParam resolves a parameter by its snake_case name
func ParseParam(name string) (Param, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range paramNames {
		if n == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// CommandKind tags a Command
type CommandKind uint8

const (
	CmdCast CommandKind = iota
	CmdTune
	CmdAim
	CmdReinitialize
	CmdQuit
)

// Command is an input request applied between frames
type Command struct {
	Kind  CommandKind
	Spell spell.Kind

	Param Param
	Value float64
	// Relative adds Value to the current parameter instead of replacing it
	Relative bool

	Yaw   float64
	Pitch float64
}

func Cast(k spell.Kind) Command {
	return Command{Kind: CmdCast, Spell: k}
}

func Tune(p Param, value float64) Command {
	return Command{Kind: CmdTune, Param: p, Value: value}
}

func Nudge(p Param, delta float64) Command {
	return Command{Kind: CmdTune, Param: p, Value: delta, Relative: true}
}

func Aim(dYaw, dPitch float64) Command {
	return Command{Kind: CmdAim, Yaw: dYaw, Pitch: dPitch}
}

func Reinitialize() Command {
	return Command{Kind: CmdReinitialize}
}

func Quit() Command {
	return Command{Kind: CmdQuit}
}
