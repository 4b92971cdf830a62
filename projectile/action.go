package projectile

import "github.com/lixenwraith/magic-lab/core"

// ActionKind tags what happens when a projectile times out
type ActionKind uint8

const (
	// ActionExplode spawns the default explosion with knockback
	ActionExplode ActionKind = iota
	// ActionSpawnEffect spawns a colored burst without knockback
	ActionSpawnEffect
	// ActionNone removes the projectile silently
	ActionNone
)

func (k ActionKind) String() string {
	switch k {
	case ActionExplode:
		return "explode"
	case ActionSpawnEffect:
		return "spawn_effect"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// Action is the on-expire descriptor stored by value on a projectile
type Action struct {
	Kind  ActionKind
	Color core.RGB
	// Strength overrides the configured explosion strength when positive
	Strength float64
}

// Explode is the default expire action
func Explode() Action {
	return Action{Kind: ActionExplode}
}

// SpawnEffect bursts particles of color at the expiry point
func SpawnEffect(color core.RGB) Action {
	return Action{Kind: ActionSpawnEffect, Color: color}
}

// None drops the projectile without an effect
func None() Action {
	return Action{Kind: ActionNone}
}
