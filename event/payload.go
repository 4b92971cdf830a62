package event

import (
	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/effect"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/projectile"
	"github.com/lixenwraith/magic-lab/spell"
	"github.com/lixenwraith/magic-lab/vmath"
)

// GameEvent is a queued event; Frame is the orchestrator frame number at push time
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

type SpellCastPayload struct {
	Kind      spell.Kind
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
}

type EffectSpawnedPayload struct {
	ID     effect.ID
	Center vmath.Vec3F
	Count  int
	Color  core.RGB
}

type ProjectilePayload struct {
	ID       projectile.ID
	Position vmath.Vec3F
	Action   projectile.ActionKind
	// Target is set on hits
	Target entity.ID
}

type EntityPayload struct {
	ID        entity.ID
	Kind      entity.Kind
	Position  vmath.Vec3F
	Fragments []entity.ID
}

type RespawnPayload struct {
	Count  int
	Radius float64
}

type ImpulsePayload struct {
	Center   vmath.Vec3F
	Radius   float64
	Peak     float64
	Impulses int
}

type TimeScalePayload struct {
	From float64
	To   float64
}

type PhysicsFaultPayload struct {
	Op  string
	Err error
}
