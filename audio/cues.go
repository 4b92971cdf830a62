package audio

import (
	"github.com/lixenwraith/magic-lab/event"
	"github.com/lixenwraith/magic-lab/spell"
)

// Cuer is anything that can play a sound type
type Cuer interface {
	Play(s SoundType) bool
}

// CueFor maps a simulation event to its sound, if any
func CueFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventSpellCast:
		p, ok := ev.Payload.(*event.SpellCastPayload)
		if !ok {
			return 0, false
		}
		switch p.Kind {
		case spell.Burst, spell.Bolt:
			return SoundWhoosh, true
		case spell.Fireball:
			return SoundRoar, true
		case spell.Lightning:
			return SoundZap, true
		case spell.Frost:
			return SoundChime, true
		}
		return 0, false
	case event.EventProjectileHit, event.EventEntityShattered, event.EventImpulse:
		return SoundThud, true
	default:
		return 0, false
	}
}

// CueHandler routes events to a Cuer; T is the router context, unused here
type CueHandler[T any] struct {
	cuer Cuer
}

func NewCueHandler[T any](c Cuer) *CueHandler[T] {
	return &CueHandler[T]{cuer: c}
}

func (h *CueHandler[T]) HandleEvent(_ T, ev event.GameEvent) {
	if s, ok := CueFor(ev); ok {
		h.cuer.Play(s)
	}
}

func (h *CueHandler[T]) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpellCast,
		event.EventProjectileHit,
		event.EventEntityShattered,
		event.EventImpulse,
	}
}
