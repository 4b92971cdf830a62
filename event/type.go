package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventSpellCast signals a spell was dispatched
	// Trigger: Orchestrator.Cast
	// Consumer: audio, log | Payload: *SpellCastPayload
	EventSpellCast EventType = iota

	// EventEffectSpawned signals a particle burst was created
	// Trigger: spells, projectile expiry, beam end timer
	// Consumer: log | Payload: *EffectSpawnedPayload
	EventEffectSpawned

	// EventProjectileSpawned signals a projectile launch
	// Trigger: Bolt, Fireball | Payload: *ProjectilePayload
	EventProjectileSpawned

	// EventProjectileHit signals a projectile struck an entity
	// Trigger: projectile update | Consumer: audio | Payload: *ProjectilePayload
	EventProjectileHit

	// EventProjectileExpired signals a projectile outlived its max life
	// Trigger: projectile update | Consumer: audio | Payload: *ProjectilePayload
	EventProjectileExpired

	// EventEntityDestroyed signals an entity was removed by a hit
	// Trigger: projectile hit, beam | Payload: *EntityPayload
	EventEntityDestroyed

	// EventEntityShattered signals an entity broke into fragments
	// Trigger: removal of an entity with a fragment template
	// Consumer: audio | Payload: *EntityPayload
	EventEntityShattered

	// EventRespawn signals a bulk entity respawn
	// Trigger: Reinitialize, structural tuning | Payload: *RespawnPayload
	EventRespawn

	// EventImpulse signals knockback was applied
	// Trigger: explosions | Payload: *ImpulsePayload
	EventImpulse

	// EventTimeScale signals a time scale change
	// Trigger: Frost, its restore timer, tuning | Payload: *TimeScalePayload
	EventTimeScale

	// EventPhysicsFault signals a failed physics call; the frame continues without it
	// Trigger: physics step or respawn failure | Payload: *PhysicsFaultPayload
	EventPhysicsFault

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	"EventSpellCast",
	"EventEffectSpawned",
	"EventProjectileSpawned",
	"EventProjectileHit",
	"EventProjectileExpired",
	"EventEntityDestroyed",
	"EventEntityShattered",
	"EventRespawn",
	"EventImpulse",
	"EventTimeScale",
	"EventPhysicsFault",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeNames[t]
	}
	return "EventUnknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// AllTypes returns every event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, eventTypeCount)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}
