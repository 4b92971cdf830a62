package parameter

// Physics Stepping
const (
	// PhysicsFixedStep is the internal integration step in seconds
	PhysicsFixedStep = 1.0 / 60.0

	// PhysicsMaxSubsteps caps internal steps per frame
	PhysicsMaxSubsteps = 3

	// PhysicsLinearDamping and PhysicsAngularDamping are fractional velocity loss per second
	PhysicsLinearDamping  = 0.01
	PhysicsAngularDamping = 0.01

	// GroundRestitution is the bounce factor against the ground plane
	GroundRestitution = 0.3

	// BodyRestitution is the bounce factor between bodies
	BodyRestitution = 0.5

	// ContactMargin is the extra separation applied when resolving overlap
	ContactMargin = 0.0625
)

// Knockback
const (
	// ExplosionRadius is the reach of radial knockback in units
	ExplosionRadius = 5.0

	// ExplosionImpulseFactor converts explosion strength into peak impulse
	ExplosionImpulseFactor = 10.0

	// DefaultExplosionStrength scales both particle speed and knockback
	DefaultExplosionStrength = 5.0

	// MinExplosionStrength and MaxExplosionStrength bound live tuning
	MinExplosionStrength = 1.0
	MaxExplosionStrength = 20.0
)
