package parameter

// Entity Spawning
const (
	// DefaultEntityCount is the initial number of dynamic entities
	DefaultEntityCount = 10

	// MaxEntityCount bounds live tuning
	MaxEntityCount = 100

	// DefaultSpawnRadius is the half-width of the spawn box on X/Z
	DefaultSpawnRadius = 10.0

	// MinSpawnRadius is the smallest accepted spawn radius (clamp target)
	MinSpawnRadius = 1e-3

	// MaxSpawnRadius bounds live tuning
	MaxSpawnRadius = 50.0

	// SpawnHeightMin and SpawnHeightSpan define the spawn height band [min, min+span)
	SpawnHeightMin  = 1.0
	SpawnHeightSpan = 5.0
)

// Archetypes
const (
	BoxMass       = 1.0
	BoxHalfExtent = 0.5

	BookMass          = 0.6
	BookHalfExtent    = 0.4
	BookBobAmplitude  = 0.15
	BookBobFrequency  = 1.7
	BookSwayAmplitude = 0.25

	TargetMass       = 1.5
	TargetHalfExtent = 0.6
)

// Shatter
const (
	// ShatterFragments is the number of fragments a shattering entity breaks into
	ShatterFragments = 4

	// ShatterImpulse is the outward impulse magnitude applied to each fragment
	ShatterImpulse = 3.0

	// FragmentScale is the size ratio of a fragment to its parent
	FragmentScale = 0.4

	// FragmentTTL is the lifetime of a fragment in seconds
	FragmentTTL = 4.0
)
