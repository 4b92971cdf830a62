package parameter

// Scene Layout
const (
	// GroundSize is the edge length of the magic circle plane
	GroundSize = 20.0

	// PortalRadius is the radius of the animated portal disc
	PortalRadius = 3.0

	// WandTipX/Y/Z is the world position of the wand tip
	WandTipX = 0.0
	WandTipY = 4.1
	WandTipZ = 0.0

	// CameraX/Y/Z is the initial camera position; it orbits the origin
	CameraX = 0.0
	CameraY = 5.0
	CameraZ = 10.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV  = 60.0
	CameraNear = 0.1
	CameraFar  = 100.0
)

// Cosmetic Motion
const (
	// DefaultOrbitSpeed is camera orbit in revolutions per second
	DefaultOrbitSpeed = 0.1

	// DefaultGroundSpeed is ground rotation in radians per second
	DefaultGroundSpeed = 0.5

	// MaxOrbitSpeed and MaxGroundSpeed bound live tuning
	MaxOrbitSpeed  = 2.0
	MaxGroundSpeed = 2.0
)
