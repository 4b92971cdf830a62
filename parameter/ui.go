package parameter

import "time"

// Layout
const (
	// HUDRows is the bottom rows reserved for metrics, params and key help
	HUDRows = 3

	// TerminalCellAspect is the height/width ratio of a terminal cell
	TerminalCellAspect = 2.0

	// WindowWidth and WindowHeight are the initial ebiten window size in pixels
	WindowWidth  = 1280
	WindowHeight = 720

	// WindowHUDLineHeight is the pixel spacing of HUD text rows
	WindowHUDLineHeight = 16
)

// Scene Drawing
const (
	// GroundRingSamples is the point count of the ground circle outline
	GroundRingSamples = 96

	// GroundRunes is the number of rune glyphs placed around the ground circle
	GroundRunes = 8

	// GroundRuneInset is the rune ring radius relative to the ground half-size
	GroundRuneInset = 0.8

	// PortalSamples is the point count of the portal outline
	PortalSamples = 48

	// PortalPulseRate is the portal brightness oscillation in radians per second
	PortalPulseRate = 2.0

	// OverlaySamples is the point count used to draw beams and rings
	OverlaySamples = 48

	// WandLength is the drawn shaft length below the tip
	WandLength = 1.4

	// DepthFadeStart and DepthFadeRange shade entities by view distance
	DepthFadeStart = 5.0
	DepthFadeRange = 30.0
)

// Input
const (
	// AimStep is the yaw/pitch change per arrow key press in radians
	AimStep = 0.08

	// WindowAimRate is the held-key aim speed of the window front-end in radians per second
	WindowAimRate = 1.5

	// CommandBufferSize is the capacity of the command channel feeding the loop
	CommandBufferSize = 64
)

// Status
const (
	// SelectedParamKey is the status key holding the parameter +/- currently adjusts
	SelectedParamKey = "input.param"

	// ShutdownGrace bounds how long audio shutdown waits for playing cues
	ShutdownGrace = 200 * time.Millisecond
)
