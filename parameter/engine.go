package parameter

import "time"

// Frame Loop & Timing
const (
	// FrameInterval is the render/update interval of the terminal front-end (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step in seconds after time scaling
	// A backgrounded window otherwise produces one huge jump on resume
	MaxFrameDelta = 0.1

	// DefaultTimeScale is the neutral simulation speed multiplier
	DefaultTimeScale = 1.0

	// MinTimeScale and MaxTimeScale bound live tuning of the time scale
	MinTimeScale = 0.05
	MaxTimeScale = 4.0
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
