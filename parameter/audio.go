package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 40 * time.Millisecond

	// DefaultMasterVolume scales every cue
	DefaultMasterVolume = 0.5
)

// Cast Whoosh (burst, bolt)
const (
	WhooshDuration = 180 * time.Millisecond
	WhooshAttack   = 40 * time.Millisecond
	WhooshRelease  = 120 * time.Millisecond
)

// Fireball Roar
const (
	RoarDuration = 260 * time.Millisecond
	RoarAttack   = 20 * time.Millisecond
	RoarRelease  = 200 * time.Millisecond
	RoarFreq     = 90.0
)

// Lightning Zap
const (
	ZapDuration       = 160 * time.Millisecond
	ZapAttack         = 3 * time.Millisecond
	ZapRelease        = 60 * time.Millisecond
	ZapFreq           = 220.0
	ZapModulationRate = 25.0
)

// Frost Chime
const (
	ChimeDuration        = 500 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeRelease         = 450 * time.Millisecond
	ChimeOvertoneRelease = 200 * time.Millisecond
	ChimeFreq            = 1318.51 // E6
)

// Impact Thud (hit, explosion, shatter)
const (
	ThudDuration  = 140 * time.Millisecond
	ThudAttack    = 2 * time.Millisecond
	ThudRelease   = 120 * time.Millisecond
	ThudStartFreq = 160.0
	ThudEndFreq   = 45.0
)
