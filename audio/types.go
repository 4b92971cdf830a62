// Package audio synthesizes spell cues with beep and plays them through the system speaker
package audio

import (
	"errors"
	"time"

	"github.com/lixenwraith/magic-lab/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhoosh SoundType = iota // Burst and bolt casts
	SoundRoar                    // Fireball cast
	SoundZap                     // Lightning beam
	SoundChime                   // Frost ring
	SoundThud                    // Hits, explosions, shatters
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"whoosh", "roar", "zap", "chime", "thud"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds synthesis and playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	MinSoundGap   time.Duration
	SampleRate    int
}

// DefaultAudioConfig returns full-volume cues at the default sample rate
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[SoundType]float64, soundTypeCount)
	for s := SoundType(0); s < soundTypeCount; s++ {
		vols[s] = 1.0
	}
	vols[SoundZap] = 0.6
	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  parameter.DefaultMasterVolume,
		EffectVolumes: vols,
		MinSoundGap:   parameter.MinSoundGap,
		SampleRate:    parameter.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrSpeakerInit   = errors.New("speaker init failed")
)
