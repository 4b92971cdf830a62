package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/magic-lab/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency over its duration
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tremolo multiplies a stream by a square-ish amplitude modulation
type tremolo struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	hz       float64
	position int
}

func (m *tremolo) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(m.position) / float64(m.rate)
		gain := 0.55 + 0.45*math.Copysign(1, math.Sin(2*math.Pi*m.hz*t))
		samples[i][0] *= gain
		samples[i][1] *= gain
		m.position++
	}
	return n, ok
}

func (m *tremolo) Err() error { return m.streamer.Err() }

// newVolume wraps s in a linear volume; 0 becomes silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func cueVolume(cfg *AudioConfig, s SoundType) float64 {
	v, ok := cfg.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * cfg.MasterVolume
}

// CreateWhooshSound is filtered noise swelling in and out
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, parameter.WhooshDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.WhooshDuration, parameter.WhooshAttack, parameter.WhooshRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundWhoosh)*0.5)
}

// CreateRoarSound mixes a low saw with noise
func CreateRoarSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	body := NewSweep(parameter.RoarFreq, parameter.RoarFreq*0.6, parameter.RoarDuration, WaveSaw, rate)
	hiss := NewOscillator(0, parameter.RoarDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(body, 0.6), newVolume(hiss, 0.4))
	shaped := NewEnvelope(mixed, parameter.RoarDuration, parameter.RoarAttack, parameter.RoarRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundRoar))
}

// CreateZapSound is a buzzing square wave chopped by a fast tremolo
func CreateZapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := NewOscillator(parameter.ZapFreq, parameter.ZapDuration, WaveSquare, rate)
	chopped := &tremolo{streamer: buzz, rate: rate, hz: parameter.ZapModulationRate}
	shaped := NewEnvelope(chopped, parameter.ZapDuration, parameter.ZapAttack, parameter.ZapRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundZap)*0.4)
}

// CreateChimeSound is a bell with an octave overtone
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.ChimeFreq, parameter.ChimeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)

	over := NewOscillator(parameter.ChimeFreq*2, parameter.ChimeDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cueVolume(cfg, SoundChime))
}

// CreateThudSound is a falling sine sweep
func CreateThudSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sweep := NewSweep(parameter.ThudStartFreq, parameter.ThudEndFreq, parameter.ThudDuration, WaveSine, rate)
	shaped := NewEnvelope(sweep, parameter.ThudDuration, parameter.ThudAttack, parameter.ThudRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundThud))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundRoar:
		return CreateRoarSound(cfg)
	case SoundZap:
		return CreateZapSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundThud:
		return CreateThudSound(cfg)
	default:
		return nil
	}
}
