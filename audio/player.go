package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/parameter"
)

// Output receives finished cue streamers
type Output interface {
	Play(s beep.Streamer)
	Close()
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// Player plays cues, rate-limited per sound type
// Without an output every Play is a silent no-op
type Player struct {
	mu    sync.Mutex
	cfg   *AudioConfig
	clock engine.TimeProvider
	out   Output

	lastPlay [soundTypeCount]time.Time

	active  atomic.Int64
	played  atomic.Int64
	dropped atomic.Int64
}

// NewPlayer creates a silent player; call Initialize or Attach to give it an output
func NewPlayer(cfg *AudioConfig, clock engine.TimeProvider) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Player{
		cfg:   cfg,
		clock: clock,
	}
}

// Initialize opens the system speaker
// Failure leaves the player silent; callers treat it as non-fatal
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out != nil {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %w", ErrSpeakerInit, err)
	}
	p.out = speakerOutput{}
	return nil
}

// Attach routes cues to out instead of the speaker
func (p *Player) Attach(out Output) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = out
}

// Enabled reports whether cues reach an output
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out != nil
}

// Play queues a cue; returns false when silent, unknown or rate-limited
func (p *Player) Play(s SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil || s < 0 || s >= soundTypeCount {
		return false
	}

	now := p.clock.Now()
	if !p.lastPlay[s].IsZero() && now.Sub(p.lastPlay[s]) < p.cfg.MinSoundGap {
		p.dropped.Add(1)
		return false
	}

	streamer := GetSoundEffect(s, p.cfg)
	if streamer == nil {
		return false
	}
	p.lastPlay[s] = now

	p.active.Add(1)
	p.out.Play(beep.Seq(streamer, beep.Callback(func() {
		p.active.Add(-1)
	})))
	p.played.Add(1)
	return true
}

// Active returns the number of cues not yet fully streamed
func (p *Player) Active() int64  { return p.active.Load() }
func (p *Player) Played() int64  { return p.played.Load() }
func (p *Player) Dropped() int64 { return p.dropped.Load() }

// Close stops all cues and releases the output
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return
	}
	p.out.Close()
	p.out = nil
}
