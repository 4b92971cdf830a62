package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/event"
	"github.com/lixenwraith/magic-lab/spell"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// captureOutput keeps played streamers for inspection
type captureOutput struct {
	streams []beep.Streamer
	closed  bool
}

func (c *captureOutput) Play(s beep.Streamer) { c.streams = append(c.streams, s) }
func (c *captureOutput) Close()               { c.closed = true }

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(osc)
	if want := rate.N(100 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak > 1 || peak < 0.9 {
		t.Errorf("Expected sine peak near 1, got %f", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("Square wave sample %d should be ±1, got %f", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[91][0] {
		t.Errorf("Expected release to fade: %f then %f", samples[91][0], samples[99][0])
	}
}

func TestEverySoundRenders(t *testing.T) {
	cfg := DefaultAudioConfig()
	for s := SoundType(0); s < soundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Errorf("%v: expected a streamer", s)
			continue
		}
		n, peak := drain(streamer)
		if n == 0 || peak == 0 {
			t.Errorf("%v: expected audible samples, got n=%d peak=%f", s, n, peak)
		}
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

func TestMutedSoundIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(CreateThudSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestPlayerSilentWithoutOutput(t *testing.T) {
	p := NewPlayer(nil, nil)
	if p.Play(SoundThud) {
		t.Error("Expected no playback without output")
	}
	if p.Enabled() {
		t.Error("Expected disabled player")
	}
}

func TestPlayerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg, nil)
	if err := p.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
}

func TestPlayerRateLimit(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	out := &captureOutput{}
	p := NewPlayer(nil, clock)
	p.Attach(out)

	if !p.Play(SoundThud) {
		t.Fatal("Expected first cue to play")
	}
	if p.Play(SoundThud) {
		t.Error("Expected repeat within the gap to be dropped")
	}
	if !p.Play(SoundChime) {
		t.Error("Expected a different cue to play")
	}
	clock.Advance(time.Second)
	if !p.Play(SoundThud) {
		t.Error("Expected cue to play after the gap")
	}

	if p.Played() != 3 || p.Dropped() != 1 {
		t.Errorf("Expected 3 played 1 dropped, got %d %d", p.Played(), p.Dropped())
	}
	if len(out.streams) != 3 {
		t.Fatalf("Expected 3 streams sent to output, got %d", len(out.streams))
	}
}

func TestPlayerActiveCount(t *testing.T) {
	out := &captureOutput{}
	p := NewPlayer(nil, engine.NewMockTimeProvider(time.Unix(0, 0)))
	p.Attach(out)
	p.Play(SoundZap)
	if p.Active() != 1 {
		t.Fatalf("Expected 1 active cue, got %d", p.Active())
	}
	drain(out.streams[0])
	if p.Active() != 0 {
		t.Errorf("Expected cue finished after draining, got %d", p.Active())
	}

	p.Close()
	if !out.closed || p.Enabled() {
		t.Error("Expected Close to release the output")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want SoundType
		ok   bool
	}{
		{"burst", event.GameEvent{Type: event.EventSpellCast, Payload: &event.SpellCastPayload{Kind: spell.Burst}}, SoundWhoosh, true},
		{"fireball", event.GameEvent{Type: event.EventSpellCast, Payload: &event.SpellCastPayload{Kind: spell.Fireball}}, SoundRoar, true},
		{"lightning", event.GameEvent{Type: event.EventSpellCast, Payload: &event.SpellCastPayload{Kind: spell.Lightning}}, SoundZap, true},
		{"frost", event.GameEvent{Type: event.EventSpellCast, Payload: &event.SpellCastPayload{Kind: spell.Frost}}, SoundChime, true},
		{"hit", event.GameEvent{Type: event.EventProjectileHit}, SoundThud, true},
		{"bad payload", event.GameEvent{Type: event.EventSpellCast, Payload: "x"}, 0, false},
		{"respawn", event.GameEvent{Type: event.EventRespawn}, 0, false},
	}
	for _, tc := range tests {
		got, ok := CueFor(tc.ev)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%s: expected %v/%v, got %v/%v", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

type countingCuer struct {
	played []SoundType
}

func (c *countingCuer) Play(s SoundType) bool {
	c.played = append(c.played, s)
	return true
}

func TestCueHandlerRouted(t *testing.T) {
	q := event.NewEventQueue()
	r := event.NewRouter[int](q)
	cuer := &countingCuer{}
	r.Register(NewCueHandler[int](cuer))

	q.Push(event.GameEvent{Type: event.EventSpellCast, Payload: &event.SpellCastPayload{Kind: spell.Bolt}})
	q.Push(event.GameEvent{Type: event.EventRespawn})
	q.Push(event.GameEvent{Type: event.EventEntityShattered})
	r.DispatchAll(0)

	if len(cuer.played) != 2 || cuer.played[0] != SoundWhoosh || cuer.played[1] != SoundThud {
		t.Errorf("Expected whoosh then thud, got %v", cuer.played)
	}
}

func TestServiceNeverFails(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	svc := NewService(NewPlayer(cfg, nil), nil)
	if err := svc.Init(); err != nil {
		t.Errorf("Expected disabled audio to be non-fatal, got %v", err)
	}
	if svc.Player().Enabled() {
		t.Error("Expected silent player")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestServiceStopBoundedByGrace(t *testing.T) {
	out := &captureOutput{}
	p := NewPlayer(nil, engine.NewMockTimeProvider(time.Unix(0, 0)))
	p.Attach(out)
	p.Play(SoundRoar)

	start := time.Now()
	if err := NewService(p, nil).Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Expected Stop to give up on undrained cues")
	}
	if !out.closed {
		t.Error("Expected output closed")
	}
}
