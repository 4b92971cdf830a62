package engine

import (
	"context"
	"errors"
	"time"
)

// ErrSourceExhausted is returned by a frame source with no further timestamps
var ErrSourceExhausted = errors.New("frame source exhausted")

// FrameSource yields the timestamp (ms) of each frame; it replaces render-driven callback recursion
// Next blocks until the next frame is due or ctx is done
type FrameSource interface {
	Next(ctx context.Context) (float64, error)
}

// TickerSource paces frames at a fixed interval and reports wall milliseconds since creation
type TickerSource struct {
	provider TimeProvider
	start    time.Time
	ticker   *time.Ticker
}

// NewTickerSource creates a paced source; call Stop to release the ticker
func NewTickerSource(provider TimeProvider, interval time.Duration) *TickerSource {
	return &TickerSource{
		provider: provider,
		start:    provider.Now(),
		ticker:   time.NewTicker(interval),
	}
}

// Next waits for the next tick
func (s *TickerSource) Next(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-s.ticker.C:
		return s.Millis(), nil
	}
}

// Millis returns wall milliseconds since the source was created
func (s *TickerSource) Millis() float64 {
	return MillisSince(s.provider, s.start)
}

// Stop releases the underlying ticker
func (s *TickerSource) Stop() {
	s.ticker.Stop()
}

// ScriptedSource replays a fixed timestamp sequence, used for deterministic runs
type ScriptedSource struct {
	stamps []float64
	next   int
}

// NewScriptedSource creates a source over the given timestamps
func NewScriptedSource(stamps ...float64) *ScriptedSource {
	return &ScriptedSource{stamps: stamps}
}

// NewFixedStepSource creates frames timestamps 0, step, 2*step, ... (count frames)
func NewFixedStepSource(step time.Duration, count int) *ScriptedSource {
	stamps := make([]float64, count)
	ms := float64(step) / float64(time.Millisecond)
	for i := range stamps {
		stamps[i] = float64(i) * ms
	}
	return &ScriptedSource{stamps: stamps}
}

// Next returns the next scripted timestamp without blocking
func (s *ScriptedSource) Next(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.next >= len(s.stamps) {
		return 0, ErrSourceExhausted
	}
	ts := s.stamps[s.next]
	s.next++
	return ts, nil
}

// Remaining returns how many timestamps are left
func (s *ScriptedSource) Remaining() int {
	return len(s.stamps) - s.next
}
