package engine

import "github.com/lixenwraith/magic-lab/parameter"

// Clock converts render-loop timestamps (milliseconds) into scaled delta time
// Not safe for concurrent use; owned by the frame loop
type Clock struct {
	lastTimestamp float64 // Previous frame timestamp in ms
	started       bool    // False until the first Tick

	timeScale float64 // Multiplier applied to raw delta
	elapsed   float64 // Accumulated unscaled wall seconds
	simTime   float64 // Accumulated scaled seconds
	frames    uint64
}

// NewClock creates a clock with neutral time scale
func NewClock() *Clock {
	return &Clock{timeScale: parameter.DefaultTimeScale}
}

// Tick records nowMillis and returns the scaled delta in seconds
// First frame, missing previous timestamp, or a timestamp going backwards yields 0
// No clamping is applied here, see ClampDelta
func (c *Clock) Tick(nowMillis float64) float64 {
	c.frames++

	if !c.started || c.lastTimestamp < 0 || nowMillis < c.lastTimestamp {
		c.started = true
		c.lastTimestamp = nowMillis
		return 0
	}

	raw := (nowMillis - c.lastTimestamp) * 0.001
	c.lastTimestamp = nowMillis
	c.elapsed += raw

	dt := raw * c.timeScale
	c.simTime += dt
	return dt
}

// SetTimeScale changes the multiplier applied to subsequent ticks
// Negative factors are clamped to 0 (frozen time)
func (c *Clock) SetTimeScale(factor float64) {
	if factor < 0 {
		factor = 0
	}
	c.timeScale = factor
}

// TimeScale returns the current multiplier
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// Elapsed returns accumulated unscaled wall seconds since the first tick
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// SimTime returns accumulated scaled seconds
func (c *Clock) SimTime() float64 {
	return c.simTime
}

// LastTimestamp returns the timestamp of the most recent tick in ms
func (c *Clock) LastTimestamp() float64 {
	return c.lastTimestamp
}

// Frames returns the number of ticks processed
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Reset forgets the previous timestamp so the next tick yields 0
func (c *Clock) Reset() {
	c.started = false
	c.lastTimestamp = 0
}

// ClampDelta bounds dt to [0, maxDelta]; maxDelta <= 0 disables the upper bound
func ClampDelta(dt, maxDelta float64) float64 {
	if dt < 0 || dt != dt {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}
