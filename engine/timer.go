package engine

import (
	"sort"
	"time"
)

// Timers schedules one-shot payloads against wall-clock milliseconds
// Independent of simulation dt and time scale; used for cosmetic delays
type Timers[T any] struct {
	pending []pendingTimer[T]
	seq     uint64
}

type pendingTimer[T any] struct {
	due     float64 // Wall timestamp in ms
	seq     uint64  // Insertion order for stable firing
	payload T
}

// NewTimers creates an empty timer set
func NewTimers[T any]() *Timers[T] {
	return &Timers[T]{}
}

// Schedule queues payload to fire delay after nowMillis
func (t *Timers[T]) Schedule(nowMillis float64, delay time.Duration, payload T) {
	t.seq++
	t.pending = append(t.pending, pendingTimer[T]{
		due:     nowMillis + float64(delay)/float64(time.Millisecond),
		seq:     t.seq,
		payload: payload,
	})
}

// Due removes and returns all payloads due at nowMillis, ordered by due time then insertion
func (t *Timers[T]) Due(nowMillis float64) []T {
	if len(t.pending) == 0 {
		return nil
	}

	var fired []pendingTimer[T]
	kept := t.pending[:0]
	for _, p := range t.pending {
		if p.due <= nowMillis {
			fired = append(fired, p)
		} else {
			kept = append(kept, p)
		}
	}
	// Zero the tail so payloads are not retained
	for i := len(kept); i < len(t.pending); i++ {
		t.pending[i] = pendingTimer[T]{}
	}
	t.pending = kept

	if len(fired) == 0 {
		return nil
	}

	sort.Slice(fired, func(i, j int) bool {
		if fired[i].due != fired[j].due {
			return fired[i].due < fired[j].due
		}
		return fired[i].seq < fired[j].seq
	})

	out := make([]T, len(fired))
	for i, p := range fired {
		out[i] = p.payload
	}
	return out
}

// Len returns the number of pending timers
func (t *Timers[T]) Len() int {
	return len(t.pending)
}

// Clear drops all pending timers without firing
func (t *Timers[T]) Clear() {
	t.pending = nil
}
