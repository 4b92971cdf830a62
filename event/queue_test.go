package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/magic-lab/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSpellCast, Frame: int64(i)})
	}

	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}
	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventImpulse, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventEffectSpawned})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*[]string](q)

	r.Register(HandlerFunc[*[]string]{
		Types: []EventType{EventSpellCast, EventProjectileHit},
		Fn: func(log *[]string, ev GameEvent) {
			*log = append(*log, "a:"+ev.Type.String())
		},
	})
	r.Register(HandlerFunc[*[]string]{
		Types: []EventType{EventProjectileHit},
		Fn: func(log *[]string, ev GameEvent) {
			*log = append(*log, "b:"+ev.Type.String())
		},
	})

	q.Push(GameEvent{Type: EventSpellCast})
	q.Push(GameEvent{Type: EventProjectileHit})
	q.Push(GameEvent{Type: EventRespawn})

	var log []string
	if n := r.DispatchAll(&log); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}
	want := []string{"a:EventSpellCast", "a:EventProjectileHit", "b:EventProjectileHit"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Dispatch %d = %q, want %q", i, log[i], want[i])
		}
	}
	if r.HandlerCount(EventProjectileHit) != 2 {
		t.Errorf("Expected 2 handlers for hits, got %d", r.HandlerCount(EventProjectileHit))
	}
}

func TestEventTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		got, ok := GetEventType(et.String())
		if !ok || got != et {
			t.Errorf("Name round trip failed for %v", et)
		}
	}
	if EventType(-1).String() != "EventUnknown" {
		t.Error("Expected unknown name for out of range type")
	}
}
