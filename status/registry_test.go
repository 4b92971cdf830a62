package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("dt")
	b := m.Get("dt")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	if !m.Has("dt") || m.Has("missing") {
		t.Error("Has reported wrong membership")
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if f.Get() != 4000 {
		t.Errorf("Expected 4000, got %f", f.Get())
	}
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Max(0.2)
	f.Max(0.1)
	if f.Get() != 0.2 {
		t.Errorf("Expected peak 0.2, got %f", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz0123")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %q", MaxStringLen, s.Load())
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("sim.frames").Store(12)
	r.Ints.Get("effect.live").Store(3)
	r.Floats.Get("sim.dt").Set(0.016)
	r.Strings.Get("spell.last").Store("frost")
	r.Bools.Get("audio.enabled").Store(true)

	snap := r.Snapshot("sim.frames")
	want := []Metric{
		{"effect.live", "3"},
		{"sim.dt", "0.016"},
		{"audio.enabled", "true"},
		{"spell.last", "frost"},
	}
	if len(snap) != len(want) {
		t.Fatalf("Expected %d metrics, got %v", len(want), snap)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Metric %d = %+v, want %+v", i, snap[i], want[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}
