package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is a formatted name/value pair for HUD display
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type then sorted by key
// Keys listed in skip are omitted
func (r *Registry) Snapshot(skip ...string) []Metric {
	omit := make(map[string]struct{}, len(skip))
	for _, k := range skip {
		omit[k] = struct{}{}
	}
	out := make([]Metric, 0, r.TotalCount())
	add := func(k, v string) {
		if _, ok := omit[k]; !ok {
			out = append(out, Metric{Key: k, Value: v})
		}
	}

	r.Ints.Range(func(k string, p *atomic.Int64) {
		add(k, strconv.FormatInt(p.Load(), 10))
	})
	r.Floats.Range(func(k string, p *AtomicFloat) {
		add(k, strconv.FormatFloat(p.Get(), 'f', 3, 64))
	})
	r.Bools.Range(func(k string, p *atomic.Bool) {
		add(k, strconv.FormatBool(p.Load()))
	})
	r.Strings.Range(func(k string, p *AtomicString) {
		add(k, p.Load())
	})
	return out
}
