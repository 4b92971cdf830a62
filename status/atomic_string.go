package status

import (
	"sync/atomic"
)

// MaxStringLen bounds stored strings so HUD rows stay narrow
const MaxStringLen = 24

// AtomicString is a truncated string behind an atomic pointer; zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
