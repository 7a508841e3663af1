package core

import "sync/atomic"

// State is the monitor's externally inspectable state record.
// It is allocated once, its address stays stable for the process
// lifetime, and the two words are accessed only through atomic
// loads and stores: an out-of-band writer (the debug probe) may
// overwrite them while the loop is suspended, and every cycle must
// observe the stored values rather than a cached copy.
type State struct {
	threat uint32
	cycles uint32
}

// NewState creates a State with the threat flag cleared and the
// cycle counter at zero.
func NewState() *State {
	return &State{}
}

// Threat force-reads the threat flag from its backing storage.
func (s *State) Threat() bool {
	return atomic.LoadUint32(&s.threat) != 0
}

// SetThreat overwrites the threat flag.
func (s *State) SetThreat(v bool) {
	var w uint32
	if v {
		w = 1
	}
	atomic.StoreUint32(&s.threat, w)
}

// Cycles force-reads the completed cycle count.
func (s *State) Cycles() uint32 {
	return atomic.LoadUint32(&s.cycles)
}

// SetCycles overwrites the cycle counter. The monitor never calls
// this; it exists for out-of-band writers only.
func (s *State) SetCycles(n uint32) {
	atomic.StoreUint32(&s.cycles, n)
}

// advance increments the cycle counter by exactly one.
// The counter wraps at 2^32.
func (s *State) advance() {
	atomic.AddUint32(&s.cycles, 1)
}
