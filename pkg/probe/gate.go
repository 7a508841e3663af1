package probe

import (
	"context"
	"sync"
)

// Gate suspends the monitor loop. The loop (and its stop points)
// calls Wait; the probe side calls Halt, Resume and Step from the
// link's reader goroutine.
type Gate struct {
	lock   sync.Mutex
	halted bool
	steps  int
	wake   chan struct{}
}

// NewGate creates an open Gate.
func NewGate() *Gate {
	return &Gate{}
}

// Halted reports whether the gate currently holds the loop.
func (g *Gate) Halted() bool {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.halted
}

// Halt closes the gate. The loop suspends at its next Wait.
func (g *Gate) Halt() {
	g.lock.Lock()
	if !g.halted {
		g.halted = true
		g.steps = 0
		g.wake = make(chan struct{})
	}
	g.lock.Unlock()
}

// Resume opens the gate and releases all waiters.
func (g *Gate) Resume() {
	g.lock.Lock()
	if g.halted {
		g.halted = false
		close(g.wake)
	}
	g.lock.Unlock()
}

// Step releases exactly one Wait while keeping the gate closed,
// advancing the loop to its next suspension point.
func (g *Gate) Step() {
	g.lock.Lock()
	if g.halted {
		g.steps++
		close(g.wake)
		g.wake = make(chan struct{})
	}
	g.lock.Unlock()
}

// Wait implements firmware.Gate. It returns nil immediately while
// the gate is open, otherwise it blocks until Resume, one Step
// token, or context cancellation.
func (g *Gate) Wait(ctx context.Context) error {
	for {
		g.lock.Lock()
		if !g.halted {
			g.lock.Unlock()
			return nil
		}
		if g.steps > 0 {
			g.steps--
			g.lock.Unlock()
			return nil
		}
		wake := g.wake
		g.lock.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		}
	}
}
