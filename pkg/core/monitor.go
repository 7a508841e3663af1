package core

import (
	"context"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

// Stop points a debug probe can arm inside one cycle.
const (
	// PointEvaluate is hit right before the threat flag is read.
	PointEvaluate uint32 = 1
	// PointEscalate is hit right before backup protocols engage.
	PointEscalate uint32 = 2
)

// EventSink publishes events to external observers.
type EventSink interface {
	SendEvent(context.Context, fw.Message) error
}

// Trap suspends execution at armed stop points.
type Trap interface {
	Pause(ctx context.Context, point, cycle uint32)
}

// Monitor is the threat monitor state machine. Every cycle it
// evaluates the threat flag, reports status, escalates on a positive
// detection and clears the flag, then schedules the next cycle delay.
type Monitor struct {
	State  *State
	Config *Config

	// Journal receives status records. Defaults to GlogJournal.
	Journal Journal
	// Events, when set, receives StatusEvent/AlertEvent per cycle.
	Events EventSink
	// Trap, when set, is consulted at the stop points.
	Trap Trap
}

// NewMonitor creates a Monitor over the given state.
func NewMonitor(state *State, conf *Config) *Monitor {
	return &Monitor{State: state, Config: conf, Journal: GlogJournal{}}
}

// AddToLoop implements LoopAdder.
func (m *Monitor) AddToLoop(l *fw.Loop) {
	l.Delay = m.Config.SecureDelay
	l.AddController(fw.StageControl, m)
	l.AddController(fw.StageReport, fw.ControlFunc(m.finishCycle))
}

// Control implements Controller. It runs the evaluation step of
// one cycle.
func (m *Monitor) Control(cc fw.CycleContext) error {
	ctx := cc.Context()
	cycle := m.State.Cycles()

	m.pause(ctx, PointEvaluate, cycle)
	threat := m.State.Threat()

	if threat {
		m.Journal.Threat(cycle)
	} else {
		m.Journal.Secure(cycle)
	}
	m.sendEvent(ctx, &msgs.StatusEvent{
		StatusEvent: pb.StatusEvent{Cycles: cycle, Threat: threat},
	})

	if !threat {
		cc.SetNextDelay(m.Config.SecureDelay)
		return nil
	}

	m.pause(ctx, PointEscalate, cycle)
	m.Journal.Escalate()
	m.sendEvent(ctx, &msgs.AlertEvent{
		AlertEvent: pb.AlertEvent{Cycles: cycle},
	})
	// detection is one-shot, the flag does not latch across cycles.
	m.State.SetThreat(false)
	cc.SetNextDelay(m.Config.AlertDelay)
	return nil
}

// finishCycle advances the counter once the cycle's reactions ran.
func (m *Monitor) finishCycle(cc fw.CycleContext) error {
	m.State.advance()
	return nil
}

func (m *Monitor) pause(ctx context.Context, point, cycle uint32) {
	if t := m.Trap; t != nil {
		t.Pause(ctx, point, cycle)
	}
}

func (m *Monitor) sendEvent(ctx context.Context, msg fw.Message) {
	if s := m.Events; s != nil {
		s.SendEvent(ctx, msg)
	}
}
