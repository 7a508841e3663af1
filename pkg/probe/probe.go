// Package probe is the in-core half of the debugging-agent contract:
// it can halt the monitor loop, single-step it, stop it at armed
// points inside a cycle, and read or overwrite the monitor state
// while the loop is suspended.
package probe

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/ghostlabs/ghost.go/pkg/core"
	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/link"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

// ErrBadPoint indicates an unknown stop point id.
var ErrBadPoint = errors.New("unknown stop point")

// Probe services debug commands out-of-band and implements the
// monitor's Trap.
type Probe struct {
	State *core.State
	Gate  *Gate

	// Events, when set, receives StoppedEvent on stop-point hits.
	Events core.EventSink

	breaks uint32
}

// New creates a Probe over the given state.
func New(state *core.State) *Probe {
	return &Probe{State: state, Gate: NewGate()}
}

// AddToLoop implements LoopAdder, installing the gate.
func (p *Probe) AddToLoop(l *fw.Loop) {
	l.Gate = p.Gate
}

// InterceptCommand implements link.CommandInterceptor. Commands are
// serviced on the link's reader goroutine so they keep working while
// the loop is halted. State access is atomic, so an out-of-band
// write is safe even when the agent fires it at a running loop.
func (p *Probe) InterceptCommand(ctx context.Context, cmd link.Command) bool {
	switch msg := cmd.Msg().(type) {
	case *msgs.Halt:
		p.Gate.Halt()
		glog.Info("probe: halt")
		p.done(cmd, msgs.NewCommandOK())
	case *msgs.Resume:
		p.Gate.Resume()
		glog.Info("probe: resume")
		p.done(cmd, msgs.NewCommandOK())
	case *msgs.Step:
		p.Gate.Step()
		p.done(cmd, msgs.NewCommandOK())
	case *msgs.BreakSet:
		p.doBreak(cmd, msg.Point, true)
	case *msgs.BreakClear:
		p.doBreak(cmd, msg.Point, false)
	case *msgs.StateQuery:
		p.done(cmd, &msgs.StateInfo{StateInfo: pb.StateInfo{
			Threat: p.State.Threat(),
			Cycles: p.State.Cycles(),
			Halted: p.Gate.Halted(),
		}})
	case *msgs.StateWrite:
		if msg.Mask&msgs.StateWriteThreat != 0 {
			p.State.SetThreat(msg.Threat)
			glog.V(1).Infof("probe: threat <- %v", msg.Threat)
		}
		if msg.Mask&msgs.StateWriteCycles != 0 {
			p.State.SetCycles(msg.Cycles)
			glog.V(1).Infof("probe: cycles <- %d", msg.Cycles)
		}
		p.done(cmd, msgs.NewCommandOK())
	default:
		return false
	}
	return true
}

// Pause implements core.Trap. If the point is armed, the loop halts
// there, a StoppedEvent is emitted, and execution resumes only on
// Resume or Step.
func (p *Probe) Pause(ctx context.Context, point, cycle uint32) {
	if atomic.LoadUint32(&p.breaks)&pointBit(point) == 0 {
		return
	}
	p.Gate.Halt()
	glog.Infof("probe: stopped at point %d [cycle %d]", point, cycle)
	if s := p.Events; s != nil {
		s.SendEvent(ctx, &msgs.StoppedEvent{
			StoppedEvent: pb.StoppedEvent{Point: point, Cycles: cycle},
		})
	}
	p.Gate.Wait(ctx)
}

func (p *Probe) doBreak(cmd link.Command, point uint32, arm bool) {
	bit := pointBit(point)
	if bit == 0 {
		p.done(cmd, msgs.NewCommandErr(ErrBadPoint))
		return
	}
	for {
		old := atomic.LoadUint32(&p.breaks)
		next := old &^ bit
		if arm {
			next = old | bit
		}
		if atomic.CompareAndSwapUint32(&p.breaks, old, next) {
			break
		}
	}
	p.done(cmd, msgs.NewCommandOK())
}

func (p *Probe) done(cmd link.Command, msg fw.Message) {
	if err := cmd.Done(msg); err != nil {
		glog.Errorf("probe: reply failed: %v", err)
	}
}

func pointBit(point uint32) uint32 {
	switch point {
	case core.PointEvaluate, core.PointEscalate:
		return 1 << point
	}
	return 0
}
