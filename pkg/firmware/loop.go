package firmware

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultDelay is the per-cycle delay when Loop.Delay is unset.
const DefaultDelay = time.Second

// Loop runs staged controllers in fixed-delay cycles.
type Loop struct {
	// Delay is the default delay between cycles.
	Delay time.Duration
	// Gate, when set, is consulted before every cycle and may
	// hold the loop suspended.
	Gate Gate

	stages  [StageCount][]Controller
	runners []Runnable

	lock      sync.Mutex
	pending   []Message
	nextDelay time.Duration

	wakeCh chan struct{}
}

// LoopAdder provides specific logic to add components to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

var loopCtxKey = &Loop{}

// LoopCtlFrom gets LoopControl from a context.
// Valid in runners spawned by the loop and in controllers.
func LoopCtlFrom(ctx context.Context) LoopControl {
	return ctx.Value(loopCtxKey).(LoopControl)
}

// CycleCtxFrom gets CycleContext from a context.
// Valid in controllers only.
func CycleCtxFrom(ctx context.Context) CycleContext {
	return ctx.Value(loopCtxKey).(CycleContext)
}

// NewLoop creates a Loop with the default delay.
func NewLoop() *Loop {
	return &Loop{Delay: DefaultDelay, wakeCh: make(chan struct{}, 1)}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at a stage.
// Controllers also implementing Runnable are spawned as runners.
func (l *Loop) AddController(stage int, ctls ...Controller) *Loop {
	l.stages[stage] = append(l.stages[stage], ctls...)
	for _, ctl := range ctls {
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementations.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	if l.wakeCh == nil {
		l.wakeCh = make(chan struct{}, 1)
	}

	runner := NewRunnerWith(context.WithValue(ctx, loopCtxKey, &loopCtl{l}))
	runner.Go(l.runners...)
	defer runner.Wait()

	timer := time.NewTimer(l.takeDelay())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		case <-l.wakeCh:
			if !timer.Stop() {
				<-timer.C
			}
		}
		if g := l.Gate; g != nil {
			if err := g.Wait(ctx); err != nil {
				return err
			}
		}
		l.runCycle(ctx)
		timer.Reset(l.takeDelay())
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.TODO()); err != nil {
		log.Fatalln(err)
	}
}

// PostMessage implements LoopControl.
func (l *Loop) PostMessage(msg Message) {
	l.lock.Lock()
	l.pending = append(l.pending, msg)
	l.lock.Unlock()
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeCh <- struct{}{}:
	default:
	}
}

// SetNextDelay implements LoopControl.
func (l *Loop) SetNextDelay(d time.Duration) {
	l.lock.Lock()
	l.nextDelay = d
	l.lock.Unlock()
}

func (l *Loop) takeDelay() time.Duration {
	l.lock.Lock()
	d := l.nextDelay
	l.nextDelay = 0
	l.lock.Unlock()
	if d == 0 {
		if d = l.Delay; d == 0 {
			d = DefaultDelay
		}
	}
	return d
}

func (l *Loop) runCycle(ctx context.Context) {
	c := &cycle{loopCtl: loopCtl{l}, time: time.Now()}
	l.lock.Lock()
	c.msgs, l.pending = l.pending, nil
	l.lock.Unlock()
	c.ctx = context.WithValue(ctx, loopCtxKey, c)
	for stage := 0; stage < StageCount; stage++ {
		c.stage = stage
		for _, ctl := range l.stages[stage] {
			if err := ctl.Control(c); err != nil {
				glog.Errorf("controller error: %v", err)
			}
		}
	}
}

type loopCtl struct {
	*Loop
}

// cycle implements CycleContext and MessageStore.
type cycle struct {
	loopCtl
	ctx   context.Context
	time  time.Time
	stage int
	msgs  []Message
}

func (c *cycle) Context() context.Context { return c.ctx }
func (c *cycle) Time() time.Time          { return c.time }
func (c *cycle) Stage() int               { return c.stage }
func (c *cycle) Messages() MessageStore   { return c }

// AddMessages implements MessageAppender.
func (c *cycle) AddMessages(msgs ...Message) {
	c.msgs = append(c.msgs, msgs...)
}

// ProcessMessages implements MessageStore.
func (c *cycle) ProcessMessages(proc MessageProcessor) {
	msgs := c.msgs
	c.msgs = nil
	var keep []Message
	for i, msg := range msgs {
		mc := &msgCtx{cycle: c, msg: msg}
		proc.ProcessMessage(mc)
		if !mc.taken {
			keep = append(keep, msg)
		}
		if mc.stop {
			keep = append(keep, msgs[i+1:]...)
			break
		}
	}
	// messages added during processing stay behind the survivors.
	c.msgs = append(keep, c.msgs...)
}

type msgCtx struct {
	cycle *cycle
	msg   Message
	taken bool
	stop  bool
}

func (mc *msgCtx) CurrentMessage() Message     { return mc.msg }
func (mc *msgCtx) MessageTaken()               { mc.taken = true }
func (mc *msgCtx) StopProcessing()             { mc.stop = true }
func (mc *msgCtx) AddMessages(msgs ...Message) { mc.cycle.AddMessages(msgs...) }
