package link

import (
	"context"
	"errors"
	"sync"
	"time"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
)

// ErrCommandExpired indicates no result arrived in time.
var ErrCommandExpired = errors.New("command expired")

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 1 * time.Second

// Conn provides a base implementation for DeviceConn using a Pipe.
type Conn struct {
	Expiration time.Duration

	pipe    Pipe
	seq     uint32
	futures map[uint32]*commandFuture
	lock    sync.Mutex
}

// Init initializes the Conn with defaults.
func (c *Conn) Init(rw PacketReadWriter) {
	c.Expiration = DefaultCommandExpiration
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	c.futures = make(map[uint32]*commandFuture)
}

// DoCommand implements DeviceConn.
func (c *Conn) DoCommand(msg fw.Message) CommandFuture {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	f := &commandFuture{
		seq:      c.seq,
		expireAt: time.Now().Add(c.Expiration),
		result:   make(chan Result, 1),
	}
	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		f.result <- Result{Err: err}
		return f
	}
	c.futures[f.seq] = f
	return f
}

// AddToLoop implements LoopAdder.
func (c *Conn) AddToLoop(l *fw.Loop) {
	l.Add(&c.pipe)
	l.AddController(fw.StageReport, fw.ControlFunc(c.purgeExpired))
}

func (c *Conn) handleTypedMsg(ctx context.Context, msg fw.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		loopCtl := fw.LoopCtlFrom(ctx)
		loopCtl.PostMessage(msg)
		loopCtl.TriggerNext()
		return nil
	}
	c.lock.Lock()
	f := c.futures[typed.Sequence]
	delete(c.futures, typed.Sequence)
	c.lock.Unlock()
	if f == nil {
		return nil
	}
	result := Result{Msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		result.Err = cmdErr
	}
	f.result <- result
	return nil
}

func (c *Conn) purgeExpired(cc fw.CycleContext) error {
	now := cc.Time()
	c.lock.Lock()
	for seq, f := range c.futures {
		if f.expireAt.Before(now) {
			delete(c.futures, seq)
			f.result <- Result{Err: ErrCommandExpired}
		}
	}
	c.lock.Unlock()
	return nil
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	result   chan Result
}

// ResultChan implements CommandFuture.
func (f *commandFuture) ResultChan() <-chan Result {
	return f.result
}
