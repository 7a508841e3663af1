package link

import (
	"context"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
)

// Registrar is the device-side endpoint of the link: it feeds
// received commands into the loop (or an interceptor) and sends
// events back out.
type Registrar struct {
	pipe        Pipe
	interceptor CommandInterceptor
}

// Init initializes the Registrar.
func (r *Registrar) Init(rw PacketReadWriter, icpt CommandInterceptor) {
	r.pipe.ReadWriter = rw
	r.interceptor = icpt
	r.pipe.Handler = msgs.HandleTypedMsgFunc(r.handleTypedMsg)
}

func (r *Registrar) handleTypedMsg(ctx context.Context, msg fw.Message, typed *msgs.Typed) error {
	switch typed.Kind() {
	case msgs.TypeIDKindCommand:
		cmd := &command{seq: typed.Sequence, msg: msg, pipe: &r.pipe}
		if icpt := r.interceptor; icpt != nil && icpt.InterceptCommand(ctx, cmd) {
			return nil
		}
		loopCtl := fw.LoopCtlFrom(ctx)
		loopCtl.PostMessage(&CommandMsg{Command: cmd})
		loopCtl.TriggerNext()
	case msgs.TypeIDKindEvent:
		loopCtl := fw.LoopCtlFrom(ctx)
		loopCtl.PostMessage(msg)
		loopCtl.TriggerNext()
	}
	return nil
}

// SendEvent implements EventSender.
func (r *Registrar) SendEvent(ctx context.Context, msg fw.Message) error {
	return r.pipe.SendEventMsg(msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fw.Loop) {
	loop.Add(&r.pipe)
}

// Run services the link on the calling goroutine, for transports
// that manage connections themselves instead of through the loop.
// ctx must originate from the running loop for commands to enter it.
func (r *Registrar) Run(ctx context.Context) error {
	return r.pipe.Run(ctx)
}

type command struct {
	seq  uint32
	msg  fw.Message
	pipe *Pipe
}

func (c *command) Msg() fw.Message {
	return c.msg
}

func (c *command) Done(msg fw.Message) error {
	return c.pipe.SendCommandMsg(msg, c.seq)
}

// RegistrarMux fans events out to multiple registrars.
type RegistrarMux struct {
	Registrars []EventSender
}

// SendEvent implements EventSender.
func (r *RegistrarMux) SendEvent(ctx context.Context, msg fw.Message) error {
	var errs fw.AggregatedError
	for _, reg := range r.Registrars {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (r *RegistrarMux) AddToLoop(l *fw.Loop) {
	for _, reg := range r.Registrars {
		if adder, ok := reg.(fw.LoopAdder); ok {
			l.Add(adder)
		}
	}
}

// Add adds more registrars.
func (r *RegistrarMux) Add(regs ...EventSender) {
	r.Registrars = append(r.Registrars, regs...)
}

// UnsupportedCommands replies left-over commands as unsupported.
type UnsupportedCommands struct {
}

// Control implements Controller.
func (c *UnsupportedCommands) Control(cc fw.CycleContext) error {
	cc.Messages().ProcessMessages(fw.ProcessMessageFunc(func(mc fw.MessageProcessingContext) {
		if cmdMsg, ok := mc.CurrentMessage().(*CommandMsg); ok {
			mc.MessageTaken()
			cmdMsg.Command.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand))
		}
	}))
	return nil
}

// AddToLoop implements LoopAdder.
func (c *UnsupportedCommands) AddToLoop(loop *fw.Loop) {
	loop.AddController(fw.StageReport, c)
}
