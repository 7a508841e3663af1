package firmware

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Message defines the abstract message consumed by cycle controllers.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// Controller defines logic executed every cycle.
type Controller interface {
	Control(CycleContext) error
}

// ControlFunc is the func form of Controller.
type ControlFunc func(CycleContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc CycleContext) error {
	return f(cc)
}

// Stages of one cycle, executed in order.
const (
	// StageSense samples inputs and drains the link.
	StageSense int = iota
	// StageControl evaluates state and decides reactions.
	StageControl
	// StageReport emits telemetry and advances counters.
	StageReport

	// StageCount is the total number of stages.
	StageCount
)

// CycleContext provides the context of the current cycle to controllers.
type CycleContext interface {
	// Context retrieves the context.Context of the running loop.
	Context() context.Context
	// Time is the wall time the cycle started.
	Time() time.Time
	// Stage is the stage currently executing.
	Stage() int
	// Messages accesses messages collected for this cycle.
	Messages() MessageStore

	LoopControl
}

// LoopControl exposes access to the running loop.
type LoopControl interface {
	// PostMessage enqueues a message for the next cycle.
	PostMessage(Message)
	// TriggerNext schedules the next cycle immediately,
	// skipping the remaining delay.
	TriggerNext()
	// SetNextDelay overrides the delay before the next cycle,
	// for that cycle only.
	SetNextDelay(time.Duration)
}

// Gate optionally suspends the loop at cycle boundaries.
// Wait blocks while the loop is held and returns when it
// may proceed with the next cycle.
type Gate interface {
	Wait(context.Context) error
}

// MessageStore provides access to the messages of one cycle.
type MessageStore interface {
	// ProcessMessages feeds all pending messages through proc.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender appends messages to a store.
type MessageAppender interface {
	AddMessages(msgs ...Message)
}

// MessageProcessor is used by MessageStore to examine messages.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for one message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being examined.
	CurrentMessage() Message
	// MessageTaken marks the message consumed so it won't be
	// offered to later controllers.
	MessageTaken()
	// StopProcessing leaves the remaining messages untouched.
	StopProcessing()

	MessageAppender
}
