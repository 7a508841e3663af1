package msgs

import (
	"github.com/golang/protobuf/proto"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fw.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic reply representing a command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fw.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// Halt command suspends the monitor loop at the next cycle boundary.
type Halt struct {
	pb.Halt
}

// NewMessage implements Message.
func (m *Halt) NewMessage() fw.Message { return &Halt{} }

// TypeID implements SerializableMessage.
func (m *Halt) TypeID() uint32 { return HaltTypeID }

// Serializable implements SerializableMessage.
func (m *Halt) Serializable() proto.Message { return &m.Halt }

// Resume command releases a halted monitor loop.
type Resume struct {
	pb.Resume
}

// NewMessage implements Message.
func (m *Resume) NewMessage() fw.Message { return &Resume{} }

// TypeID implements SerializableMessage.
func (m *Resume) TypeID() uint32 { return ResumeTypeID }

// Serializable implements SerializableMessage.
func (m *Resume) Serializable() proto.Message { return &m.Resume }

// Step command advances a halted monitor loop to the next stop.
type Step struct {
	pb.Step
}

// NewMessage implements Message.
func (m *Step) NewMessage() fw.Message { return &Step{} }

// TypeID implements SerializableMessage.
func (m *Step) TypeID() uint32 { return StepTypeID }

// Serializable implements SerializableMessage.
func (m *Step) Serializable() proto.Message { return &m.Step }

// BreakSet command arms a stop point.
type BreakSet struct {
	pb.BreakSet
}

// NewMessage implements Message.
func (m *BreakSet) NewMessage() fw.Message { return &BreakSet{} }

// TypeID implements SerializableMessage.
func (m *BreakSet) TypeID() uint32 { return BreakSetTypeID }

// Serializable implements SerializableMessage.
func (m *BreakSet) Serializable() proto.Message { return &m.BreakSet }

// BreakClear command disarms a stop point.
type BreakClear struct {
	pb.BreakClear
}

// NewMessage implements Message.
func (m *BreakClear) NewMessage() fw.Message { return &BreakClear{} }

// TypeID implements SerializableMessage.
func (m *BreakClear) TypeID() uint32 { return BreakClearTypeID }

// Serializable implements SerializableMessage.
func (m *BreakClear) Serializable() proto.Message { return &m.BreakClear }

// StateQuery command reads the monitor state words.
type StateQuery struct {
	pb.StateQuery
}

// NewMessage implements Message.
func (m *StateQuery) NewMessage() fw.Message { return &StateQuery{} }

// TypeID implements SerializableMessage.
func (m *StateQuery) TypeID() uint32 { return StateQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StateQuery) Serializable() proto.Message { return &m.StateQuery }

// StateInfo is the reply to StateQuery.
type StateInfo struct {
	pb.StateInfo
}

// NewMessage implements Message.
func (m *StateInfo) NewMessage() fw.Message { return &StateInfo{} }

// TypeID implements SerializableMessage.
func (m *StateInfo) TypeID() uint32 { return StateInfoTypeID }

// Serializable implements SerializableMessage.
func (m *StateInfo) Serializable() proto.Message { return &m.StateInfo }

// StateWrite command overwrites the monitor state words selected
// by Mask.
type StateWrite struct {
	pb.StateWrite
}

// NewMessage implements Message.
func (m *StateWrite) NewMessage() fw.Message { return &StateWrite{} }

// TypeID implements SerializableMessage.
func (m *StateWrite) TypeID() uint32 { return StateWriteTypeID }

// Serializable implements SerializableMessage.
func (m *StateWrite) Serializable() proto.Message { return &m.StateWrite }

// StateWrite mask bits.
const (
	StateWriteThreat uint32 = 1 << iota
	StateWriteCycles
)

// StatusEvent is emitted every cycle with the evaluated state.
type StatusEvent struct {
	pb.StatusEvent
}

// NewMessage implements Message.
func (m *StatusEvent) NewMessage() fw.Message { return &StatusEvent{} }

// TypeID implements SerializableMessage.
func (m *StatusEvent) TypeID() uint32 { return StatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *StatusEvent) Serializable() proto.Message { return &m.StatusEvent }

// AlertEvent is emitted when backup protocols engage.
type AlertEvent struct {
	pb.AlertEvent
}

// NewMessage implements Message.
func (m *AlertEvent) NewMessage() fw.Message { return &AlertEvent{} }

// TypeID implements SerializableMessage.
func (m *AlertEvent) TypeID() uint32 { return AlertEventTypeID }

// Serializable implements SerializableMessage.
func (m *AlertEvent) Serializable() proto.Message { return &m.AlertEvent }

// StoppedEvent is emitted when the loop stops at an armed stop point.
type StoppedEvent struct {
	pb.StoppedEvent
}

// NewMessage implements Message.
func (m *StoppedEvent) NewMessage() fw.Message { return &StoppedEvent{} }

// TypeID implements SerializableMessage.
func (m *StoppedEvent) TypeID() uint32 { return StoppedEventTypeID }

// Serializable implements SerializableMessage.
func (m *StoppedEvent) Serializable() proto.Message { return &m.StoppedEvent }

// TypeID groups
const (
	GroupCommand uint32 = 0x00000000
	GroupProbe   uint32 = 0x00010000
	GroupMonitor uint32 = 0x00020000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID   uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	HaltTypeID         uint32 = GroupProbe | 0x0000
	ResumeTypeID       uint32 = GroupProbe | 0x0001
	StepTypeID         uint32 = GroupProbe | 0x0002
	BreakSetTypeID     uint32 = GroupProbe | 0x0003
	BreakClearTypeID   uint32 = GroupProbe | 0x0004
	StateQueryTypeID   uint32 = GroupProbe | 0x0005
	StateInfoTypeID    uint32 = StateQueryTypeID | TypeIDMaskReply
	StateWriteTypeID   uint32 = GroupProbe | 0x0006
	StoppedEventTypeID uint32 = TypeIDKindEvent | GroupProbe | 0x0000
	StatusEventTypeID  uint32 = TypeIDKindEvent | GroupMonitor | 0x0000
	AlertEventTypeID   uint32 = TypeIDKindEvent | GroupMonitor | 0x0001
)
