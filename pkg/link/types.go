package link

import (
	"context"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
)

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// DeviceRef is a reference to a firmware device.
type DeviceRef struct {
	// Model is the device model (firmware flavor).
	Model string
	// ID is the unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r DeviceRef) Name() string {
	return r.Model + "/" + r.ID
}

// IsValid indicates DeviceRef is valid.
func (r DeviceRef) IsValid() bool {
	return r.Model != "" && r.ID != ""
}

// DeviceMeta provides metadata for a device.
type DeviceMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// DeviceInfo provides information of a device.
type DeviceInfo struct {
	Ref  DeviceRef
	Meta DeviceMeta
}

// EventSender publishes events towards external observers.
type EventSender interface {
	// SendEvent sends an event over the link.
	SendEvent(context.Context, fw.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fw.Message
	Done(fw.Message) error
}

// CommandMsg wraps a Command as a Message for loop dispatch.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fw.Message { return &CommandMsg{} }

// CommandInterceptor services commands out-of-band on the pipe's
// reader goroutine, before loop dispatch. This is how debug commands
// keep working while the loop itself is suspended. InterceptCommand
// reports whether the command was consumed.
type CommandInterceptor interface {
	InterceptCommand(context.Context, Command) bool
}

// Connector is used by external agents to reach devices.
type Connector interface {
	// Discover enumerates registered devices.
	Discover(context.Context) ([]DeviceInfo, error)
	// Connect connects to the specified device.
	Connect(context.Context, DeviceRef) (DeviceConn, error)
}

// DeviceConn is the connection to a device.
type DeviceConn interface {
	// DoCommand executes a command.
	DoCommand(fw.Message) CommandFuture
}

// Result represents the result of a command.
type Result struct {
	Msg fw.Message
	Err error
}

// CommandFuture is the future of a sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}
