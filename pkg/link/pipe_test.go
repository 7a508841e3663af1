package link

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

// chanRW is an in-memory PacketReadWriter backed by channels.
type chanRW struct {
	in     chan []byte
	out    chan []byte
	closed chan struct{}
	once   sync.Once
}

func newChanRW() *chanRW {
	return &chanRW{
		in:     make(chan []byte, 16),
		out:    make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (rw *chanRW) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-rw.in:
		return pkt, nil
	case <-rw.closed:
		return nil, io.EOF
	}
}

func (rw *chanRW) WritePacket(pkt []byte) error {
	select {
	case rw.out <- pkt:
		return nil
	case <-rw.closed:
		return io.EOF
	}
}

func (rw *chanRW) Close() error {
	rw.once.Do(func() { close(rw.closed) })
	return nil
}

func encodeMsg(t *testing.T, msg fw.Message, seq uint32) []byte {
	typed, err := msgs.TypedFrom(msg)
	require.NoError(t, err)
	typed.Sequence = seq
	pkt, err := typed.Encode()
	require.NoError(t, err)
	return pkt
}

func decodeMsg(t *testing.T, pkt []byte) (fw.Message, *msgs.Typed) {
	typed, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	msg, err := typed.Decode()
	require.NoError(t, err)
	return msg, typed
}

func recvPacket(t *testing.T, rw *chanRW) []byte {
	select {
	case pkt := <-rw.out:
		return pkt
	case <-time.After(time.Second):
		t.Fatal("no packet written")
		return nil
	}
}

func TestPipeDispatch(t *testing.T) {
	rw := newChanRW()
	p := NewPipe(rw)

	received := make(chan fw.Message, 1)
	p.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fw.Message, typed *msgs.Typed) error {
		require.True(t, typed.IsCommand())
		require.Equal(t, uint32(3), typed.Sequence)
		received <- msg
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	rw.in <- encodeMsg(t, &msgs.Halt{}, 3)
	select {
	case msg := <-received:
		require.IsType(t, &msgs.Halt{}, msg)
	case <-time.After(time.Second):
		t.Fatal("message not dispatched")
	}

	rw.Close()
	require.Equal(t, io.EOF, <-done)
}

func TestPipeUnknownCommand(t *testing.T) {
	rw := newChanRW()
	p := NewPipe(rw)
	go p.Run(context.Background())
	defer rw.Close()

	typed := &msgs.Typed{Typed: pb.Typed{
		TypeId:   msgs.GroupCustom | 0x0001,
		Sequence: 7,
	}}
	pkt, err := typed.Encode()
	require.NoError(t, err)
	rw.in <- pkt

	msg, reply := decodeMsg(t, recvPacket(t, rw))
	cmdErr, ok := msg.(*msgs.CommandErr)
	require.True(t, ok)
	require.NotEmpty(t, cmdErr.Message)
	require.Equal(t, uint32(7), reply.Sequence)
}

func TestPipeUnknownEventDropped(t *testing.T) {
	rw := newChanRW()
	p := NewPipe(rw)

	received := make(chan fw.Message, 1)
	p.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fw.Message, typed *msgs.Typed) error {
		received <- msg
		return nil
	})
	go p.Run(context.Background())
	defer rw.Close()

	typed := &msgs.Typed{Typed: pb.Typed{
		TypeId: msgs.TypeIDKindEvent | msgs.GroupCustom | 0x0001,
	}}
	pkt, err := typed.Encode()
	require.NoError(t, err)
	rw.in <- pkt
	// the pipe must still be alive after dropping the unknown event.
	rw.in <- encodeMsg(t, &msgs.StatusEvent{}, 0)

	select {
	case msg := <-received:
		require.IsType(t, &msgs.StatusEvent{}, msg)
	case <-time.After(time.Second):
		t.Fatal("pipe stalled after unknown event")
	}
	require.Empty(t, rw.out)
}

func TestRegistrarInterceptor(t *testing.T) {
	rw := newChanRW()
	var r Registrar
	intercepted := make(chan Command, 1)
	r.Init(rw, interceptFunc(func(ctx context.Context, cmd Command) bool {
		intercepted <- cmd
		return true
	}))
	go r.pipe.Run(context.Background())
	defer rw.Close()

	rw.in <- encodeMsg(t, &msgs.StateQuery{}, 5)

	select {
	case cmd := <-intercepted:
		require.IsType(t, &msgs.StateQuery{}, cmd.Msg())
		require.NoError(t, cmd.Done(&msgs.StateInfo{StateInfo: pb.StateInfo{Cycles: 8}}))
	case <-time.After(time.Second):
		t.Fatal("command not intercepted")
	}

	msg, reply := decodeMsg(t, recvPacket(t, rw))
	info, ok := msg.(*msgs.StateInfo)
	require.True(t, ok)
	require.Equal(t, uint32(8), info.Cycles)
	require.Equal(t, uint32(5), reply.Sequence)
}

type interceptFunc func(context.Context, Command) bool

func (f interceptFunc) InterceptCommand(ctx context.Context, cmd Command) bool {
	return f(ctx, cmd)
}
