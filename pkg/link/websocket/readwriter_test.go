package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/ghostlabs/ghost.go/pkg/link"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	conn, err := websocket.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), "", srv.URL)
	require.NoError(t, err)
	return conn
}

func TestReadWriterRoundtrip(t *testing.T) {
	echo := websocket.Handler(func(conn *websocket.Conn) {
		rw := New(conn)
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				return
			}
			if err = rw.WritePacket(pkt); err != nil {
				return
			}
		}
	})
	srv := httptest.NewServer(echo)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	rw := New(conn)

	for _, payload := range [][]byte{
		[]byte("alpha"),
		{0x00, 0x7e, 0xff},
		[]byte("beta"),
	} {
		require.NoError(t, rw.WritePacket(payload))
		pkt, err := rw.ReadPacket()
		require.NoError(t, err)
		require.Equal(t, payload, pkt)
	}
}

type interceptFunc func(context.Context, link.Command) bool

func (f interceptFunc) InterceptCommand(ctx context.Context, cmd link.Command) bool {
	return f(ctx, cmd)
}

func TestServerLink(t *testing.T) {
	s := NewServer("", interceptFunc(func(ctx context.Context, cmd link.Command) bool {
		if _, ok := cmd.Msg().(*msgs.StateQuery); !ok {
			return false
		}
		cmd.Done(&msgs.StateInfo{StateInfo: pb.StateInfo{Cycles: 3}})
		return true
	}))
	s.ctx = context.Background()
	srv := httptest.NewServer(websocket.Handler(s.serve))
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	rw := New(conn)

	typed, err := msgs.TypedFrom(&msgs.StateQuery{})
	require.NoError(t, err)
	typed.Sequence = 2
	pkt, err := typed.Encode()
	require.NoError(t, err)
	require.NoError(t, rw.WritePacket(pkt))

	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	reply, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	require.Equal(t, uint32(2), reply.Sequence)
	msg, err := reply.Decode()
	require.NoError(t, err)
	info, ok := msg.(*msgs.StateInfo)
	require.True(t, ok)
	require.Equal(t, uint32(3), info.Cycles)

	// the completed command exchange proves the registrar is wired,
	// so events must now fan out to this agent.
	require.NoError(t, s.SendEvent(context.Background(), &msgs.StatusEvent{
		StatusEvent: pb.StatusEvent{Cycles: 9},
	}))
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	event, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	msg, err = event.Decode()
	require.NoError(t, err)
	status, ok := msg.(*msgs.StatusEvent)
	require.True(t, ok)
	require.Equal(t, uint32(9), status.Cycles)
}

func TestConnectorConnect(t *testing.T) {
	s := NewServer("", nil)
	s.ctx = context.Background()
	srv := httptest.NewServer(websocket.Handler(s.serve))
	defer srv.Close()

	c := NewConnector("ws" + strings.TrimPrefix(srv.URL, "http"))
	infos, err := c.Discover(context.Background())
	require.NoError(t, err)
	require.Empty(t, infos)

	conn, err := c.Connect(context.Background(), link.DeviceRef{Model: "ghost-trigger", ID: "dev0"})
	require.NoError(t, err)
	require.NotNil(t, conn)
}
