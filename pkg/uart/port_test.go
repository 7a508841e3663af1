package uart

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortRoundtrip(t *testing.T) {
	a, b := net.Pipe()
	pa, pb := NewPort(a), NewPort(b)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pa.Run(ctx)
	go pb.Run(ctx)

	for _, payload := range [][]byte{
		[]byte("ping"),
		nil, // empty frame
		{SOF, 0x00, 0xff}, // payload bytes must not confuse framing
	} {
		require.NoError(t, pa.WritePacket(payload))
		pkt, err := pb.ReadPacket()
		require.NoError(t, err)
		require.Equal(t, payload, pkt)
	}

	// the link is symmetric.
	require.NoError(t, pb.WritePacket([]byte("pong")))
	pkt, err := pa.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("pong"), pkt)
}

func TestPortResync(t *testing.T) {
	a, b := net.Pipe()
	p := NewPort(b)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	// line noise before a valid frame is skipped.
	_, err := a.Write([]byte{0x00, 0x13, 0x37})
	require.NoError(t, err)
	_, err = (&Frame{Seq: 5, Data: []byte("ok")}).WriteTo(a)
	require.NoError(t, err)

	pkt, err := p.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("ok"), pkt)
}

func TestPortPacketTooLarge(t *testing.T) {
	a, _ := net.Pipe()
	p := NewPort(a)
	require.Error(t, p.WritePacket(make([]byte, MaxDataLen+1)))
}

func TestPortClosed(t *testing.T) {
	_, b := net.Pipe()
	p := NewPort(b)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	cancel()
	require.Equal(t, context.Canceled, <-done)
	_, err := p.ReadPacket()
	require.Equal(t, io.EOF, err)
}
