package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriterRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)

	require.NoError(t, rw.WritePacket([]byte("alpha")))
	require.NoError(t, rw.WritePacket(nil))
	require.NoError(t, rw.WritePacket([]byte("beta")))

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("beta"), pkt)

	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)
}

func TestReadWriterOversized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(MaxPacketSize+1)))
	_, err := New(&buf).ReadPacket()
	require.Error(t, err)
}

func TestReadWriterTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(10)))
	buf.WriteString("short")
	_, err := New(&buf).ReadPacket()
	require.Equal(t, io.ErrUnexpectedEOF, err)
}
