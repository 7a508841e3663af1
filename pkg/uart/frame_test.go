package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeqNext(t *testing.T) {
	require.Equal(t, Seq(2), Seq(1).Next())
	require.Equal(t, Seq(1), Seq(0x7f).Next())
	require.Equal(t, Seq(1), Seq(0xff).Next())
	// SOF is skipped to keep frame starts unambiguous.
	require.Equal(t, Seq(0x7f), Seq(SOF-1).Next())
	require.True(t, NewSeq().IsValid())
}

func TestSeqValid(t *testing.T) {
	require.False(t, Seq(0).IsValid())
	require.True(t, Seq(1).IsValid())
	require.True(t, Seq(0x7f).IsValid())
	require.False(t, Seq(0x80).IsValid())
	require.False(t, Seq(SOF).IsValid())
}

func TestFrameBytes(t *testing.T) {
	f := &Frame{Seq: 3, Data: []byte{0x10, 0x20}}
	require.Equal(t, []byte{SOF, 0x03, 0x02, 0x10, 0x20, 0x03 ^ 0x02 ^ 0x10 ^ 0x20}, f.Bytes())

	empty := &Frame{Seq: 5}
	require.Equal(t, []byte{SOF, 0x05, 0x00, 0x05}, empty.Bytes())
}

func TestChecksum(t *testing.T) {
	require.Equal(t, byte(0x05), Checksum(5, nil))
	require.Equal(t, Checksum(5, []byte{1, 2}), Checksum(5, []byte{2, 1}))
	require.NotEqual(t, Checksum(5, []byte{1}), Checksum(6, []byte{1}))
}
