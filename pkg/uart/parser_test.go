package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseAll(p *Parser, data []byte) []*Frame {
	var frames []*Frame
	for _, b := range data {
		if f := p.Parse(b); f != nil {
			frames = append(frames, f)
		}
	}
	return frames
}

func TestParserRoundtrip(t *testing.T) {
	var p Parser
	sent := &Frame{Seq: 9, Data: []byte("hello")}
	frames := parseAll(&p, sent.Bytes())
	require.Len(t, frames, 1)
	require.Equal(t, sent.Seq, frames[0].Seq)
	require.Equal(t, sent.Data, frames[0].Data)
	require.False(t, p.Receiving())
}

func TestParserEmptyFrame(t *testing.T) {
	var p Parser
	frames := parseAll(&p, (&Frame{Seq: 1}).Bytes())
	require.Len(t, frames, 1)
	require.Empty(t, frames[0].Data)
}

func TestParserLeadingGarbage(t *testing.T) {
	var p Parser
	data := append([]byte{0x00, 0x41, 0x42, 0xff}, (&Frame{Seq: 2, Data: []byte{0xaa}}).Bytes()...)
	frames := parseAll(&p, data)
	require.Len(t, frames, 1)
	require.Equal(t, []byte{0xaa}, frames[0].Data)
}

func TestParserBadChecksum(t *testing.T) {
	var p Parser
	bad := (&Frame{Seq: 3, Data: []byte{1, 2, 3}}).Bytes()
	bad[len(bad)-1] ^= 0xff
	require.Empty(t, parseAll(&p, bad))

	// the parser recovers and accepts the next valid frame.
	frames := parseAll(&p, (&Frame{Seq: 4, Data: []byte{4}}).Bytes())
	require.Len(t, frames, 1)
	require.Equal(t, Seq(4), frames[0].Seq)
}

func TestParserBadSeq(t *testing.T) {
	var p Parser
	// 0x80 is not a valid sequence byte, the frame is abandoned.
	require.Empty(t, parseAll(&p, []byte{SOF, 0x80, 0x00, 0x80}))
	require.False(t, p.Receiving())

	// a repeated SOF keeps hunting for the sequence byte.
	frames := parseAll(&p, append([]byte{SOF}, (&Frame{Seq: 6}).Bytes()...))
	require.Len(t, frames, 1)
}

func TestParserBackToBackFrames(t *testing.T) {
	var p Parser
	var data []byte
	seq := Seq(1)
	for i := 0; i < 3; i++ {
		data = append(data, (&Frame{Seq: seq, Data: []byte{byte(i)}}).Bytes()...)
		seq = seq.Next()
	}
	frames := parseAll(&p, data)
	require.Len(t, frames, 3)
	for i, f := range frames {
		require.Equal(t, []byte{byte(i)}, f.Data)
	}
}
