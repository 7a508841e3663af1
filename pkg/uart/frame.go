package uart

import (
	"io"
	"time"
)

// SOF is the start-of-frame marker.
const SOF byte = 0x7e

// MaxDataLen is the maximum payload length of one frame.
const MaxDataLen = 0xff

// Seq is a frame sequence number. Valid values are 1..0x7f excluding
// SOF, so a sequence byte can never be mistaken for a frame start.
type Seq byte

// NewSeq creates a pseudo-random valid sequence number.
func NewSeq() Seq {
	return Seq(byte(time.Now().UnixNano())).Next()
}

// Next calculates the next sequence number.
func (s Seq) Next() Seq {
	n := (byte(s) + 1) & 0x7f
	for n == 0 || n == SOF {
		n++
	}
	return Seq(n)
}

// IsValid checks if it's a valid sequence number.
func (s Seq) IsValid() bool {
	return s > 0 && s < 0x80 && byte(s) != SOF
}

// Frame is one frame on the wire:
// SOF, seq, len, payload, checksum.
type Frame struct {
	Seq  Seq
	Data []byte
}

// Checksum computes the frame checksum: XOR over seq, length and
// payload bytes.
func Checksum(seq Seq, data []byte) byte {
	sum := byte(seq) ^ byte(len(data))
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, len(f.Data)+4)
	b[0], b[1], b[2] = SOF, byte(f.Seq), byte(len(f.Data))
	copy(b[3:], f.Data)
	b[len(b)-1] = Checksum(f.Seq, f.Data)
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (int, error) {
	return w.Write(f.Bytes())
}
