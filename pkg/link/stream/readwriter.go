package stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxPacketSize bounds a single packet on the wire.
const MaxPacketSize = 1 << 20

// ReadWriter implements PacketReadWriter over a byte stream.
// Each packet is prefixed by a 4-byte big-endian length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter over a byte stream.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p, binary.BigEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketSize {
		return nil, fmt.Errorf("packet too large: %d", size)
	}
	pkt := make([]byte, size)
	_, err := io.ReadFull(p, pkt)
	return pkt, err
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if err := binary.Write(p, binary.BigEndian, uint32(len(pkt))); err != nil {
		return err
	}
	_, err := p.Write(pkt)
	return err
}
