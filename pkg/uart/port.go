package uart

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
)

// Port adapts a raw byte stream (serial console, pty, socket) to
// the link's packet interface using uart framing.
type Port struct {
	rwc io.ReadWriteCloser

	seq      Seq
	peerSeq  Seq
	parser   Parser
	packetCh chan []byte
	sendLock sync.Mutex
}

// NewPort creates a Port over rwc.
func NewPort(rwc io.ReadWriteCloser) *Port {
	return &Port{
		rwc:      rwc,
		seq:      NewSeq(),
		packetCh: make(chan []byte, 1),
	}
}

// ReadPacket implements PacketReader.
func (p *Port) ReadPacket() ([]byte, error) {
	pkt, ok := <-p.packetCh
	if !ok {
		return nil, io.EOF
	}
	return pkt, nil
}

// WritePacket implements PacketWriter.
func (p *Port) WritePacket(pkt []byte) error {
	if len(pkt) > MaxDataLen {
		return fmt.Errorf("packet too large: %d", len(pkt))
	}
	p.sendLock.Lock()
	defer p.sendLock.Unlock()
	frame := Frame{Seq: p.seq, Data: pkt}
	if _, err := frame.WriteTo(p.rwc); err != nil {
		return err
	}
	p.seq = p.seq.Next()
	return nil
}

// Run implements Runnable, pumping received bytes through the parser.
func (p *Port) Run(ctx context.Context) error {
	defer close(p.packetCh)
	return fw.RunWithContextCloser(ctx, p.rwc, func() error {
		buf := make([]byte, 256)
		for {
			n, err := p.rwc.Read(buf)
			if err != nil {
				return err
			}
			for _, b := range buf[:n] {
				frame := p.parser.Parse(b)
				if frame == nil {
					continue
				}
				if p.peerSeq.IsValid() && frame.Seq != p.peerSeq {
					glog.V(2).Infof("uart: seq gap, want %d got %d", p.peerSeq, frame.Seq)
				}
				p.peerSeq = frame.Seq.Next()
				p.packetCh <- frame.Data
			}
		}
	})
}

// Close implements io.Closer.
func (p *Port) Close() error {
	return p.rwc.Close()
}
