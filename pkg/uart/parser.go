package uart

type parseState int

const (
	stateHunt parseState = iota // scanning for SOF
	stateSeq                    // waiting for sequence byte
	stateLen                    // waiting for length byte
	stateData                   // receiving payload
	stateSum                    // waiting for checksum
)

// Parser consumes bytes and emits complete frames. Any protocol
// violation drops the partial frame and resumes hunting for SOF.
type Parser struct {
	state parseState
	frame Frame
	recvd int
}

// Reset resets the internal state of the parser.
func (p *Parser) Reset() {
	p.state = stateHunt
	p.frame = Frame{}
	p.recvd = 0
}

// Receiving indicates a frame is partially received.
func (p *Parser) Receiving() bool {
	return p.state != stateHunt
}

// Parse consumes one byte and returns a complete frame, or nil.
func (p *Parser) Parse(b byte) *Frame {
	switch p.state {
	case stateHunt:
		if b == SOF {
			p.state = stateSeq
		}
	case stateSeq:
		if seq := Seq(b); seq.IsValid() {
			p.frame = Frame{Seq: seq}
			p.state = stateLen
		} else if b != SOF {
			p.state = stateHunt
		}
	case stateLen:
		if b == 0 {
			p.state = stateSum
			break
		}
		p.frame.Data = make([]byte, b)
		p.recvd = 0
		p.state = stateData
	case stateData:
		p.frame.Data[p.recvd] = b
		if p.recvd++; p.recvd == len(p.frame.Data) {
			p.state = stateSum
		}
	case stateSum:
		frame := p.frame
		p.Reset()
		if b == Checksum(frame.Seq, frame.Data) {
			return &frame
		}
	}
	return nil
}
