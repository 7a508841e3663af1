package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	pb "github.com/ghostlabs/ghost.go/pkg/proto/ghost/v1"
)

func TestTypedRoundtrip(t *testing.T) {
	orig := &StateInfo{StateInfo: pb.StateInfo{
		Threat: true,
		Cycles: 17,
		Halted: true,
	}}
	typed, err := TypedFrom(orig)
	require.NoError(t, err)
	require.Equal(t, StateInfoTypeID, typed.TypeId)

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)

	msg, err := decoded.Decode()
	require.NoError(t, err)
	info, ok := msg.(*StateInfo)
	require.True(t, ok)
	require.True(t, info.Threat)
	require.Equal(t, uint32(17), info.Cycles)
	require.True(t, info.Halted)
}

func TestTypedKind(t *testing.T) {
	cmd, err := TypedFrom(&Halt{})
	require.NoError(t, err)
	require.True(t, cmd.IsCommand())
	require.False(t, cmd.IsEvent())

	event, err := TypedFrom(&AlertEvent{})
	require.NoError(t, err)
	require.True(t, event.IsEvent())
	require.False(t, event.IsCommand())
}

func TestTypedReplyIDs(t *testing.T) {
	require.NotZero(t, CommandOKTypeID&TypeIDMaskReply)
	require.NotZero(t, StateInfoTypeID&TypeIDMaskReply)
	require.Zero(t, StateQueryTypeID&TypeIDMaskReply)
	require.Equal(t, StateQueryTypeID, StateInfoTypeID&^TypeIDMaskReply)
}

type plainMsg struct{}

func (m *plainMsg) NewMessage() fw.Message { return &plainMsg{} }

func TestTypedFromNotSerializable(t *testing.T) {
	_, err := TypedFrom(&plainMsg{})
	require.Equal(t, ErrNotSerializable, err)
}

func TestTypedDecodeUnknownType(t *testing.T) {
	typed := &Typed{Typed: pb.Typed{TypeId: GroupCustom | 0x0001}}
	_, err := typed.Decode()
	require.Error(t, err)
	unknown, ok := err.(*ErrUnknownType)
	require.True(t, ok)
	require.Equal(t, GroupCustom|uint32(0x0001), unknown.TypeID)
}

func TestDecodeTypedMalformed(t *testing.T) {
	_, err := DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

func TestMessageTypesConsistent(t *testing.T) {
	for id, msgType := range MessageTypes {
		msg := msgType.NewMessage()
		s, ok := msg.(SerializableMessage)
		require.True(t, ok)
		require.Equal(t, id, s.TypeID())
	}
}

func TestCommandErrAsError(t *testing.T) {
	err := NewCommandErrFromMsg("boom")
	require.EqualError(t, err, "boom")
}
