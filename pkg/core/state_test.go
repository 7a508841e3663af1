package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateInitial(t *testing.T) {
	s := NewState()
	require.False(t, s.Threat())
	require.Equal(t, uint32(0), s.Cycles())
}

func TestStateReadIdempotent(t *testing.T) {
	s := NewState()
	s.SetThreat(true)
	s.SetCycles(42)
	for i := 0; i < 3; i++ {
		require.True(t, s.Threat())
		require.Equal(t, uint32(42), s.Cycles())
	}
}

func TestStateOverwrite(t *testing.T) {
	s := NewState()
	s.SetThreat(true)
	require.True(t, s.Threat())
	s.SetThreat(false)
	require.False(t, s.Threat())

	s.SetCycles(7)
	s.advance()
	require.Equal(t, uint32(8), s.Cycles())
}

func TestStateCounterWraps(t *testing.T) {
	s := NewState()
	s.SetCycles(0xffffffff)
	s.advance()
	require.Equal(t, uint32(0), s.Cycles())
}
