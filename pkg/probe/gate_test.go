package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitReturns(g *Gate) bool {
	done := make(chan struct{})
	go func() {
		g.Wait(context.Background())
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(50 * time.Millisecond):
		return false
	}
}

func TestGateOpen(t *testing.T) {
	g := NewGate()
	require.False(t, g.Halted())
	require.NoError(t, g.Wait(context.Background()))
}

func TestGateHaltResume(t *testing.T) {
	g := NewGate()
	g.Halt()
	require.True(t, g.Halted())
	require.False(t, waitReturns(g))

	waited := make(chan error, 1)
	go func() {
		waited <- g.Wait(context.Background())
	}()
	g.Resume()
	select {
	case err := <-waited:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Resume")
	}
	require.False(t, g.Halted())
}

func TestGateStep(t *testing.T) {
	g := NewGate()
	g.Halt()

	// a pending step token releases exactly one Wait.
	g.Step()
	require.NoError(t, g.Wait(context.Background()))
	require.True(t, g.Halted())

	// a step fired while a waiter blocks releases it too.
	waited := make(chan error, 1)
	go func() {
		waited <- g.Wait(context.Background())
	}()
	time.Sleep(10 * time.Millisecond)
	g.Step()
	select {
	case err := <-waited:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Step")
	}
	require.True(t, g.Halted())
}

func TestGateWaitCanceled(t *testing.T) {
	g := NewGate()
	g.Halt()
	ctx, cancel := context.WithCancel(context.Background())
	waited := make(chan error, 1)
	go func() {
		waited <- g.Wait(ctx)
	}()
	cancel()
	select {
	case err := <-waited:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}
