package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
)

// testCycle is a minimal CycleContext driving the monitor directly.
type testCycle struct {
	delay time.Duration
}

func (c *testCycle) Context() context.Context          { return context.Background() }
func (c *testCycle) Time() time.Time                   { return time.Now() }
func (c *testCycle) Stage() int                        { return fw.StageControl }
func (c *testCycle) Messages() fw.MessageStore         { return c }
func (c *testCycle) ProcessMessages(fw.MessageProcessor) {}
func (c *testCycle) AddMessages(...fw.Message)         {}
func (c *testCycle) PostMessage(fw.Message)            {}
func (c *testCycle) TriggerNext()                      {}
func (c *testCycle) SetNextDelay(d time.Duration)      { c.delay = d }

// recordingJournal records emitted lines in order.
type recordingJournal struct {
	records []string
}

func (j *recordingJournal) Secure(cycle uint32) {
	j.records = append(j.records, record("secure", cycle))
}

func (j *recordingJournal) Threat(cycle uint32) {
	j.records = append(j.records, record("threat", cycle))
}

func (j *recordingJournal) Escalate() {
	j.records = append(j.records, "escalate")
}

func record(kind string, cycle uint32) string {
	return fmt.Sprintf("%s/%d", kind, cycle)
}

type recordingSink struct {
	events []fw.Message
}

func (s *recordingSink) SendEvent(ctx context.Context, msg fw.Message) error {
	s.events = append(s.events, msg)
	return nil
}

func newTestMonitor() (*Monitor, *recordingJournal, *recordingSink) {
	journal := &recordingJournal{}
	sink := &recordingSink{}
	m := NewMonitor(NewState(), NewConfig())
	m.Journal = journal
	m.Events = sink
	return m, journal, sink
}

func runCycle(t *testing.T, m *Monitor) *testCycle {
	cc := &testCycle{}
	require.NoError(t, m.Control(cc))
	require.NoError(t, m.finishCycle(cc))
	return cc
}

func TestMonitorSecureCycles(t *testing.T) {
	// scenario: flag never set for 5 cycles.
	m, journal, sink := newTestMonitor()
	for i := 0; i < 5; i++ {
		cc := runCycle(t, m)
		require.Equal(t, m.Config.SecureDelay, cc.delay)
	}
	require.Equal(t, []string{
		"secure/0", "secure/1", "secure/2", "secure/3", "secure/4",
	}, journal.records)
	require.Equal(t, uint32(5), m.State.Cycles())
	require.Len(t, sink.events, 5)
	for n, event := range sink.events {
		status, ok := event.(*msgs.StatusEvent)
		require.True(t, ok)
		require.False(t, status.Threat)
		require.Equal(t, uint32(n), status.Cycles)
	}
}

func TestMonitorEscalation(t *testing.T) {
	// scenario: flag injected before the third cycle's evaluation.
	m, journal, sink := newTestMonitor()
	for i := 0; i < 2; i++ {
		runCycle(t, m)
	}
	m.State.SetThreat(true)
	cc := runCycle(t, m)
	require.Equal(t, m.Config.AlertDelay, cc.delay)
	// one-shot: the next evaluation finds the flag cleared.
	cc = runCycle(t, m)
	require.Equal(t, m.Config.SecureDelay, cc.delay)

	require.Equal(t, []string{
		"secure/0", "secure/1",
		"threat/2", "escalate",
		"secure/3",
	}, journal.records)
	require.Equal(t, uint32(4), m.State.Cycles())

	require.Len(t, sink.events, 5)
	status := sink.events[2].(*msgs.StatusEvent)
	require.True(t, status.Threat)
	require.Equal(t, uint32(2), status.Cycles)
	alert := sink.events[3].(*msgs.AlertEvent)
	require.Equal(t, uint32(2), alert.Cycles)
}

func TestMonitorRepeatedInjection(t *testing.T) {
	// scenario: flag injected before cycles 2 and 7 only.
	m, journal, _ := newTestMonitor()
	var escalations int
	for i := uint32(0); i < 10; i++ {
		if i == 2 || i == 7 {
			m.State.SetThreat(true)
		}
		runCycle(t, m)
	}
	for _, rec := range journal.records {
		if rec == "escalate" {
			escalations++
		}
	}
	require.Equal(t, 2, escalations)
	require.Contains(t, journal.records, "threat/2")
	require.Contains(t, journal.records, "threat/7")
	require.Equal(t, uint32(10), m.State.Cycles())
}

type recordingTrap struct {
	points []uint32
}

func (t *recordingTrap) Pause(ctx context.Context, point, cycle uint32) {
	t.points = append(t.points, point)
}

func TestMonitorStopPoints(t *testing.T) {
	m, _, _ := newTestMonitor()
	trap := &recordingTrap{}
	m.Trap = trap

	runCycle(t, m)
	require.Equal(t, []uint32{PointEvaluate}, trap.points)

	m.State.SetThreat(true)
	runCycle(t, m)
	require.Equal(t, []uint32{PointEvaluate, PointEvaluate, PointEscalate}, trap.points)
}
