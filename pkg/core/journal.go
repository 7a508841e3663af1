package core

import "github.com/golang/glog"

// Journal receives the monitor's per-cycle records.
// The line formats below are the wire contract of the console sink,
// consumers match them by substring and level.
type Journal interface {
	// Secure records an uneventful cycle.
	Secure(cycle uint32)
	// Threat records a positive detection.
	Threat(cycle uint32)
	// Escalate records backup protocols engaging.
	Escalate()
}

// GlogJournal writes records to the process console via glog.
type GlogJournal struct{}

// Secure implements Journal.
func (GlogJournal) Secure(cycle uint32) {
	glog.Infof("system secure [cycle %d]", cycle)
}

// Threat implements Journal.
func (GlogJournal) Threat(cycle uint32) {
	glog.Errorf("!! THREAT DETECTED !! [cycle %d]", cycle)
}

// Escalate implements Journal.
func (GlogJournal) Escalate() {
	glog.Warning("engaging backup protocols...")
}
