// Package msgs provides the device protocol support and all message schemas.
package msgs

// The device protocol is communicated between the firmware and an
// external agent (debug probe or bus monitor), and uses
// transport-agnostic primitives.
//
// Commands flow agent -> firmware, replies and events firmware -> agent.
