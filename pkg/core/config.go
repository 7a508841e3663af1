package core

import (
	"flag"
	"time"
)

// Config defines the monitor's fixed timing constants.
type Config struct {
	// SecureDelay is the per-cycle delay on the secure path.
	SecureDelay time.Duration
	// AlertDelay is the per-cycle delay after a detected threat,
	// modeling the extra time taken by the backup protocols.
	AlertDelay time.Duration
}

// Defaults
const (
	DefaultSecureDelay = 1 * time.Second
	DefaultAlertDelay  = 2 * time.Second
)

var defaultConfig = Config{
	SecureDelay: DefaultSecureDelay,
	AlertDelay:  DefaultAlertDelay,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.SecureDelay, "secure-delay", defaultConfig.SecureDelay, "Cycle delay while secure.")
	flag.DurationVar(&defaultConfig.AlertDelay, "alert-delay", defaultConfig.AlertDelay, "Cycle delay after a detected threat.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config from current defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewMonitor creates a Monitor using this config.
func (c *Config) NewMonitor(state *State) *Monitor {
	return NewMonitor(state, c)
}
