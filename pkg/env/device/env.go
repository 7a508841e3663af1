// Package device provides the environment for firmware devices:
// identity, registrars and link transports built from configuration.
package device

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ghostlabs/ghost.go/pkg/env"
	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/link"
	"github.com/ghostlabs/ghost.go/pkg/link/mqtt"
	"github.com/ghostlabs/ghost.go/pkg/link/websocket"
	"github.com/ghostlabs/ghost.go/pkg/uart"
)

// Config provides common options to set up a device env.
type Config struct {
	Info link.DeviceInfo

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// SerialDevice, when set, also exposes the link over a serial
	// console device (uart framing).
	SerialDevice string
	// WSListenAddr, when set, also serves the link over websocket
	// on this address.
	WSListenAddr string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/ghost/",
}

func init() {
	if val := os.Getenv("GHOST_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.Info.Ref.ID = env.MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Model, "model", defaultConfig.Info.Ref.Model, "Device model")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Device ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.SerialDevice, "serial", defaultConfig.SerialDevice, "Serial console device")
	flag.StringVar(&defaultConfig.WSListenAddr, "listen-ws", defaultConfig.WSListenAddr, "Websocket listen address")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// SetDeviceModel should be called in init with basic info about
// the device.
func SetDeviceModel(model string, meta link.DeviceMeta) {
	defaultConfig.Info.Ref.Model = model
	defaultConfig.Info.Meta = meta
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is the environment for a firmware device.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *link.RegistrarMux
}

// NewEnv creates an Env from config. Commands consumed by icpt are
// serviced out-of-band.
func (c *Config) NewEnv(icpt link.CommandInterceptor) (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("device model and id must be specified")
	}
	e := &Env{
		Config:    c,
		Registrar: &link.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info, icpt)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		e.Registrar.Add(reg)
		e.RegistryURLs = append(e.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.SerialDevice != "" {
		f, err := os.OpenFile(c.SerialDevice, os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("open serial device error: %v", err)
		}
		reg := &link.Registrar{}
		reg.Init(uart.NewPort(f), icpt)
		e.Registrar.Add(reg)
	}
	if c.WSListenAddr != "" {
		e.Registrar.Add(websocket.NewServer(c.WSListenAddr, icpt))
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return e, nil
}

// MustNewEnv creates an Env and fails on error.
func (c *Config) MustNewEnv(icpt link.CommandInterceptor) *Env {
	e, err := c.NewEnv(icpt)
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// AddToLoop adds registrars and fallbacks to the loop.
func (e *Env) AddToLoop(loop *fw.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&link.UnsupportedCommands{})
}
