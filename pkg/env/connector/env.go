// Package connector provides the environment for external agents
// connecting to firmware devices.
package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/ghostlabs/ghost.go/pkg/link"
	"github.com/ghostlabs/ghost.go/pkg/link/mqtt"
	"github.com/ghostlabs/ghost.go/pkg/link/websocket"
)

// Config provides common options to set up Connectors.
type Config struct {
	Ref link.DeviceRef

	// RegistryURL specifies the URL of the device registry.
	// e.g. mqtt://host:port/topic-prefix
	RegistryURL string
}

var defaultConfig = Config{
	RegistryURL: "mqtt://localhost:1883/ghost/",
}

func init() {
	if val := os.Getenv("GHOST_MODEL"); val != "" {
		defaultConfig.Ref.Model = val
	}
	if val := os.Getenv("GHOST_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("GHOST_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Model, "device-model", defaultConfig.Ref.Model, "Device model to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "device-id", defaultConfig.Ref.ID, "Device ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "device-reg", defaultConfig.RegistryURL, "Device registry URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (link.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	switch parsedURL.Scheme {
	case "mqtt":
		return mqtt.NewConnector(c.RegistryURL)
	case "ws", "wss":
		return websocket.NewConnector(c.RegistryURL), nil
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() link.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to a device.
func (c *Config) Connect() (link.DeviceConn, error) {
	if !c.Ref.IsValid() {
		return nil, fmt.Errorf("device model and id must be specified")
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(context.TODO(), c.Ref)
}

// MustConnect connects to a device and fails on error.
func (c *Config) MustConnect() link.DeviceConn {
	conn, err := c.Connect()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
