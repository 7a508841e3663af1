package websocket

import (
	"context"
	"fmt"

	"golang.org/x/net/websocket"

	"github.com/ghostlabs/ghost.go/pkg/link"
)

// Connector implements link.Connector by dialing a device's
// websocket endpoint directly. There is no registry behind the
// endpoint: Discover reports nothing, and the endpoint itself is
// the device regardless of the ref asked for.
type Connector struct {
	// URL is the device endpoint, e.g. ws://host:port.
	URL string
}

// NewConnector creates a Connector.
func NewConnector(serverURL string) *Connector {
	return &Connector{URL: serverURL}
}

// Discover implements link.Connector.
func (c *Connector) Discover(ctx context.Context) ([]link.DeviceInfo, error) {
	return nil, nil
}

// Connect implements link.Connector.
func (c *Connector) Connect(ctx context.Context, ref link.DeviceRef) (link.DeviceConn, error) {
	wsConn, err := websocket.Dial(c.URL, "", "http://localhost/")
	if err != nil {
		return nil, fmt.Errorf("dial %q error: %v", c.URL, err)
	}
	conn := &DeviceConn{}
	conn.Init(New(wsConn))
	return conn, nil
}

// DeviceConn implements link.DeviceConn over a websocket connection.
type DeviceConn struct {
	link.Conn
}
