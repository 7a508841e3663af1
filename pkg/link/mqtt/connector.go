package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/ghostlabs/ghost.go/pkg/link"
)

// Connector implements link.Connector using MQTT.
type Connector struct {
	DiscoverTimeout time.Duration

	options     *paho.ClientOptions
	topicPrefix string
}

// DefaultDiscoverTimeout defines the default timeout of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		options:         opts,
		topicPrefix:     topicPrefix,
	}, nil
}

// Discover implements Connector. Devices are found by their retained
// meta topics.
func (c *Connector) Discover(ctx context.Context) (res []link.DeviceInfo, err error) {
	q := NewQueue(c.options, c.topicPrefix)
	q.Connect()
	defer q.Close()
	resCh := make(chan link.DeviceInfo, 1)
	q.Sub("+/+/meta", Handler(func(topic string, payload []byte) {
		items := strings.Split(topic, "/")
		if len(items) != 3 || len(payload) == 0 {
			return
		}
		info := link.DeviceInfo{Ref: link.DeviceRef{Model: items[0], ID: items[1]}}
		json.Unmarshal(payload, &info.Meta)
		select {
		case resCh <- info:
		case <-time.After(time.Second):
		}
	}))

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	timeout := time.After(dur)
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-timeout:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref link.DeviceRef) (link.DeviceConn, error) {
	conn := &DeviceConn{
		Queue: NewQueue(c.options, c.topicPrefix),
	}
	conn.Init(NewPacketReadWriter(conn.Queue).ForAgent(ref))
	token := conn.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return conn, nil
}

// DeviceConn implements link.DeviceConn using MQTT.
type DeviceConn struct {
	link.Conn
	Queue *Queue
}
