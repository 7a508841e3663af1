package mqtt

import (
	"context"
	"encoding/json"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/link"
)

// Registrar announces a device over MQTT and runs its command/event
// link.
type Registrar struct {
	Queue *Queue
	Info  link.DeviceInfo

	metaJSON  string
	registrar link.Registrar
}

// NewRegistrar creates a Registrar. Commands intercepted by icpt are
// serviced out-of-band, the rest enter the loop.
func NewRegistrar(brokerURL string, info link.DeviceInfo, icpt link.CommandInterceptor) (*Registrar, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		panic(err)
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+info.Ref.Name()+"/meta", nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("ghost:" + info.Ref.Name())
	}
	r := &Registrar{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		metaJSON: string(meta),
	}
	r.Queue.OnConnect = func(*Queue) { r.onConnected() }
	r.registrar.Init(NewPacketReadWriter(r.Queue).ForDevice(info.Ref), icpt)
	return r, nil
}

// SendEvent implements EventSender.
func (r *Registrar) SendEvent(ctx context.Context, msg fw.Message) error {
	return r.registrar.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fw.Loop) {
	loop.Add(&r.registrar)
	loop.AddRunnable(r)
}

// Run implements Runnable.
func (r *Registrar) Run(ctx context.Context) error {
	r.Queue.Connect()
	<-ctx.Done()
	r.Queue.PubWith(r.Info.Ref.Name()+"/meta", nil, 1, true)
	r.Queue.Close()
	return ctx.Err()
}

func (r *Registrar) onConnected() {
	r.Queue.PubWith(r.Info.Ref.Name()+"/meta", []byte(r.metaJSON), 1, true)
}
