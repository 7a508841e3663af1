package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/golang/protobuf/proto"

	"github.com/ghostlabs/ghost.go/pkg/link/mqtt"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
)

var mqttURL = "mqtt://localhost:1883/ghost/"

func init() {
	if val := os.Getenv("GHOST_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

// ghostmon is a passive bus monitor: it subscribes to every device's
// presence and link topics and prints whatever passes by.
func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	q.Sub("+/+/meta", mqtt.Handler(printMeta))
	q.Sub("+/+/msg", mqtt.Handler(printTyped))
	q.Sub("+/+/cmd", mqtt.Handler(printTyped))
	q.Connect()
	select {}
}

func printMeta(topic string, payload []byte) {
	device := strings.TrimSuffix(topic, "/meta")
	if len(payload) == 0 {
		log.Printf("%s gone", device)
		return
	}
	log.Printf("%s up %s", device, payload)
}

func printTyped(topic string, payload []byte) {
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		log.Printf("%s unparseable: %v", topic, err)
		return
	}
	msg, err := typed.Decode()
	if err != nil {
		log.Printf("%s type %08x seq %d: %v", topic, typed.TypeId, typed.Sequence, err)
		return
	}
	body := msg.(msgs.SerializableMessage).Serializable()
	log.Printf("%s %s %s", topic, proto.MessageName(body), body.String())
}
