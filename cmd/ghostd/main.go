package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/ghostlabs/ghost.go/pkg/core"
	env "github.com/ghostlabs/ghost.go/pkg/env/device"
	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/link"
	"github.com/ghostlabs/ghost.go/pkg/probe"
)

func init() {
	env.SetDeviceModel("ghost-trigger", link.DeviceMeta{Description: "Threat monitor firmware"})
	env.SetupFlags()
	core.SetupFlags()
}

func main() {
	flag.Parse()

	state := core.NewState()
	prb := probe.New(state)
	e := env.NewConfig().MustNewEnv(prb)
	mon := core.NewConfig().NewMonitor(state)
	mon.Events = e.Registrar
	mon.Trap = prb
	prb.Events = e.Registrar

	fw.NewLoop().
		Add(e, mon, prb).
		RunOrFail()
}
