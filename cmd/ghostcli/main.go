package main

//go-build: CGO_ENABLED=0

import (
	"github.com/ghostlabs/ghost.go/pkg/cli/sh"
	env "github.com/ghostlabs/ghost.go/pkg/env/connector"

	_ "github.com/ghostlabs/ghost.go/pkg/cli/cmds/all"
)

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
