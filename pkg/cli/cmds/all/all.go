// Package all registers all shell command providers.
package all

import (
	_ "github.com/ghostlabs/ghost.go/pkg/cli/cmds/probe"
)
