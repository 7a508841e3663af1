// Package probe exposes debug probe commands in the shell.
package probe

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/ghostlabs/ghost.go/pkg/cli/sh"
	"github.com/ghostlabs/ghost.go/pkg/core"
	"github.com/ghostlabs/ghost.go/pkg/msgs"
)

func parsePoint(name string) (uint32, error) {
	switch name {
	case "evaluate", "eval":
		return core.PointEvaluate, nil
	case "escalate", "esc":
		return core.PointEscalate, nil
	}
	return 0, fmt.Errorf("unknown point %q (want evaluate|escalate)", name)
}

var (
	// HaltCmd suspends the monitor loop.
	HaltCmd = ishell.Cmd{
		Name:    "halt",
		Aliases: []string{"h"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.Halt{})
		}),
	}

	// ResumeCmd releases a halted monitor loop.
	ResumeCmd = ishell.Cmd{
		Name:    "resume",
		Aliases: []string{"r", "continue"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.Resume{})
		}),
	}

	// StepCmd advances a halted loop to the next suspension point.
	StepCmd = ishell.Cmd{
		Name:    "step",
		Aliases: []string{"s"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.Step{})
		}),
	}

	// StateCmd reads the monitor state words.
	StateCmd = ishell.Cmd{
		Name:    "state",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.StateQuery{})
		}),
	}

	// InjectCmd forces the threat flag, simulating a detection.
	InjectCmd = ishell.Cmd{
		Name:    "inject",
		Aliases: []string{"i"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			var msg msgs.StateWrite
			msg.Mask = msgs.StateWriteThreat
			msg.Threat = true
			sh.DoCommand(c, &msg)
		}),
	}

	// PokeCmd overwrites a state word.
	PokeCmd = ishell.Cmd{
		Name: "poke",
		Help: "threat BOOL | cycles N",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("WORD VALUE required"))
				return
			}
			var msg msgs.StateWrite
			switch c.Args[0] {
			case "threat":
				val, err := strconv.ParseBool(c.Args[1])
				if err != nil {
					c.Err(fmt.Errorf("invalid BOOL: %v", err))
					return
				}
				msg.Mask, msg.Threat = msgs.StateWriteThreat, val
			case "cycles":
				val, err := strconv.ParseUint(c.Args[1], 0, 32)
				if err != nil {
					c.Err(fmt.Errorf("invalid N: %v", err))
					return
				}
				msg.Mask, msg.Cycles = msgs.StateWriteCycles, uint32(val)
			default:
				c.Err(fmt.Errorf("unknown word %q (want threat|cycles)", c.Args[0]))
				return
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// BreakCmd arms a stop point.
	BreakCmd = ishell.Cmd{
		Name:    "break",
		Aliases: []string{"b"},
		Help:    "evaluate|escalate",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("POINT required"))
				return
			}
			var msg msgs.BreakSet
			point, err := parsePoint(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			msg.Point = point
			sh.DoCommand(c, &msg)
		}),
	}

	// BreakClearCmd disarms a stop point.
	BreakClearCmd = ishell.Cmd{
		Name:    "break-clear",
		Aliases: []string{"bc"},
		Help:    "evaluate|escalate",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("POINT required"))
				return
			}
			var msg msgs.BreakClear
			point, err := parsePoint(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			msg.Point = point
			sh.DoCommand(c, &msg)
		}),
	}
)

func init() {
	sh.AddCmds(
		&HaltCmd,
		&ResumeCmd,
		&StepCmd,
		&StateCmd,
		&InjectCmd,
		&PokeCmd,
		&BreakCmd,
		&BreakClearCmd,
	)
}
