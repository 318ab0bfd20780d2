package all

import (
	// all commands
	_ "github.com/robotalks/tmc.go/pkg/cli/cmds/regs"
)
