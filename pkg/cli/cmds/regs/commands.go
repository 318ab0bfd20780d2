package regs

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tmc.go/pkg/cli/sh"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

var (
	// NodesCmd exposes NodesQuery command.
	NodesCmd = ishell.Cmd{
		Name:    "nodes",
		Aliases: []string{"ns"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.NodesQuery{})
		}),
	}

	// ListCmd exposes RegisterListQuery command.
	ListCmd = ishell.Cmd{
		Name:    "reg.list",
		Aliases: []string{"rl"},
		Help:    "[NODE]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			var msg msgs.RegisterListQuery
			var err error
			if msg.Node, err = nodeArg(s, c.Args, 0); err != nil {
				c.Err(err)
				return
			}
			reply, err := s.Exec(&msg)
			if err != nil {
				c.Err(err)
				return
			}
			list, ok := reply.(*msgs.RegisterList)
			if !ok || s.OutputJSON {
				if err := s.PrintMessage(c, reply); err != nil {
					c.Err(err)
				}
				return
			}
			var out bytes.Buffer
			w := tabwriter.NewWriter(&out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ADDR\tNAME\tACCESS\tVALUE\t\n")
			for _, ent := range list.Entries {
				var flags string
				if ent.Touched {
					flags += "*"
				}
				if ent.Pending {
					flags += "+"
				}
				fmt.Fprintf(w, "0x%02x\t%s\t%s\t0x%08x\t%s\n", ent.Addr, ent.Name, ent.Access, ent.Value, flags)
			}
			w.Flush()
			c.Print(out.String())
		}),
	}

	// ReadCmd exposes RegisterRead command.
	ReadCmd = ishell.Cmd{
		Name:    "reg.read",
		Aliases: []string{"rr"},
		Help:    "NAME [NODE]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("NAME required"))
				return
			}
			var msg msgs.RegisterRead
			var err error
			if msg.Node, err = nodeArg(sh.ShellFrom(c), c.Args, 1); err != nil {
				c.Err(err)
				return
			}
			msg.Name = c.Args[0]
			sh.DoCommand(c, &msg)
		}),
	}

	// WriteCmd exposes RegisterWrite command.
	WriteCmd = ishell.Cmd{
		Name:    "reg.write",
		Aliases: []string{"rw"},
		Help:    "NAME VALUE [NODE]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			writeRegister(c, false)
		}),
	}

	// VerifyCmd exposes RegisterWrite command verified by the write counter.
	VerifyCmd = ishell.Cmd{
		Name:    "reg.verify",
		Aliases: []string{"rv"},
		Help:    "NAME VALUE [NODE]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			writeRegister(c, true)
		}),
	}
)

func writeRegister(c *ishell.Context, verify bool) {
	if len(c.Args) < 2 {
		c.Err(fmt.Errorf("NAME and VALUE required"))
		return
	}
	msg := msgs.RegisterWrite{}
	msg.Name, msg.Verify = c.Args[0], verify
	val, err := sh.ParseUint32(c.Args[1])
	if err != nil {
		c.Err(fmt.Errorf("Invalid VALUE: %v", err))
		return
	}
	msg.Value = val
	if msg.Node, err = nodeArg(sh.ShellFrom(c), c.Args, 2); err != nil {
		c.Err(err)
		return
	}
	sh.DoCommand(c, &msg)
}

func nodeArg(s *sh.Shell, args []string, index int) (uint32, error) {
	if len(args) <= index {
		return s.Node, nil
	}
	val, err := sh.ParseUint32(args[index])
	if err != nil || val > 0xff {
		return 0, fmt.Errorf("Invalid NODE: %q", args[index])
	}
	return val, nil
}

func init() {
	sh.AddCmds(
		&NodesCmd,
		&ListCmd,
		&ReadCmd,
		&WriteCmd,
		&VerifyCmd,
	)
}
