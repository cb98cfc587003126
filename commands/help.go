package commands

import (
	"fmt"
	"strings"
)

// Help is the help shell builtin, it lists the registered builtins.
func Help(ctx *Context, args []string) Outcome {
	cmd := &SimpleCommand{
		Use:   "help [-h]",
		Short: "Display information about builtin commands.",
	}

	return cmd.Run(ctx, "help", args, func() Outcome {
		w := ctx.Stdout
		fmt.Fprintln(w, "tinysh, an interactive shell")
		fmt.Fprintln(w, "These shell commands are defined internally.  Type `help' to see this list.")
		fmt.Fprintln(w, "Any other command is searched for in the directories listed in PATH.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Builtins:")
		fmt.Fprintln(w, strings.Join(ctx.Registry.Names(), "\n"))
		return Continue(0)
	})
}

func init() {
	mustAddBuiltin("help", Help)
}
