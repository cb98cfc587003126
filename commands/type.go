package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/tinysh/core/vos"
)

// Type describes how a name would be interpreted as a command.
func Type(ctx *Context, args []string) Outcome {
	if len(args) != 1 {
		ctx.LogInvalidInvocation(append([]string{"type"}, args...), errors.New("expected exactly one name"))
		fmt.Fprintln(ctx.Stdout, "type: usage: type NAME")
		return Continue(1)
	}

	name := args[0]
	if _, ok := ctx.Registry.Lookup(name); ok {
		fmt.Fprintf(ctx.Stdout, "%s is a shell builtin\n", name)
	} else if path, err := vos.LookPath(ctx.FS, name, ctx.SearchPath); err == nil {
		fmt.Fprintf(ctx.Stdout, "%s is %s\n", name, path)
	} else {
		fmt.Fprintf(ctx.Stdout, "%s not found\n", name)
	}
	return Continue(0)
}

func init() {
	mustAddBuiltin("type", Type)
}
