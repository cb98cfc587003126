package commands

import (
	"fmt"
	"strings"
)

// Echo writes its arguments separated by single spaces.
func Echo(ctx *Context, args []string) Outcome {
	fmt.Fprintln(ctx.Stdout, strings.Join(args, " "))
	return Continue(0)
}

func init() {
	mustAddBuiltin("echo", Echo)
}
