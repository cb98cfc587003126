package commands

import "fmt"

// Pwd prints the working directory.
func Pwd(ctx *Context, args []string) Outcome {
	fmt.Fprintln(ctx.Stdout, ctx.WorkingDir)
	return Continue(0)
}

func init() {
	mustAddBuiltin("pwd", Pwd)
}
