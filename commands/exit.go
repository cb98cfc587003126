package commands

import (
	"errors"
	"strconv"
)

// Exit stops the shell. With no arguments the shell exits with the status of
// the last command, a single argument is parsed as the exit status and falls
// back to 0 if it isn't a number.
func Exit(ctx *Context, args []string) Outcome {
	if len(args) != 1 {
		if len(args) > 1 {
			ctx.LogInvalidInvocation(append([]string{"exit"}, args...), errors.New("too many arguments"))
		}
		return Terminate(ctx.LastStatus)
	}

	status, err := strconv.Atoi(args[0])
	if err != nil {
		ctx.LogInvalidInvocation([]string{"exit", args[0]}, err)
		return Terminate(0)
	}
	return Terminate(status)
}

func init() {
	mustAddBuiltin("exit", Exit)
}
