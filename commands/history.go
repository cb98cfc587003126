package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// RunHistory displays or clears the lines entered this session.
func RunHistory(ctx *Context, args []string) Outcome {
	cmd := &SimpleCommand{
		Use:   "history [-c] [N]",
		Short: "Display the history list with line numbers, or the last N lines.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(ctx, "history", args, func() Outcome {
		if *clear {
			ctx.History.Clear()
			return Continue(0)
		}

		lines := ctx.History.Lines()
		start := 0
		switch positional := cmd.Flags().Args(); len(positional) {
		case 0:
		case 1:
			n, err := strconv.Atoi(positional[0])
			if err != nil || n < 0 {
				ctx.LogInvalidInvocation(append([]string{"history"}, args...), fmt.Errorf("%s: numeric argument required", positional[0]))
				fmt.Fprintf(ctx.Stdout, "history: %s: numeric argument required\n", positional[0])
				return Continue(1)
			}
			if n < len(lines) {
				start = len(lines) - n
			}
		default:
			ctx.LogInvalidInvocation(append([]string{"history"}, args...), errors.New("too many arguments"))
			fmt.Fprintln(ctx.Stdout, "history: too many arguments")
			return Continue(1)
		}

		for i := start; i < len(lines); i++ {
			fmt.Fprintf(ctx.Stdout, "% 5d  %s\n", i+1, lines[i])
		}
		return Continue(0)
	})
}

func init() {
	mustAddBuiltin("history", RunHistory)
}
