package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephlewis42/tinysh/core/vos"
)

// Cd is the cd shell builtin
func Cd(ctx *Context, args []string) Outcome {
	var target string
	switch len(args) {
	case 0:
		target = ctx.Home
		if target == "" {
			target = "/"
		}
	case 1:
		target = args[0]
	default:
		ctx.LogInvalidInvocation(append([]string{"cd"}, args...), errors.New("too many arguments"))
		fmt.Fprintln(ctx.Stdout, "cd: too many arguments")
		return Continue(1)
	}

	resolved, err := vos.Realpath(ctx.FS, ctx.WorkingDir, expandHome(ctx, target))
	if err != nil || !vos.IsDir(ctx.FS, resolved) {
		fmt.Fprintf(ctx.Stdout, "%s: No such file or directory\n", target)
		return Continue(1)
	}

	ctx.WorkingDir = resolved
	return Continue(0)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(ctx *Context, target string) string {
	if ctx.Home == "" {
		return target
	}
	if target == "~" {
		return ctx.Home
	}
	if strings.HasPrefix(target, "~/") {
		return ctx.Home + target[1:]
	}
	return target
}

func init() {
	mustAddBuiltin("cd", Cd)
}
