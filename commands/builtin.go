package commands

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"
)

// Outcome is the result of running a builtin.
type Outcome struct {
	// Status is the exit status of the command.
	Status int
	// Terminate is set if the shell should stop and exit with Status.
	Terminate bool
}

// Continue keeps the shell running with the given status.
func Continue(status int) Outcome {
	return Outcome{Status: status}
}

// Terminate stops the shell, status becomes the process's exit code.
func Terminate(status int) Outcome {
	return Outcome{Status: status, Terminate: true}
}

// ShellBuiltin is a command that runs inside the shell. args excludes the
// command name.
type ShellBuiltin interface {
	Main(ctx *Context, args []string) Outcome
}

type ShellBuiltinFunc func(ctx *Context, args []string) Outcome

func (f ShellBuiltinFunc) Main(ctx *Context, args []string) Outcome {
	return f(ctx, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Registry maps command names to builtins.
type Registry map[string]ShellBuiltin

// Lookup finds the builtin with the given name.
func (r Registry) Lookup(name string) (ShellBuiltin, bool) {
	builtin, ok := r[name]
	return builtin, ok
}

// Names returns the sorted names of all builtins.
func (r Registry) Names() []string {
	var names []string
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(Registry)

func mustAddBuiltin(name string, builtin ShellBuiltinFunc) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	AllBuiltins[name] = builtin
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(ctx *Context, name string, args []string, callback func() Outcome) Outcome {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	argv := append([]string{name}, args...)
	if err := opts.Getopt(argv, nil); err != nil {
		ctx.LogInvalidInvocation(argv, err)

		fmt.Fprintf(ctx.Stdout, "%s: %s\n\n", name, err)
		s.PrintHelp(ctx.Stdout)
		return Continue(1)
	}

	if *s.ShowHelp {
		s.PrintHelp(ctx.Stdout)
		return Continue(0)
	}

	return callback()
}
