// Package shell splits input lines into commands.
//
// Lines are broken into words on runs of ASCII whitespace. Quotes,
// backslashes, globs and variable references have no special meaning; they
// are kept as literal parts of the word they appear in.
package shell

import "strings"

// Invocation is a single parsed command line.
type Invocation struct {
	// Name is the command to run.
	Name string
	// Args holds the arguments following the name, it may be empty.
	Args []string
}

// Argv returns the name followed by the arguments.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Name}, inv.Args...)
}

// Tokenize splits line into words separated by runs of ASCII whitespace.
// Blank input produces no words.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isBlank)
}

// Parse tokenizes line and returns the resulting invocation. The boolean is
// false if the line was blank.
func Parse(line string) (Invocation, bool) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Invocation{}, false
	}

	return Invocation{Name: tokens[0], Args: tokens[1:]}, true
}

func isBlank(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
