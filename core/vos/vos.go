// Package vos contains the operating system collaborators the shell is built
// on: the filesystem, the environment, standard I/O and process creation.
//
// Each piece is an interface or a thin wrapper so the shell can run against
// the real OS in production and against in-memory fakes in tests.
package vos

const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"
	EnvPath = "PATH"
)
