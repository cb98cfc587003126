package vos

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/tinysh/third_party/realpath"
	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem.
type VFS = afero.Fs

// NewOsFs returns a VFS backed by the host filesystem.
func NewOsFs() VFS {
	return afero.NewOsFs()
}

// Realpath canonicalizes name, resolving it relative to wd if it isn't
// absolute. Every component must exist; symbolic links are followed when the
// filesystem supports them.
func Realpath(vfs VFS, wd, name string) (string, error) {
	return realpath.Realpath(&realpathOs{wd: wd, base: vfs}, name)
}

// IsDir reports whether name exists and is a directory.
func IsDir(vfs VFS, name string) bool {
	fi, err := vfs.Stat(name)
	return err == nil && fi.IsDir()
}

// IsRegular reports whether name exists and is a regular file.
func IsRegular(vfs VFS, name string) bool {
	fi, err := vfs.Stat(name)
	return err == nil && fi.Mode().IsRegular()
}

type realpathOs struct {
	wd   string
	base VFS
}

var _ realpath.OS = (*realpathOs)(nil)

func (r *realpathOs) Getwd() string {
	return r.wd
}

func (r *realpathOs) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := r.base.(afero.Lstater); ok {
		stat, _, err := lstater.LstatIfPossible(name)
		return stat, err
	}
	return r.base.Stat(name)
}

func (r *realpathOs) Readlink(name string) (string, error) {
	if reader, ok := r.base.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", errors.New("not a link")
}
