package vos

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/tinysh/third_party/realpath"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func FSTestCase(t *testing.T, suite FSTestSuite) *FSTestCaseSetup {
	prefixer := func(in string) string {
		return in
	}

	testFS := suite.MakeFS(t)
	if suite.MakeRoot != nil {
		root := suite.MakeRoot(t)
		prefixer = func(in string) string {
			return filepath.Join(root, in)
		}
	}

	return &FSTestCaseSetup{
		t:        t,
		fs:       testFS,
		prefixer: prefixer,
	}
}

type FSTestCaseSetup struct {
	t        *testing.T
	fs       VFS
	prefixer func(string) string
}

func (tc *FSTestCaseSetup) MkdirAll(name string) *FSTestCaseSetup {
	if err := tc.fs.MkdirAll(tc.prefixer(name), 0755); err != nil {
		tc.t.Fatal(err)
	}

	return tc
}

func (tc *FSTestCaseSetup) Create(name string) *FSTestCaseSetup {
	if err := tc.fs.MkdirAll(tc.prefixer(path.Dir(name)), 0755); err != nil {
		tc.t.Fatal(err)
	}
	fd, err := tc.fs.Create(tc.prefixer(name))
	if err != nil {
		tc.t.Fatal(err)
	}
	fd.Close()

	return tc
}

func (tc *FSTestCaseSetup) Symlink(oldname, newname string) *FSTestCaseSetup {
	linker, ok := tc.fs.(afero.Linker)
	if !ok {
		tc.t.Skip("filesystem doesn't support symlinks")
	}
	if err := linker.SymlinkIfPossible(oldname, tc.prefixer(newname)); err != nil {
		tc.t.Fatal(err)
	}

	return tc
}

// Realpath resolves name relative to wd, both are unprefixed. Absolute names
// keep their "." and ".." components.
func (tc *FSTestCaseSetup) Realpath(wd, name string) *FSTestCaseCheck {
	if path.IsAbs(name) {
		name = strings.TrimSuffix(tc.prefixer("/"), "/") + name
	}

	out, err := Realpath(tc.fs, tc.prefixer(wd), name)
	return &FSTestCaseCheck{
		t:        tc.t,
		out:      out,
		err:      err,
		prefixer: tc.prefixer,
	}
}

type FSTestCaseCheck struct {
	t        *testing.T
	out      string
	err      error
	prefixer func(string) string
}

func (tc *FSTestCaseCheck) Equals(expected string) *FSTestCaseCheck {
	assert.Nil(tc.t, tc.err)
	assert.Equal(tc.t, tc.prefixer(expected), tc.out)
	return tc
}

func (tc *FSTestCaseCheck) ErrorIs(desired error) *FSTestCaseCheck {
	assert.ErrorIs(tc.t, tc.err, desired)
	return tc
}

type FSTestSuite struct {
	// MakeFS creates an FS for a single test.
	MakeFS func(t *testing.T) VFS

	// MakeRoot returns a directory all test paths are placed under, if nil
	// paths are used as is.
	MakeRoot func(t *testing.T) string
}

func RunRealpathTest(t *testing.T, suite FSTestSuite) {
	t.Run("absolute", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/home/user").
			Realpath("/", "/home/user").
			Equals("/home/user")
	})
	t.Run("relative", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/home/user/src").
			Realpath("/home/user", "src").
			Equals("/home/user/src")
	})
	t.Run("dot", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/home/user").
			Realpath("/home/user", ".").
			Equals("/home/user")
	})
	t.Run("dot-dot", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/home/user").
			Realpath("/home/user", "..").
			Equals("/home")
	})
	t.Run("root dot", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a").
			Realpath("/a", "/.").
			Equals("/")
	})
	t.Run("dot under root", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/tmp").
			Realpath("/", "/./tmp").
			Equals("/tmp")
	})
	t.Run("mixed", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a/b/c").
			MkdirAll("/a/d").
			Realpath("/a/b", "./c/../../d/").
			Equals("/a/d")
	})
	t.Run("trailing slashes", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a/b").
			Realpath("/", "/a//b//").
			Equals("/a/b")
	})
	t.Run("missing", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a").
			Realpath("/a", "does/not/exist").
			ErrorIs(fs.ErrNotExist)
	})
	t.Run("missing before dot-dot", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a").
			Realpath("/a", "nope/..").
			ErrorIs(fs.ErrNotExist)
	})
	t.Run("absolute missing before dot-dot", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a").
			Realpath("/", "/a/nope/..").
			ErrorIs(fs.ErrNotExist)
	})
	t.Run("file", func(t *testing.T) {
		FSTestCase(t, suite).
			Create("/a/file.txt").
			Realpath("/a", "file.txt").
			Equals("/a/file.txt")
	})
}

func TestRealpathMemMapFs(t *testing.T) {
	RunRealpathTest(t, FSTestSuite{
		MakeFS: func(t *testing.T) VFS {
			return afero.NewMemMapFs()
		},
	})
}

func TestRealpathOsFs(t *testing.T) {
	suite := FSTestSuite{
		MakeFS: func(t *testing.T) VFS {
			return NewOsFs()
		},
		MakeRoot: func(t *testing.T) string {
			root, err := filepath.EvalSymlinks(t.TempDir())
			if err != nil {
				t.Fatal(err)
			}
			return root
		},
	}

	RunRealpathTest(t, suite)

	t.Run("symlink", func(t *testing.T) {
		tc := FSTestCase(t, suite).MkdirAll("/real/dir")
		tc.Symlink(tc.prefixer("/real"), "/link").
			Realpath("/", "/link/dir").
			Equals("/real/dir")
	})

	t.Run("relative symlink", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/real/dir").
			Symlink("real", "/link").
			Realpath("/", "link/dir").
			Equals("/real/dir")
	})

	t.Run("dot-dot after symlink", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a/real").
			MkdirAll("/b").
			Symlink("../a/real", "/b/link").
			Realpath("/b", "link/..").
			Equals("/a")
	})

	t.Run("absolute dot-dot after symlink", func(t *testing.T) {
		FSTestCase(t, suite).
			MkdirAll("/a/real").
			MkdirAll("/b").
			Symlink("../a/real", "/b/link").
			Realpath("/", "/b/link/..").
			Equals("/a")
	})

	t.Run("symlink loop", func(t *testing.T) {
		tc := FSTestCase(t, suite)
		tc.Symlink(tc.prefixer("/loop"), "/loop").
			Realpath("/", "/loop").
			ErrorIs(realpath.ErrTooManyLinks)
	})
}

func TestIsDirIsRegular(t *testing.T) {
	vfs := afero.NewMemMapFs()
	assert.Nil(t, vfs.MkdirAll("/usr/bin", 0755))
	assert.Nil(t, afero.WriteFile(vfs, "/usr/bin/ls", nil, 0755))

	assert.True(t, IsDir(vfs, "/usr/bin"))
	assert.False(t, IsDir(vfs, "/usr/bin/ls"))
	assert.False(t, IsDir(vfs, "/missing"))

	assert.True(t, IsRegular(vfs, "/usr/bin/ls"))
	assert.False(t, IsRegular(vfs, "/usr/bin"))
	assert.False(t, IsRegular(vfs, "/missing"))
}

func TestNewOsFs(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644))

	assert.True(t, IsDir(NewOsFs(), dir))
	assert.True(t, IsRegular(NewOsFs(), filepath.Join(dir, "f")))
}
