// This software is distributed under the MIT License.
//
// You should have received a copy of the MIT License along with this program.
// If not, see <https://opensource.org/licenses/MIT>

package realpath

import (
	"errors"
	"os"
	"path"
	"strings"
)

// maxLinks is the number of symbolic links followed before giving up.
const maxLinks = 16

var (
	// ErrTooManyLinks is returned when a path contains a symlink loop.
	ErrTooManyLinks = errors.New("too many levels of symbolic links")
)

// OS is the subset of an operating system needed to resolve paths.
type OS interface {
	// Getwd returns the directory relative paths are resolved against.
	Getwd() string
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
}

// Realpath returns the canonical absolute path of fpath: "." and ".."
// components are removed and every symbolic link is replaced by its target.
// Components are resolved left to right, so ".." applies to the directory a
// link points at rather than the link's parent. Every component of the path
// must exist.
func Realpath(os OS, fpath string) (string, error) {
	if fpath == "" {
		fpath = "."
	}

	// Joined without cleaning, path.Join would drop "x/.." before x is checked.
	if !path.IsAbs(fpath) {
		fpath = os.Getwd() + "/" + fpath
	}

	pending := components(fpath)
	resolved := "/"
	nlinks := 0
	for len(pending) > 0 {
		comp := pending[0]
		pending = pending[1:]

		switch comp {
		case ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, comp)
		fi, err := os.Lstat(next)
		if err != nil {
			return "", err
		}
		if !isSymlink(fi) {
			resolved = next
			continue
		}

		nlinks++
		if nlinks > maxLinks {
			return "", ErrTooManyLinks
		}
		link, err := os.Readlink(next)
		if err != nil {
			return "", err
		}

		// Relative links are relative to the directory holding the link.
		if path.IsAbs(link) {
			resolved = "/"
		}
		pending = append(components(link), pending...)
	}

	return resolved, nil
}

func isSymlink(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeSymlink == os.ModeSymlink
}

// components splits p on slashes, dropping empty elements.
func components(p string) []string {
	var out []string
	for _, c := range strings.Split(p, "/") {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
