package fsops

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

const writeFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

// Ops performs filesystem operations on already-resolved paths.
type Ops struct {
	fs afero.Fs
}

// New creates an Ops backed by fsys.
func New(fsys afero.Fs) *Ops {
	return &Ops{fs: fsys}
}

// DirExists reports whether path names an existing directory.
func (o *Ops) DirExists(path string) bool {
	ok, err := afero.DirExists(o.fs, path)
	return err == nil && ok
}

// lstat describes path without following a final symbolic link when the
// filesystem supports it.
func (o *Ops) lstat(path string) (fs.FileInfo, error) {
	if l, ok := o.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return o.fs.Stat(path)
}

// copyBytes writes the content of src to dst, truncating dst if it exists.
func (o *Ops) copyBytes(src, dst string, perm fs.FileMode) error {
	in, err := o.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := o.fs.OpenFile(dst, writeFlags, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
