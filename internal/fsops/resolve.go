package fsops

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// maxSymlinks bounds link expansion during canonicalization, matching the
// Linux MAXSYMLINKS limit.
const maxSymlinks = 40

// ArgKind classifies a raw path argument.
type ArgKind int

const (
	PlainRelative ArgKind = iota
	ParentRelative
	Absolute
)

func (k ArgKind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case ParentRelative:
		return "parent-relative"
	default:
		return "plain-relative"
	}
}

// Classify reports whether arg is absolute, starts with a ".." element, or is
// relative to the cursor.
func Classify(arg string) ArgKind {
	if filepath.IsAbs(arg) {
		return Absolute
	}
	first, _, _ := strings.Cut(filepath.ToSlash(arg), "/")
	if first == ".." {
		return ParentRelative
	}
	return PlainRelative
}

// JoinArgs joins tokens that together name a single path containing spaces.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}

// Resolver maps user arguments to canonical absolute paths.
type Resolver struct {
	fs   afero.Fs
	home string
}

// NewResolver creates a Resolver over fsys. home is returned for empty
// arguments.
func NewResolver(fsys afero.Fs, home string) *Resolver {
	return &Resolver{fs: fsys, home: filepath.Clean(home)}
}

// Parent returns the parent of cursor. ok is false when cursor is a root, in
// which case cursor itself is returned.
func Parent(cursor string) (parent string, ok bool) {
	cursor = filepath.Clean(cursor)
	parent = filepath.Dir(cursor)
	if parent == cursor {
		return cursor, false
	}
	return parent, true
}

// Resolve maps arg to a canonical absolute path relative to cursor.
// A target that does not exist is not an error; only paths that cannot be
// canonicalized fail, with ErrInvalidPath.
func (r *Resolver) Resolve(cursor, arg string) (string, error) {
	if arg == "" {
		return r.Canonicalize(r.home)
	}
	if arg == ".." {
		parent, _ := Parent(cursor)
		return parent, nil
	}
	if Classify(arg) == Absolute {
		return r.Canonicalize(arg)
	}
	return r.Canonicalize(filepath.Join(cursor, arg))
}

// ResolveEntry is Resolve for operations on the named entry itself, such as
// removal. Only the parent directory is canonicalized, so a final symbolic
// link is kept rather than replaced by its target.
func (r *Resolver) ResolveEntry(cursor, arg string) (string, error) {
	if arg == "" || arg == ".." {
		return r.Resolve(cursor, arg)
	}
	joined := arg
	if Classify(arg) != Absolute {
		joined = filepath.Join(cursor, arg)
	}
	joined = filepath.Clean(joined)
	parent, ok := Parent(joined)
	if !ok {
		return r.Canonicalize(joined)
	}
	dir, err := r.Canonicalize(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(joined)), nil
}

// Canonicalize cleans path and follows symbolic links along its existing
// prefix. Components past the first missing one are kept as written.
func (r *Resolver) Canonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", pathErr("resolve", path, ErrInvalidPath, errors.New("path is not absolute"))
	}
	clean := filepath.Clean(path)

	lstater, ok := r.fs.(afero.Lstater)
	if !ok {
		return clean, nil
	}
	reader, ok := r.fs.(afero.LinkReader)
	if !ok {
		return clean, nil
	}
	return evalSymlinks(clean, lstater, reader)
}

func evalSymlinks(clean string, lstater afero.Lstater, reader afero.LinkReader) (string, error) {
	volume := filepath.VolumeName(clean)
	root := volume + string(filepath.Separator)
	pending := splitElems(clean[len(volume):])
	resolved := root
	links := 0

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]
		next := filepath.Join(resolved, name)

		info, _, err := lstater.LstatIfPossible(next)
		if err != nil {
			if isMissing(err) {
				return filepath.Join(append([]string{next}, pending...)...), nil
			}
			return "", pathErr("resolve", clean, ErrInvalidPath, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		links++
		if links > maxSymlinks {
			return "", pathErr("resolve", clean, ErrInvalidPath, ErrTooManyLinks)
		}
		target, err := reader.ReadlinkIfPossible(next)
		if err != nil {
			return "", pathErr("resolve", clean, ErrInvalidPath, err)
		}
		if filepath.IsAbs(target) {
			resolved = root
		}
		pending = append(splitElems(filepath.Clean(target)), pending...)
	}
	return resolved, nil
}

func splitElems(path string) []string {
	var elems []string
	for _, elem := range strings.Split(path, string(filepath.Separator)) {
		if elem == "" || elem == "." {
			continue
		}
		elems = append(elems, elem)
	}
	return elems
}

// isMissing treats ENOTDIR like ENOENT: "file.txt/child" simply does not exist.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
