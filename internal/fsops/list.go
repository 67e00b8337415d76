package fsops

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// EntryKind distinguishes files from directories in a listing.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// DirectoryEntry is one item produced by a listing or traversal.
type DirectoryEntry struct {
	Name  string
	Kind  EntryKind
	Path  string
	Depth int // 0 for the root of a recursive listing
}

func (e DirectoryEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// List returns the immediate children of path sorted ascending by name.
func (o *Ops) List(path string) ([]DirectoryEntry, error) {
	return o.readDir(path)
}

// ListReverse returns the immediate children of path sorted descending by name.
func (o *Ops) ListReverse(path string) ([]DirectoryEntry, error) {
	entries, err := o.readDir(path)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

// ListRecursive walks path depth-first in pre-order. The root is yielded
// first and every directory is yielded before its children. Within a
// directory children are visited in descending name order.
//
// A directory that cannot be read yields a single ErrDirectoryUnreadable
// error and ends the sequence.
func (o *Ops) ListRecursive(path string) iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		children, err := o.readDir(path)
		if err != nil {
			yield(DirectoryEntry{}, err)
			return
		}
		root := DirectoryEntry{Name: filepath.Base(path), Kind: KindDirectory, Path: path}
		if !yield(root, nil) {
			return
		}
		o.descend(children, 1, yield)
	}
}

func (o *Ops) descend(children []DirectoryEntry, depth int, yield func(DirectoryEntry, error) bool) bool {
	slices.Reverse(children)
	for _, child := range children {
		child.Depth = depth
		if !yield(child, nil) {
			return false
		}
		if !child.IsDir() {
			continue
		}
		grandchildren, err := o.readDir(child.Path)
		if err != nil {
			yield(DirectoryEntry{}, err)
			return false
		}
		if !o.descend(grandchildren, depth+1, yield) {
			return false
		}
	}
	return true
}

func (o *Ops) readDir(path string) ([]DirectoryEntry, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return nil, pathErr("list", path, ErrDirectoryUnreadable, err)
	}
	if !info.IsDir() {
		return nil, pathErr("list", path, ErrDirectoryUnreadable, ErrExpectedDirectory)
	}
	infos, err := afero.ReadDir(o.fs, path)
	if err != nil {
		return nil, pathErr("list", path, ErrDirectoryUnreadable, err)
	}

	entries := make([]DirectoryEntry, 0, len(infos))
	for _, fi := range infos {
		kind := KindFile
		if fi.IsDir() {
			kind = KindDirectory
		}
		entries = append(entries, DirectoryEntry{
			Name: fi.Name(),
			Kind: kind,
			Path: filepath.Join(path, fi.Name()),
		})
	}
	slices.SortFunc(entries, func(a, b DirectoryEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}
