package fsops

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PruneStatus is the outcome for one child directory of PruneEmpty.
type PruneStatus int

const (
	PruneRemoved PruneStatus = iota
	PruneSkipped             // directory has entries
	PruneFailed
)

func (s PruneStatus) String() string {
	switch s {
	case PruneRemoved:
		return "removed"
	case PruneSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// PruneResult reports what happened to one child directory.
type PruneResult struct {
	Path   string
	Status PruneStatus
	Err    error
}

// PruneEmpty removes every empty directory directly under root. Nested
// directories are not visited. Each child directory gets a result; the walk
// stops at the first failure and returns the results gathered so far
// together with that failure.
func (o *Ops) PruneEmpty(root string) ([]PruneResult, error) {
	children, err := o.readDir(root)
	if err != nil {
		return nil, err
	}

	var results []PruneResult
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		empty, err := afero.IsEmpty(o.fs, child.Path)
		if err != nil {
			err = pathErr("rmdir", child.Path, ErrDirectoryUnreadable, err)
			return append(results, PruneResult{Path: child.Path, Status: PruneFailed, Err: err}), err
		}
		if !empty {
			results = append(results, PruneResult{Path: child.Path, Status: PruneSkipped})
			continue
		}
		if err := o.fs.Remove(child.Path); err != nil {
			err = pathErr("rmdir", child.Path, ErrRemove, err)
			return append(results, PruneResult{Path: child.Path, Status: PruneFailed, Err: err}), err
		}
		results = append(results, PruneResult{Path: child.Path, Status: PruneRemoved})
	}
	return results, nil
}

// RemoveEmptyDir removes the directory at path only if it has no entries.
// A symbolic link to a directory is removed itself and the directory it
// points to is left alone.
func (o *Ops) RemoveEmptyDir(path string) error {
	info, err := o.lstat(path)
	if err != nil {
		return pathErr("rmdir", path, ErrPathNotFound, err)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		if !o.DirExists(path) {
			return pathErr("rmdir", path, ErrPathNotFound, ErrExpectedDirectory)
		}
		if err := o.fs.Remove(path); err != nil {
			return pathErr("rmdir", path, ErrRemove, err)
		}
		return nil
	}
	if !info.IsDir() {
		return pathErr("rmdir", path, ErrPathNotFound, ErrExpectedDirectory)
	}
	empty, err := afero.IsEmpty(o.fs, path)
	if err != nil {
		return pathErr("rmdir", path, ErrDirectoryUnreadable, err)
	}
	if !empty {
		return pathErr("rmdir", path, ErrDirectoryNotEmpty, nil)
	}
	if err := o.fs.Remove(path); err != nil {
		return pathErr("rmdir", path, ErrRemove, err)
	}
	return nil
}

// treeVisitor receives paths relative to the walk root.
type treeVisitor struct {
	onDir  func(rel string, info fs.FileInfo) error
	onFile func(rel string, info fs.FileInfo) error
}

// walkTree visits root pre-order: a directory before anything inside it.
// The first error returned by a callback or by the walk itself ends it.
func (o *Ops) walkTree(root, rel string, v treeVisitor) error {
	dir := filepath.Join(root, rel)
	info, err := o.fs.Stat(dir)
	if err != nil {
		return copyErr(dir, err)
	}
	if err := v.onDir(rel, info); err != nil {
		return err
	}
	infos, err := afero.ReadDir(o.fs, dir)
	if err != nil {
		return copyErr(dir, err)
	}
	for _, fi := range infos {
		childRel := filepath.Join(rel, fi.Name())
		if fi.IsDir() {
			err = o.walkTree(root, childRel, v)
		} else {
			err = v.onFile(childRel, fi)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CopyTree mirrors source under destination. Directories are created before
// their contents and files overwrite whatever is at the target path. The copy
// is not transactional: the first failure aborts the walk and leaves what was
// already copied in place.
func (o *Ops) CopyTree(source, destination string) error {
	info, err := o.fs.Stat(source)
	if err != nil {
		return copyErr(source, err)
	}
	if !info.IsDir() {
		return copyErr(source, ErrExpectedDirectory)
	}
	if within(destination, source) {
		return copyErr(destination, ErrCopyIntoSelf)
	}

	return o.walkTree(source, ".", treeVisitor{
		onDir: func(rel string, info fs.FileInfo) error {
			target := filepath.Join(destination, rel)
			if err := o.fs.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return copyErr(target, err)
			}
			return nil
		},
		onFile: func(rel string, info fs.FileInfo) error {
			target := filepath.Join(destination, rel)
			if err := o.copyBytes(filepath.Join(source, rel), target, info.Mode().Perm()); err != nil {
				return copyErr(target, err)
			}
			return nil
		},
	})
}

// within reports whether path is base or lies beneath it.
func within(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
