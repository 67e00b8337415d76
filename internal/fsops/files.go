package fsops

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"
)

// CreateIfAbsent creates an empty file at path. An existing file is left
// untouched, content and timestamps included, and created is false.
func (o *Ops) CreateIfAbsent(path string) (created bool, err error) {
	if _, err := o.fs.Stat(path); err == nil {
		return false, nil
	} else if !isMissing(err) {
		return false, pathErr("touch", path, ErrCreate, err)
	}

	f, err := o.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		if isMissing(err) {
			return false, pathErr("touch", path, ErrPathNotFound, err)
		}
		return false, pathErr("touch", path, ErrCreate, err)
	}
	return true, f.Close()
}

// Mkdir creates the directory at path along with any missing parents.
// created is false when a directory already exists there.
func (o *Ops) Mkdir(path string) (created bool, err error) {
	info, err := o.fs.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, pathErr("mkdir", path, ErrCreate, ErrExpectedDirectory)
	}
	if err := o.fs.MkdirAll(path, 0o755); err != nil {
		return false, pathErr("mkdir", path, ErrCreate, err)
	}
	return true, nil
}

// Delete removes the regular file at path. A symbolic link is removed
// itself, never its target. A missing path is not an error; deleted reports
// whether anything was removed.
func (o *Ops) Delete(path string) (deleted bool, err error) {
	info, err := o.lstat(path)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}
		return false, pathErr("rm", path, ErrRemove, err)
	}
	if info.IsDir() {
		return false, pathErr("rm", path, ErrExpectedFile, nil)
	}
	if err := o.fs.Remove(path); err != nil {
		return false, pathErr("rm", path, ErrRemove, err)
	}
	return true, nil
}

// CopyFile copies src to dst byte for byte, replacing dst if it exists. When
// dst is an existing directory the copy is placed inside it under the source
// file name. It returns the path that was written.
func (o *Ops) CopyFile(src, dst string) (string, error) {
	info, err := o.fs.Stat(src)
	if err != nil {
		return "", pathErr("cp", src, ErrPathNotFound, err)
	}
	if info.IsDir() {
		return "", pathErr("cp", src, ErrExpectedFile, nil)
	}
	if o.DirExists(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return "", copyErr(dst, ErrSameFile)
	}
	if err := o.copyBytes(src, dst, info.Mode().Perm()); err != nil {
		return "", copyErr(dst, err)
	}
	return dst, nil
}

// Cat writes the content of the file at path to w. Output always ends with a
// newline unless the file is empty.
func (o *Ops) Cat(w io.Writer, path string) error {
	info, err := o.fs.Stat(path)
	if err != nil {
		return pathErr("cat", path, ErrPathNotFound, err)
	}
	if info.IsDir() {
		return pathErr("cat", path, ErrExpectedFile, nil)
	}
	f, err := o.fs.Open(path)
	if err != nil {
		return pathErr("cat", path, ErrPathNotFound, err)
	}
	defer f.Close()

	tw := &trailingWriter{w: w}
	if _, err := io.Copy(tw, f); err != nil {
		return &PathError{Op: "cat", Path: path, Err: err}
	}
	if tw.n > 0 && tw.last != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// Concatenate writes every file in paths to w in order. A file that cannot
// be read is passed to report and the next path is processed. The returned
// error joins every reported failure.
func (o *Ops) Concatenate(w io.Writer, paths []string, report func(path string, err error)) error {
	var errs []error
	for _, path := range paths {
		if err := o.Cat(w, path); err != nil {
			if report != nil {
				report(path, err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// trailingWriter remembers the last byte written through it.
type trailingWriter struct {
	w    io.Writer
	n    int64
	last byte
}

func (t *trailingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.n += int64(n)
		t.last = p[n-1]
	}
	return n, err
}

// Counts holds the result of Count.
type Counts struct {
	Lines int
	Words int
	Chars int // decoded characters, not bytes
}

// Count reports the line, word and character counts of the regular file at
// path.
func (o *Ops) Count(path string) (Counts, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return Counts{}, pathErr("wc", path, ErrPathNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return Counts{}, pathErr("wc", path, ErrPathNotFound, ErrExpectedFile)
	}
	f, err := o.fs.Open(path)
	if err != nil {
		return Counts{}, pathErr("wc", path, ErrPathNotFound, err)
	}
	defer f.Close()

	c, err := CountText(f)
	if err != nil {
		return Counts{}, &PathError{Op: "wc", Path: path, Err: err}
	}
	return c, nil
}

// CountText counts r as UTF-8 text. Lines are line terminators plus one for
// a final unterminated line; words are maximal runs of non-space characters.
func CountText(r io.Reader) (Counts, error) {
	var (
		c      Counts
		inWord bool
		last   rune = '\n'
	)
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Counts{}, err
		}
		c.Chars++
		last = ch
		if ch == '\n' {
			c.Lines++
		}
		if unicode.IsSpace(ch) {
			inWord = false
		} else if !inWord {
			inWord = true
			c.Words++
		}
	}
	if last != '\n' {
		c.Lines++
	}
	return c, nil
}
