package shell

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// History is the append-only log of input lines.
type History struct {
	entries []string
	limit   int // 0 keeps everything
	sink    afero.File
}

// NewHistory creates an empty log keeping at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Attach loads the lines already stored at path and appends every later
// entry to it. A missing file is created.
func (h *History) Attach(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			h.push(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	h.sink = f
	return nil
}

// Append records line, persisting it when a file is attached.
func (h *History) Append(line string) error {
	h.push(line)
	if h.sink == nil {
		return nil
	}
	_, err := h.sink.WriteString(line + "\n")
	return err
}

func (h *History) push(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns every recorded line, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Previous returns every entry except the most recent one, which is the
// line currently being executed.
func (h *History) Previous() []string {
	if len(h.entries) == 0 {
		return nil
	}
	return append([]string(nil), h.entries[:len(h.entries)-1]...)
}

// Close releases the attached file, if any.
func (h *History) Close() error {
	if h.sink == nil {
		return nil
	}
	err := h.sink.Close()
	h.sink = nil
	return err
}
