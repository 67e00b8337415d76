package fsops

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// buildTree creates directories (names ending in "/") and files under root.
func buildTree(t *testing.T, fsys afero.Fs, root string, paths ...string) {
	t.Helper()
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range paths {
		full := filepath.Join(root, p)
		if p[len(p)-1] == '/' {
			if err := fsys.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fsys, full, []byte(p), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func names(entries []DirectoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList(t *testing.T) {
	fsys := afero.NewMemMapFs()
	buildTree(t, fsys, "/data", "b.txt", "a.txt", "Zeta/", "c/", "B.txt")
	ops := New(fsys)

	entries, err := ops.List("/data")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"B.txt", "Zeta", "a.txt", "b.txt", "c"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
	for _, e := range entries {
		if e.Path != filepath.Join("/data", e.Name) {
			t.Errorf("Expected path under /data but got %q", e.Path)
		}
		wantDir := e.Name == "Zeta" || e.Name == "c"
		if e.IsDir() != wantDir {
			t.Errorf("Expected %s IsDir=%v but got %v", e.Name, wantDir, e.IsDir())
		}
	}

	reversed, err := ops.ListReverse("/data")
	if err != nil {
		t.Fatalf("ListReverse failed: %v", err)
	}
	wantReversed := []string{"c", "b.txt", "a.txt", "Zeta", "B.txt"}
	if got := names(reversed); !equalStrings(got, wantReversed) {
		t.Errorf("Expected %v but got %v", wantReversed, got)
	}
}

func TestListUnreadable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	buildTree(t, fsys, "/data", "file.txt")
	ops := New(fsys)

	for _, path := range []string{"/data/file.txt", "/data/missing"} {
		t.Run(path, func(t *testing.T) {
			if _, err := ops.List(path); !errors.Is(err, ErrDirectoryUnreadable) {
				t.Errorf("Expected %v but got %v", ErrDirectoryUnreadable, err)
			}
			var pe *PathError
			if _, err := ops.ListReverse(path); !errors.As(err, &pe) || pe.Path != path {
				t.Errorf("Expected PathError for %q but got %v", path, err)
			}
		})
	}
}

func TestListRecursive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	buildTree(t, fsys, "/r", "a.txt", "b/x.txt", "b/c/y.txt", "d.txt")
	ops := New(fsys)

	type visit struct {
		name  string
		depth int
		dir   bool
	}
	want := []visit{
		{"r", 0, true},
		{"d.txt", 1, false},
		{"b", 1, true},
		{"x.txt", 2, false},
		{"c", 2, true},
		{"y.txt", 3, false},
		{"a.txt", 1, false},
	}

	var got []visit
	for entry, err := range ops.ListRecursive("/r") {
		if err != nil {
			t.Fatalf("ListRecursive yielded error: %v", err)
		}
		got = append(got, visit{entry.Name, entry.Depth, entry.IsDir()})
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries but got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v but got %+v", i, want[i], got[i])
		}
	}
}

func TestListRecursiveStopsEarly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	buildTree(t, fsys, "/r", "a/", "b/", "c/")
	ops := New(fsys)

	count := 0
	for range ops.ListRecursive("/r") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Expected iteration to stop after 2 entries but got %d", count)
	}
}

func TestListRecursiveUnreadableRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	buildTree(t, fsys, "/r", "file.txt")
	ops := New(fsys)

	var entries int
	var errs []error
	for entry, err := range ops.ListRecursive("/r/file.txt") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_ = entry
		entries++
	}
	if entries != 0 {
		t.Errorf("Expected no entries but got %d", entries)
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrDirectoryUnreadable) {
		t.Errorf("Expected one %v but got %v", ErrDirectoryUnreadable, errs)
	}
}
