package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/dendra-shell/internal/config"
	"github.com/dendrascience/dendra-shell/internal/fsops"
	"github.com/dendrascience/dendra-shell/internal/output"
)

const home = "/home/u"

func newFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(home, 0o755))
	return fsys
}

func testConfig(start string) config.Config {
	return config.Config{StartDir: start, HomeDir: home}
}

// runShell feeds input to a fresh shell and returns it with everything it printed.
func runShell(t *testing.T, fsys afero.Fs, cfg config.Config, input string) (*Shell, string) {
	t.Helper()
	var buf bytes.Buffer
	log := output.NewWriterLogger(&buf)
	log.SetNoColor(true)

	sh, err := New(Options{Fs: fsys, Config: cfg, Logger: log, In: strings.NewReader(input)})
	require.NoError(t, err)
	require.NoError(t, sh.Run(context.Background()))
	return sh, buf.String()
}

func TestMkdirCdPwd(t *testing.T) {
	fsys := newFS(t)
	sh, out := runShell(t, fsys, testConfig(home), "mkdir sub\ncd sub\npwd\n")

	assert.Contains(t, out, "Current directory: /home/u/sub")
	assert.Equal(t, "/home/u/sub", sh.Router().Cursor())
}

func TestRmdirStar(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, fsys.MkdirAll(home+"/empty", 0o755))
	require.NoError(t, fsys.MkdirAll(home+"/full", 0o755))
	require.NoError(t, afero.WriteFile(fsys, home+"/full/f.txt", []byte("x"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "rmdir *\n")

	assert.Contains(t, out, "Removed empty directory: /home/u/empty")
	assert.Contains(t, out, "Skipped non-empty directory: /home/u/full")
	gone, _ := afero.DirExists(fsys, home+"/empty")
	kept, _ := afero.DirExists(fsys, home+"/full")
	assert.False(t, gone)
	assert.True(t, kept)
}

func TestRmdirSingle(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, fsys.MkdirAll(home+"/empty", 0o755))
	require.NoError(t, afero.WriteFile(fsys, home+"/full/f.txt", []byte("x"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "rmdir empty\nrmdir full\nrmdir nothing\nrmdir a b\n")

	assert.Contains(t, out, "Removed directory: /home/u/empty")
	assert.Contains(t, out, "rmdir /home/u/full: directory is not empty")
	assert.Contains(t, out, "rmdir /home/u/nothing: path not found")
	assert.Contains(t, out, "Invalid arguments for rmdir command")
}

func TestCopyRecursive(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/srcdir/a.txt", []byte("alpha"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, home+"/srcdir/sub/b.txt", []byte("beta"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "cp -r srcdir destdir\n")

	assert.Contains(t, out, "Recursively copied /home/u/srcdir to /home/u/destdir")
	a, err := afero.ReadFile(fsys, home+"/destdir/a.txt")
	require.NoError(t, err)
	b, err := afero.ReadFile(fsys, home+"/destdir/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))
	assert.Equal(t, "beta", string(b))
}

func TestCopyFileAndBadFlag(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/a.txt", []byte("alpha"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "cp a.txt b.txt\ncp -x a.txt c.txt\ncp a.txt\ncp -r a.txt d\n")

	b, err := afero.ReadFile(fsys, home+"/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(b))
	assert.Contains(t, out, "Copied /home/u/a.txt to /home/u/b.txt")
	assert.Equal(t, 2, strings.Count(out, "Invalid arguments for cp command"))
	assert.Contains(t, out, "copy /home/u/a.txt: copy failed")
}

func TestCdRules(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, fsys.MkdirAll(home+"/my docs", 0o755))

	tests := []struct {
		name   string
		start  string
		input  string
		cursor string
		output string
	}{
		{name: "home", start: "/", input: "cd\n", cursor: home, output: "Changed directory to home: /home/u"},
		{name: "parent", start: home, input: "cd ..\n", cursor: "/home", output: "Changed directory to parent: /home"},
		{name: "root", start: "/", input: "cd ..\n", cursor: "/", output: "Already at the root directory: /"},
		{name: "spaces", start: home, input: "cd my docs\n", cursor: home + "/my docs", output: "Changed directory to: /home/u/my docs"},
		{name: "absolute", start: "/", input: "cd /home/u\n", cursor: home, output: "Changed directory to: /home/u"},
		{name: "parent relative", start: home + "/my docs", input: "cd ../../u\n", cursor: home, output: "Changed directory to: /home/u"},
		{name: "missing", start: home, input: "cd nowhere\n", cursor: home, output: "cd /home/u/nowhere: path not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := runShell(t, fsys, testConfig(tt.start), tt.input)
			assert.Equal(t, tt.cursor, sh.Router().Cursor())
			assert.Contains(t, out, tt.output)
		})
	}
}

func TestCdOntoFileFails(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/f.txt", nil, 0o644))

	sh, out := runShell(t, fsys, testConfig(home), "cd f.txt\n")

	assert.Equal(t, home, sh.Router().Cursor())
	assert.Contains(t, out, "path not found")
}

func TestUnknownCommand(t *testing.T) {
	sh, out := runShell(t, newFS(t), testConfig(home), "frobnicate now\n")

	assert.Equal(t, "Unknown command: frobnicate\n", out)
	assert.Equal(t, home, sh.Router().Cursor())
}

func TestHistory(t *testing.T) {
	_, out := runShell(t, newFS(t), testConfig(home), "echo a\n\n   \npwd\nhistory\n")

	assert.Equal(t, "a\nCurrent directory: /home/u\necho a\npwd\n", out)
}

func TestExitStopsLoop(t *testing.T) {
	_, out := runShell(t, newFS(t), testConfig(home), "echo before\nexit\necho after\n")

	assert.Equal(t, "before\nExiting CLI\n", out)
}

func TestNoTrailingNewline(t *testing.T) {
	_, out := runShell(t, newFS(t), testConfig(home), "echo last")

	assert.Equal(t, "last\n", out)
}

func TestWc(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/f.txt", []byte("a b\nc\n"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "wc f.txt\nwc missing.txt\nwc\n")

	assert.Contains(t, out, "2 3 6 f.txt\n")
	assert.Contains(t, out, "wc /home/u/missing.txt: path not found")
	assert.Contains(t, out, "Invalid arguments for wc command")
}

func TestTouchAndRm(t *testing.T) {
	fsys := newFS(t)

	_, out := runShell(t, fsys, testConfig(home), "touch a.txt b.txt\ntouch a.txt\nrm a.txt\nrm a.txt\nrm\n")

	assert.Contains(t, out, "Created a new file: /home/u/a.txt")
	assert.Contains(t, out, "Created a new file: /home/u/b.txt")
	assert.Contains(t, out, "File already exists: /home/u/a.txt")
	assert.Contains(t, out, "File at: /home/u/a.txt has been deleted")
	assert.Contains(t, out, "No such file: /home/u/a.txt")
	assert.Contains(t, out, "Invalid arguments for rm command")

	exists, _ := afero.Exists(fsys, home+"/b.txt")
	assert.True(t, exists)
}

func TestMkdirReportsPerArgument(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/f.txt", nil, 0o644))

	_, out := runShell(t, fsys, testConfig(home), "mkdir a f.txt b\nmkdir a\n")

	assert.Contains(t, out, "Created directory: /home/u/a")
	assert.Contains(t, out, "mkdir /home/u/f.txt: create failed")
	assert.Contains(t, out, "Created directory: /home/u/b")
	assert.Contains(t, out, "Directory already exists: /home/u/a")
}

func TestLs(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/b.txt", nil, 0o644))
	require.NoError(t, afero.WriteFile(fsys, home+"/a.txt", nil, 0o644))
	require.NoError(t, afero.WriteFile(fsys, home+"/sub/x.txt", nil, 0o644))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascending", input: "ls\n", want: "a.txt\nb.txt\nsub\n"},
		{name: "reverse", input: "ls --reverse\n", want: "sub\nb.txt\na.txt\n"},
		{name: "recursive", input: "ls -R\n", want: "/home/u\n/home/u/sub\nx.txt\nb.txt\na.txt\n"},
		{name: "recursive lower", input: "ls -r sub\n", want: "/home/u/sub\nx.txt\n"},
		{name: "path", input: "ls sub\n", want: "x.txt\n"},
		{name: "bad flag", input: "ls -x\n", want: "Invalid arguments for ls command (usage: " + lsUsage + ")\n"},
		{name: "unreadable", input: "ls b.txt\n", want: "list /home/u/b.txt: directory cannot be read: expected directory but got file\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := runShell(t, fsys, testConfig(home), tt.input)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCat(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, home+"/one", []byte("first\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, home+"/two", []byte("second"), 0o644))

	_, out := runShell(t, fsys, testConfig(home), "cat one missing two\n")

	assert.True(t, strings.HasPrefix(out, "first\ncat /home/u/missing: path not found"), out)
	assert.True(t, strings.HasSuffix(out, "\nsecond\n"), out)
}

func TestHistoryFile(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, afero.WriteFile(fsys, "/hist", []byte("old one\nold two\n"), 0o600))
	cfg := testConfig(home)
	cfg.HistoryFile = "/hist"

	_, out := runShell(t, fsys, cfg, "pwd\nhistory\n")

	assert.Contains(t, out, "old one\nold two\npwd\n")
	data, err := afero.ReadFile(fsys, "/hist")
	require.NoError(t, err)
	assert.Equal(t, "old one\nold two\npwd\nhistory\n", string(data))
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	log := output.NewWriterLogger(&buf)
	sh, err := New(Options{Fs: newFS(t), Config: testConfig(home), Logger: log, In: strings.NewReader("pwd\n")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestPromptIsPrinted(t *testing.T) {
	var buf bytes.Buffer
	log := output.NewWriterLogger(&buf)
	sh, err := New(Options{
		Fs:     newFS(t),
		Config: testConfig(home),
		Logger: log,
		In:     strings.NewReader("echo hi\n"),
		Prompt: config.DefaultPrompt,
	})
	require.NoError(t, err)
	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, "Enter command: hi\nEnter command: ", buf.String())
	assert.NotEmpty(t, sh.SessionID())
}

func TestNewRejectsMissingStartDir(t *testing.T) {
	_, err := New(Options{Fs: newFS(t), Config: testConfig("/nowhere"), In: strings.NewReader("")})
	assert.ErrorIs(t, err, fsops.ErrPathNotFound)
}

func TestRemoveCommandsActOnLinks(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "precious.txt"), []byte("keep"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "realdir"), 0o755))
	if err := os.Symlink(filepath.Join(dir, "precious.txt"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "realdir"), filepath.Join(dir, "dirlink")))

	cfg := config.Config{StartDir: dir, HomeDir: dir}
	_, out := runShell(t, afero.NewOsFs(), cfg, "rm link\nrmdir dirlink\n")

	assert.Contains(t, out, "File at: "+filepath.Join(dir, "link")+" has been deleted")
	assert.Contains(t, out, "Removed directory: "+filepath.Join(dir, "dirlink"))
	assert.FileExists(t, filepath.Join(dir, "precious.txt"))
	assert.DirExists(t, filepath.Join(dir, "realdir"))
	assert.NoFileExists(t, filepath.Join(dir, "link"))
	assert.NoDirExists(t, filepath.Join(dir, "dirlink"))
}

func TestRmdirStarReportsRemoveFailure(t *testing.T) {
	base := newFS(t)
	require.NoError(t, base.MkdirAll(home+"/a", 0o755))
	require.NoError(t, base.MkdirAll(home+"/b", 0o755))

	_, out := runShell(t, afero.NewReadOnlyFs(base), testConfig(home), "rmdir *\npwd\n")

	assert.Contains(t, out, "rmdir /home/u/a: remove failed")
	assert.NotContains(t, out, "/home/u/b")
	assert.Contains(t, out, "Current directory: /home/u")
	kept, _ := afero.DirExists(base, home+"/a")
	assert.True(t, kept)
}
