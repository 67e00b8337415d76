package shell

import (
	"path/filepath"
	"strings"

	"github.com/dendrascience/dendra-shell/internal/fsops"
)

func (r *Router) registerBuiltins() {
	r.handlers["exit"] = func(r *Router, args []string) error {
		r.log.Info("Exiting CLI")
		return ErrExit
	}

	r.handlers["pwd"] = func(r *Router, args []string) error {
		if len(args) != 0 {
			return invalidArgs("pwd")
		}
		r.log.Info("Current directory: %s", r.cursor)
		return nil
	}

	r.handlers["echo"] = func(r *Router, args []string) error {
		r.log.Info("%s", strings.Join(args, " "))
		return nil
	}

	r.handlers["history"] = func(r *Router, args []string) error {
		if len(args) != 0 {
			return invalidArgs("history")
		}
		for _, line := range r.history.Previous() {
			r.log.Info("%s", line)
		}
		return nil
	}

	r.handlers["cd"] = cmdCd
	r.handlers["ls"] = cmdLs
	r.handlers["rmdir"] = cmdRmdir
	r.handlers["wc"] = cmdWc
	r.handlers["mkdir"] = cmdMkdir
	r.handlers["touch"] = cmdTouch
	r.handlers["rm"] = cmdRm
	r.handlers["cp"] = cmdCp
	r.handlers["cat"] = cmdCat
}

// cmdCd joins all arguments into one path so names with spaces work
// without quoting.
func cmdCd(r *Router, args []string) error {
	arg := fsops.JoinArgs(args)

	if arg == ".." {
		parent, ok := fsops.Parent(r.cursor)
		if !ok {
			r.log.Info("Already at the root directory: %s", r.cursor)
			return nil
		}
		r.cursor = parent
		r.log.Success("Changed directory to parent: %s", r.cursor)
		return nil
	}

	target, err := r.resolve(arg)
	if err != nil {
		return err
	}
	if !r.ops.DirExists(target) {
		return &fsops.PathError{Op: "cd", Path: target, Err: fsops.ErrPathNotFound}
	}
	r.cursor = target
	if arg == "" {
		r.log.Success("Changed directory to home: %s", r.cursor)
		return nil
	}
	r.log.Success("Changed directory to: %s", r.cursor)
	return nil
}

const lsUsage = "ls [-r|-R] [--reverse] [PATH]"

func cmdLs(r *Router, args []string) error {
	var (
		recursive bool
		reverse   bool
		paths     []string
	)
	for _, arg := range args {
		switch {
		case arg == "-r" || arg == "-R":
			recursive = true
		case arg == "--reverse":
			reverse = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			return invalidArgs(lsUsage)
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) > 1 {
		return invalidArgs(lsUsage)
	}

	target := r.cursor
	if len(paths) == 1 {
		resolved, err := r.resolve(paths[0])
		if err != nil {
			return err
		}
		target = resolved
	}

	if recursive {
		for entry, err := range r.ops.ListRecursive(target) {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				r.log.Entry(entry.Path, true)
			} else {
				r.log.Entry(entry.Name, false)
			}
		}
		return nil
	}

	list := r.ops.List
	if reverse {
		list = r.ops.ListReverse
	}
	entries, err := list(target)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		r.log.Entry(entry.Name, entry.IsDir())
	}
	return nil
}

func cmdRmdir(r *Router, args []string) error {
	if len(args) != 1 {
		return invalidArgs("rmdir *|DIR")
	}

	if args[0] != "*" {
		target, err := r.resolveEntry(args[0])
		if err != nil {
			return err
		}
		if err := r.ops.RemoveEmptyDir(target); err != nil {
			return err
		}
		r.log.Success("Removed directory: %s", target)
		return nil
	}

	results, err := r.ops.PruneEmpty(r.cursor)
	for _, res := range results {
		switch res.Status {
		case fsops.PruneRemoved:
			r.log.Success("Removed empty directory: %s", res.Path)
		case fsops.PruneSkipped:
			r.log.Info("Skipped non-empty directory: %s", res.Path)
		}
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		r.log.Info("No directories found in: %s", r.cursor)
	}
	return nil
}

func cmdWc(r *Router, args []string) error {
	if len(args) != 1 {
		return invalidArgs("wc FILE")
	}
	target, err := r.resolve(args[0])
	if err != nil {
		return err
	}
	counts, err := r.ops.Count(target)
	if err != nil {
		return err
	}
	r.log.Info("%d %d %d %s", counts.Lines, counts.Words, counts.Chars, filepath.Base(target))
	return nil
}

func cmdMkdir(r *Router, args []string) error {
	if len(args) == 0 {
		return invalidArgs("mkdir DIR...")
	}
	for _, arg := range args {
		target, err := r.resolve(arg)
		if err != nil {
			r.report("mkdir", err)
			continue
		}
		created, err := r.ops.Mkdir(target)
		switch {
		case err != nil:
			r.report("mkdir", err)
		case created:
			r.log.Success("Created directory: %s", target)
		default:
			r.log.Info("Directory already exists: %s", target)
		}
	}
	return nil
}

func cmdTouch(r *Router, args []string) error {
	if len(args) == 0 {
		return invalidArgs("touch FILE...")
	}
	for _, arg := range args {
		target, err := r.resolve(arg)
		if err != nil {
			r.report("touch", err)
			continue
		}
		created, err := r.ops.CreateIfAbsent(target)
		switch {
		case err != nil:
			r.report("touch", err)
		case created:
			r.log.Success("Created a new file: %s", target)
		default:
			r.log.Info("File already exists: %s", target)
		}
	}
	return nil
}

func cmdRm(r *Router, args []string) error {
	if len(args) != 1 {
		return invalidArgs("rm FILE")
	}
	target, err := r.resolveEntry(args[0])
	if err != nil {
		return err
	}
	deleted, err := r.ops.Delete(target)
	if err != nil {
		return err
	}
	if !deleted {
		r.log.Info("No such file: %s", target)
		return nil
	}
	r.log.Success("File at: %s has been deleted", target)
	return nil
}

const cpUsage = "cp SRC DST | cp -r SRCDIR DSTDIR"

func cmdCp(r *Router, args []string) error {
	switch len(args) {
	case 2:
		src, dst, err := r.resolvePair(args[0], args[1])
		if err != nil {
			return err
		}
		written, err := r.ops.CopyFile(src, dst)
		if err != nil {
			return err
		}
		r.log.Success("Copied %s to %s", src, written)
		return nil
	case 3:
		if args[0] != "-r" && args[0] != "-R" {
			return invalidArgs(cpUsage)
		}
		src, dst, err := r.resolvePair(args[1], args[2])
		if err != nil {
			return err
		}
		if err := r.ops.CopyTree(src, dst); err != nil {
			return err
		}
		r.log.Success("Recursively copied %s to %s", src, dst)
		return nil
	default:
		return invalidArgs(cpUsage)
	}
}

func (r *Router) resolvePair(a, b string) (string, string, error) {
	first, err := r.resolve(a)
	if err != nil {
		return "", "", err
	}
	second, err := r.resolve(b)
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}

func cmdCat(r *Router, args []string) error {
	if len(args) == 0 {
		return invalidArgs("cat FILE...")
	}
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		target, err := r.resolve(arg)
		if err != nil {
			r.report("cat", err)
			continue
		}
		paths = append(paths, target)
	}
	r.ops.Concatenate(r.log.Writer(), paths, func(path string, err error) {
		r.report("cat", err)
	})
	return nil
}
