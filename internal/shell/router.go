package shell

import (
	"errors"

	"github.com/dendrascience/dendra-shell/internal/fsops"
	"github.com/dendrascience/dendra-shell/internal/output"
)

// ErrExit is returned by the exit command to end the loop.
var ErrExit = errors.New("exit")

// Handler runs one command against the router state.
type Handler func(r *Router, args []string) error

// Router maps command names to handlers and owns the cursor.
type Router struct {
	cursor   string
	resolver *fsops.Resolver
	ops      *fsops.Ops
	history  *History
	log      *output.Logger
	handlers map[string]Handler
}

// NewRouter creates a Router whose cursor starts at start, which must be an
// existing directory.
func NewRouter(ops *fsops.Ops, resolver *fsops.Resolver, start string, history *History, log *output.Logger) (*Router, error) {
	cursor, err := resolver.Canonicalize(start)
	if err != nil {
		return nil, err
	}
	if !ops.DirExists(cursor) {
		return nil, &fsops.PathError{Op: "start", Path: cursor, Err: fsops.ErrPathNotFound}
	}
	if history == nil {
		history = NewHistory(0)
	}
	r := &Router{
		cursor:   cursor,
		resolver: resolver,
		ops:      ops,
		history:  history,
		log:      log,
		handlers: make(map[string]Handler),
	}
	r.registerBuiltins()
	return r, nil
}

// Cursor returns the current directory.
func (r *Router) Cursor() string {
	return r.cursor
}

// Execute runs cmd. Every error is printed here; only ErrExit is returned.
func (r *Router) Execute(cmd Command) error {
	handler, ok := r.handlers[cmd.Name]
	if !ok {
		r.log.Warn("Unknown command: %s", cmd.Name)
		return nil
	}
	err := handler(r, cmd.Args)
	if errors.Is(err, ErrExit) {
		return ErrExit
	}
	if err != nil {
		r.report(cmd.Name, err)
	}
	return nil
}

func (r *Router) report(name string, err error) {
	var (
		pe *fsops.PathError
		ue *usageError
	)
	switch {
	case errors.As(err, &ue):
		r.log.Error("Invalid arguments for %s command (usage: %s)", name, ue.usage)
	case errors.As(err, &pe):
		r.log.Error("%v", err)
	default:
		r.log.Error("%s: %v", name, err)
	}
}

func (r *Router) resolve(arg string) (string, error) {
	return r.resolver.Resolve(r.cursor, arg)
}

// resolveEntry keeps a final symbolic link so destructive commands act on
// the link.
func (r *Router) resolveEntry(arg string) (string, error) {
	return r.resolver.ResolveEntry(r.cursor, arg)
}

// usageError reports a wrong argument count or an unknown flag.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return fsops.ErrInvalidArguments.Error() + ", usage: " + e.usage
}

func (e *usageError) Unwrap() error { return fsops.ErrInvalidArguments }

func invalidArgs(usage string) error {
	return &usageError{usage: usage}
}
