package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/dendrascience/dendra-shell/internal/config"
	"github.com/dendrascience/dendra-shell/internal/fsops"
	"github.com/dendrascience/dendra-shell/internal/output"
)

// Shell is the read-eval-print loop around a Router.
type Shell struct {
	in        *bufio.Reader
	log       *output.Logger
	prompt    string
	router    *Router
	history   *History
	sessionID string
}

// Options configures New.
type Options struct {
	Fs     afero.Fs
	Config config.Config
	Logger *output.Logger
	In     io.Reader
	// Prompt is printed before each line; empty disables it.
	Prompt string
}

// New wires a Shell from opts. The history file named by the config, if
// any, is attached to the history log.
func New(opts Options) (*Shell, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = output.NewLogger()
	}

	history := NewHistory(opts.Config.HistoryLimit)
	if opts.Config.HistoryFile != "" {
		if err := history.Attach(opts.Fs, opts.Config.HistoryFile); err != nil {
			return nil, fmt.Errorf("failed to open history file: %w", err)
		}
	}

	ops := fsops.New(opts.Fs)
	resolver := fsops.NewResolver(opts.Fs, opts.Config.HomeDir)
	router, err := NewRouter(ops, resolver, opts.Config.StartDir, history, opts.Logger)
	if err != nil {
		history.Close()
		return nil, err
	}

	return &Shell{
		in:        bufio.NewReader(opts.In),
		log:       opts.Logger,
		prompt:    opts.Prompt,
		router:    router,
		history:   history,
		sessionID: uuid.NewString(),
	}, nil
}

// Router exposes the command router, mainly for inspection in tests.
func (s *Shell) Router() *Router {
	return s.router
}

// SessionID identifies this shell instance in debug output.
func (s *Shell) SessionID() string {
	return s.sessionID
}

// Run reads and executes lines until exit, end of input, or ctx is done.
// Reaching the end of input is not an error.
func (s *Shell) Run(ctx context.Context) error {
	defer s.history.Close()
	s.log.Debug("session %s started in %s", s.sessionID, s.router.Cursor())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.log.Writer(), s.prompt)
		}

		line, err := s.in.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return err
		}

		if exit := s.runLine(line); exit {
			s.log.Debug("session %s ended", s.sessionID)
			return nil
		}
		if eof {
			s.log.Debug("session %s reached end of input", s.sessionID)
			return nil
		}
	}
}

// runLine records and executes one line. It reports whether the shell
// should stop.
func (s *Shell) runLine(line string) bool {
	line = strings.TrimSpace(line)
	cmd, ok := Tokenize(line)
	if !ok {
		return false
	}
	if err := s.history.Append(line); err != nil {
		s.log.Warn("failed to save history: %v", err)
	}
	return errors.Is(s.router.Execute(cmd), ErrExit)
}
