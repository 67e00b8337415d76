package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dendrascience/dendra-shell/internal/config"
	"github.com/dendrascience/dendra-shell/internal/output"
)

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.startDir != "" {
		cfg.StartDir = flags.startDir
	}
	if flags.homeDir != "" {
		cfg.HomeDir = flags.homeDir
	}
	if flags.noColor {
		cfg.NoColor = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

// newLogger sends every line to the command's output. Color is only used
// when that output is a terminal.
func newLogger(cmd *cobra.Command, cfg config.Config) *output.Logger {
	out := cmd.OutOrStdout()
	log := output.NewWriterLogger(out)
	log.SetNoColor(cfg.NoColor || !isTerminal(out))
	log.SetVerbose(cfg.Verbose)
	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
