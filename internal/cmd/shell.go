package cmd

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dendra-shell/internal/shell"
)

// NewShellCmd creates and returns the shell subcommand, the interactive
// prompt that the bare root command also starts.
func NewShellCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start the interactive shell.

Each line read from standard input is split on whitespace and run as one
command. The shell ends on exit or at the end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}
}

func runInteractive(cmd *cobra.Command, flags *globalFlags) error {
	return startShell(cmd, flags, cmd.InOrStdin(), true)
}

// startShell runs a shell over in with the configured settings. The prompt
// is only printed when prompt is true.
func startShell(cmd *cobra.Command, flags *globalFlags, in io.Reader, prompt bool) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	opts := shell.Options{
		Fs:     afero.NewOsFs(),
		Config: cfg,
		Logger: log,
		In:     in,
	}
	if prompt {
		opts.Prompt = cfg.Prompt
	}

	sh, err := shell.New(opts)
	if err != nil {
		return err
	}
	return sh.Run(cmd.Context())
}
