package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/dendra-shell/internal/version"
)

const (
	groupShell     = "shell"
	groupUtilities = "utilities"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	startDir   string
	homeDir    string
	noColor    bool
	verbose    bool
}

// NewRootCmd creates and returns the root cobra command for the dsh CLI.
// Run without a subcommand it starts the interactive shell.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "dsh",
		Short: "dsh - a small interactive shell for exploring and editing a directory tree",
		Long: `dsh is an interactive command shell over the local filesystem.

It keeps its own current directory and offers a fixed set of commands:
  cd, pwd, ls, mkdir, touch, rm, rmdir, cp, cat, wc, echo, history, exit

Use subcommands to run it in different ways:
  - shell: Start the interactive prompt (the default)
  - run: Execute the lines of a script file
  - exec: Execute lines given as arguments
  - count: Count the entries of a directory tree
  - seed: Generate a practice tree`,
		Version: version.Full(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the config file (default $HOME/.dendra-shell/config.toml)")
	pf.StringVar(&flags.startDir, "start-dir", "", "Directory the shell starts in")
	pf.StringVar(&flags.homeDir, "home", "", "Directory that a bare cd returns to")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flags.verbose, "verbose", false, "Print debug output")

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupShell,
		Title: "Shell",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	shellCmd := NewShellCmd(flags)
	runCmd := NewRunCmd(flags)
	execCmd := NewExecCmd(flags)
	countCmd := NewCountCmd(flags)
	seedCmd := NewSeedCmd(flags)

	shellCmd.GroupID = groupShell
	runCmd.GroupID = groupShell
	execCmd.GroupID = groupShell
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
