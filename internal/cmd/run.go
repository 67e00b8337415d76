package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCmd creates and returns the run subcommand, which executes a file
// of shell lines without printing a prompt.
func NewRunCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Execute the lines of a script file",
		Long: `Execute every line of FILE as a shell command, in order.

Blank lines are skipped. Execution stops at an exit command or at the
end of the file. Failing commands print their error and the script
continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			return startShell(cmd, flags, f, false)
		},
	}
}
