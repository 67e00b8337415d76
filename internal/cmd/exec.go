package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCmd creates and returns the exec subcommand. Each argument is run
// as one shell line.
func NewExecCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE...",
		Short: "Execute shell lines given as arguments",
		Long: `Execute each argument as one shell line, in order.

Quote lines that contain spaces:
  dsh exec "mkdir notes" "cd notes" "touch todo.txt" "ls"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(args, "\n") + "\n"
			return startShell(cmd, flags, strings.NewReader(script), false)
		},
	}
}
