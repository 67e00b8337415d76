package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dendra-shell/internal/fsops"
)

// NewCountCmd creates and returns the count subcommand for the dsh CLI.
// It counts files and directories in a tree using the same traversal as
// ls -R.
func NewCountCmd(flags *globalFlags) *cobra.Command {
	var (
		path         string
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files and directories in a directory tree",
		Long: `Count the files and directories below PATH.

The tree is walked exactly the way "ls -R" walks it. The root itself is
not counted. An unreadable directory stops the count with an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			fsys := afero.NewOsFs()
			return runCount(fsys, fsops.NewResolver(fsys, cfg.HomeDir), cmd.OutOrStdout(), path, showProgress)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count entries in")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runCount(fsys afero.Fs, resolver *fsops.Resolver, out io.Writer, path string, showProgress bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	root, err := resolver.Canonicalize(abs)
	if err != nil {
		return err
	}

	files, dirs := 0, 0
	for entry, err := range fsops.New(fsys).ListRecursive(root) {
		if err != nil {
			return fmt.Errorf("error counting entries: %w", err)
		}
		switch {
		case entry.Depth == 0:
		case entry.IsDir():
			dirs++
		default:
			files++
			if showProgress && files%10000 == 0 {
				fmt.Fprintf(out, "Progress: %d files counted\n", files)
			}
		}
	}

	fmt.Fprintf(out, "Total files: %d\n", files)
	fmt.Fprintf(out, "Total directories: %d\n", dirs)
	return nil
}
