package cmd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dendra-shell/internal/output"
)

var errBadSeedOptions = errors.New("count and depth must be positive, empty must not be negative")

// seedLevels names the directories at each depth of a generated tree.
var seedLevels = []string{"project", "module", "part", "piece", "item"}

type seedOptions struct {
	output    string
	fileCount int
	depth     int
	emptyDirs int
}

type seedStats struct {
	files int
	dirs  map[string]int
}

// NewSeedCmd creates and returns the seed subcommand for the dsh CLI.
// It generates a practice tree with nested directories, text files and
// empty directories for rmdir to clean up.
func NewSeedCmd(flags *globalFlags) *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a practice directory tree",
		Long: `Generate a directory tree to try the shell commands on.

Files are spread over nested directories named project-N/module-N/part-N
and so on, up to --depth levels. Each file holds a few UUID lines so that
cat and wc have something to show. --empty extra directories are left
empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)
			_, err = runSeed(afero.NewOsFs(), log, opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&opts.fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 3, "Maximum directory depth")
	cmd.Flags().IntVar(&opts.emptyDirs, "empty", 3, "Number of empty directories to create")

	cmd.MarkFlagRequired("output")

	return cmd
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func runSeed(fsys afero.Fs, log *output.Logger, opts seedOptions) (seedStats, error) {
	stats := seedStats{dirs: make(map[string]int)}
	if opts.fileCount <= 0 || opts.depth <= 0 || opts.emptyDirs < 0 {
		return stats, errBadSeedOptions
	}
	if opts.depth > len(seedLevels) {
		opts.depth = len(seedLevels)
	}

	log.Debug("Generating %d files in %s", opts.fileCount, opts.output)
	if err := fsys.MkdirAll(opts.output, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	uuidPool := make([]string, 20)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	for stats.files < opts.fileCount {
		dirPath := opts.output
		for level := range randInt(opts.depth + 1) {
			dirPath = filepath.Join(dirPath, fmt.Sprintf("%s-%d", seedLevels[level], randInt(3)))
		}
		if err := fsys.MkdirAll(dirPath, 0o755); err != nil {
			log.Warn("Warning: failed to create directory %s: %v", dirPath, err)
			return stats, err
		}

		filePath := filepath.Join(dirPath, fmt.Sprintf("%08x.txt", randInt(0x7FFFFFFF)))
		if exists, _ := afero.Exists(fsys, filePath); exists {
			continue
		}

		lines := make([]string, randInt(5)+1)
		for i := range lines {
			lines[i] = uuidPool[randInt(len(uuidPool))]
		}
		content := strings.Join(lines, "\n") + "\n"
		if err := afero.WriteFile(fsys, filePath, []byte(content), 0o644); err != nil {
			log.Warn("Warning: failed to write file %s: %v", filePath, err)
			return stats, err
		}

		stats.dirs[dirPath]++
		stats.files++
		if stats.files%1000 == 0 {
			log.Debug("Created %d/%d files...", stats.files, opts.fileCount)
		}
	}

	for i := range opts.emptyDirs {
		dir := filepath.Join(opts.output, fmt.Sprintf("empty-%02d", i))
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return stats, fmt.Errorf("failed to create empty directory: %w", err)
		}
	}

	log.Success("Created %d files in %d directories under %s", stats.files, len(stats.dirs), opts.output)
	return stats, nil
}
