package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mktree/pkg/mktree"
	"github.com/arthur-debert/mktree/pkg/mktree/filesystem"
)

// generateConfig carries everything the generate command needs;
// nothing is read from ambient process state past flag parsing.
type generateConfig struct {
	format   string
	input    string
	dest     string
	dryRun   bool
	logLevel string
}

func newGenerateCommand() *cobra.Command {
	var cfg generateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create directories and files from a structure description",
		Long: `Parse a structure description and create the corresponding directories
and empty files under the destination directory.

The input may be a file path, literal content, or "-" for stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&cfg.format, "format", "f", "tree", "Input format: tree, nested, flat, segments or paths")
	cmd.Flags().StringVarP(&cfg.input, "input", "i", "-", "Input file, literal content, or '-' for stdin")
	cmd.Flags().StringVarP(&cfg.dest, "dest", "d", ".", "Destination directory")
	cmd.Flags().BoolVar(&cfg.dryRun, "dry-run", false, "Print the plan without touching the filesystem")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	return cmd
}

func runGenerate(ctx context.Context, cfg generateConfig, out io.Writer, stdin io.Reader) error {
	// Configuration errors surface before any input is read.
	format, err := mktree.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	level, err := mktree.LogLevelFromString(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
	}
	logger := mktree.NewLogger(os.Stderr, level)

	text, err := resolveInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	tree, err := mktree.Decode(format, text)
	if err != nil {
		return err
	}
	if tree.IsEmpty() {
		fmt.Fprintln(out, "input describes no entries, nothing to do")
		return nil
	}

	plan := mktree.PlanTree(tree)
	if err := plan.Resolve(); err != nil {
		return err
	}

	if cfg.dryRun {
		for _, op := range plan.Operations() {
			fmt.Fprintf(out, "%s %s\n", op.Kind, op.Path)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.dest, 0o755); err != nil {
		return fmt.Errorf("create destination %q: %w", cfg.dest, err)
	}
	fsys := filesystem.NewOSFileSystem(cfg.dest)
	m := mktree.NewMaterializer(fsys, logger)
	if err := m.Run(ctx, plan); err != nil {
		return err
	}

	fmt.Fprintf(out, "created %d entries under %s\n", plan.Len(), cfg.dest)
	return nil
}

// resolveInput turns the input designator into literal text: "-" reads
// stdin, an existing file path is read, anything else is taken as
// literal content.
func resolveInput(input string, stdin io.Reader) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read input file %q: %w", input, err)
		}
		return string(data), nil
	}
	return input, nil
}
