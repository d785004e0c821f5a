package cmd

import (
	"fmt"
	"os"
	"strings"

	"cbdump/pkg/dump"
	"cbdump/pkg/logging"
	"cbdump/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	output           string
	paths            string
	ftypes           string
	captionPrefix    string
	fullPath         bool
	ignoreReadErrors bool
	debug            bool
}

// NewRootCommand builds the cbdump command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cbdump",
		Short: "cbdump dumps source files into a single text file",
		Long: `cbdump walks the given directories, picks every file whose name ends with one of
the given suffixes and writes their contents into one file, each preceded by a
caption line with the file's path.`,
		Example:       "  cbdump -o dump.txt -paths src,docs -ftypes .go,.md",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(opts.debug, version.AppName, version.Get().Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, logging.Get())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "File to write the combined output to (overwritten if it exists)")
	flags.StringVar(&opts.paths, "paths", "", "Comma-separated list of root directories to scan")
	flags.StringVar(&opts.ftypes, "ftypes", "", "Comma-separated list of file-name suffixes to include (e.g. .go,.md)")
	flags.StringVar(&opts.captionPrefix, "caption-prefix", dump.DefaultCaptionPrefix, "Text placed before each file path in captions")
	flags.BoolVar(&opts.fullPath, "full-path", false, "Keep the full walked path in captions instead of trimming the root's parent")
	flags.BoolVar(&opts.ignoreReadErrors, "ignore-file-read-errors", false, "Replace undecodable files with a placeholder instead of aborting")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable development logging at debug level")

	for _, name := range []string{"output", "paths", "ftypes"} {
		if err := rootCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))
	return rootCmd.Execute()
}

// runDump turns flag values into dump arguments and runs the dump.
func runDump(opts *rootOptions, logger *zap.Logger) error {
	args := dump.Arguments{
		Params: dump.Params{
			Roots:            dump.ParseList(opts.paths),
			Suffixes:         dump.ParseList(opts.ftypes),
			CaptionPrefix:    opts.captionPrefix,
			FullPath:         opts.fullPath,
			IgnoreReadErrors: opts.ignoreReadErrors,
		},
		Output: opts.output,
	}
	if len(args.Roots) == 0 {
		return fmt.Errorf("--paths: %w", dump.ErrNoRoots)
	}
	if len(args.Suffixes) == 0 {
		return fmt.Errorf("--ftypes: %w", dump.ErrNoSuffixes)
	}
	return dump.Run(args, logger)
}

// normalizeArgs rewrites single-dash long flags such as -paths into their
// double-dash form, since pflag reads -paths as a group of shorthands.
// Arguments after a bare "--" are left alone.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	longNames := map[string]bool{}
	collect := func(f *pflag.Flag) {
		if len(f.Name) > 1 {
			longNames[f.Name] = true
		}
	}
	cmd.Flags().VisitAll(collect)
	cmd.PersistentFlags().VisitAll(collect)

	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[1:], "=")
			if longNames[name] {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}
