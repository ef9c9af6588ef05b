package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/coregx/minigrep"
	"github.com/coregx/minigrep/engine"
	"github.com/coregx/minigrep/internal/config"
	"github.com/coregx/minigrep/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	pattern     string
	configPath  string
	verbosity   int
	noPrefilter bool
}

// newRootCmd builds the minigrep command. Configuration files are read from fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "minigrep -E <pattern>",
		Short: "Match the first line of standard input against a pattern",
		Long: `minigrep reads one line from standard input and exits 0 if it matches
the pattern given with -E, 1 if it does not.

Supported syntax: literals, \d, \w, [abc], [^abc], ^, $ and c+ (one or more
of the literal character c).`,
		Example:       `  echo "caaats" | minigrep -E 'ca+ts'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("extended-regexp") {
				return usageErrorf("expected first argument to be '-E'")
			}
			return runMatch(cmd, fs, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.pattern, "extended-regexp", "E", "", "pattern to match against the input line")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/minigrep/config.toml)")
	flags.CountVar(&opts.verbosity, "verbose", "increase log verbosity (--verbose, --verbose --verbose, ...)")
	flags.BoolVar(&opts.noPrefilter, "no-prefilter", false, "scan every character instead of skipping to candidates")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minigrep version %s\n", version)
		},
	}
}

func runMatch(cmd *cobra.Command, fs afero.Fs, opts *rootOptions) error {
	cfg, err := config.NewLoader(fs).Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.noPrefilter {
		cfg.Engine.Prefilter = false
	}

	level, err := cfg.ZerologLevel()
	if err != nil {
		return err
	}
	logger := logging.New(logging.Options{
		Level:  logging.Raise(level, opts.verbosity),
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	})
	logger.Debug().
		Str("pattern", opts.pattern).
		Bool("prefilter", cfg.Engine.Prefilter).
		Msg("Command started")

	re, err := minigrep.CompileWithConfig(opts.pattern, engine.Config{
		Prefilter: cfg.Engine.Prefilter,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	matched, err := re.MatchReader(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if !matched {
		return errNoMatch
	}
	return nil
}

// run executes the command line and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(afero.NewOsFs())
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := exitCode(err)

	var usageErr *UsageError
	switch {
	case err == nil, errors.Is(err, errNoMatch):
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "minigrep: %v\nusage: %s\n", err, cmd.UseLine())
	default:
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
	}
	return code
}
