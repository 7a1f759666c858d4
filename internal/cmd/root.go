package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/find-in-jars/internal/config"
	"github.com/harrison/find-in-jars/internal/display"
	"github.com/harrison/find-in-jars/internal/fileutil"
	"github.com/harrison/find-in-jars/internal/finder"
	"github.com/harrison/find-in-jars/internal/lister"
	"github.com/harrison/find-in-jars/internal/logger"
	"github.com/harrison/find-in-jars/internal/matcher"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for find-in-jars
func NewRootCommand() *cobra.Command {
	return newRootCommand(lister.SystemEnvironment())
}

func newRootCommand(env lister.Environment) *cobra.Command {
	cfg := config.DefaultConfig()
	var dirs, extensions []string

	cmd := &cobra.Command{
		Use:   "find-in-jars [OPTION]... PATTERN",
		Short: "Find entries matching a pattern in jar/zip archives",
		Long: `Find archive entries whose names match PATTERN in the jar files
(or other zip-format archives) found recursively under the given directories.

Every match is printed as: <archive path><separator><entry name>

Entries are listed with zipinfo, unzip or jar, whichever is found first.
JAVA_HOME is consulted when jar is not on the PATH.`,
		Example: `  # Search under the current directory
  find-in-jars 'log4j\.properties$'

  # Search several directories, jar and zip files, case-insensitively
  find-in-jars -d lib -d ext -e jar -e zip -i 'service\.class$'

  # Custom separator and absolute paths
  find-in-jars -a -s ' <-> ' '^META-INF/services/'`,
		Version: Version,
		Args:    exactlyOnePattern,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			if len(dirs) > 0 {
				cfg.Dirs = dirs
			}
			if len(extensions) > 0 {
				cfg.Extensions = make([]string, 0, len(extensions))
				for _, ext := range extensions {
					cfg.Extensions = append(cfg.Extensions, config.NormalizeExtension(ext))
				}
			}
			return run(cmd.Context(), cfg, env, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		// Errors and usage are printed by execute with the right exit code
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringArrayVarP(&dirs, "dir", "d", nil, `directory to search, repeatable (default ".")`)
	flags.StringArrayVarP(&extensions, "extension", "e", nil, `archive file extension, repeatable (default "jar")`)
	addModeFlag(flags, &cfg.Mode, config.ModeExtended, "extended-regexp", "E", "PATTERN is an extended regular expression")
	addModeFlag(flags, &cfg.Mode, config.ModeFixed, "fixed-strings", "F", "PATTERN is a literal string")
	addModeFlag(flags, &cfg.Mode, config.ModeBasic, "basic-regexp", "G", "PATTERN is a basic regular expression")
	addModeFlag(flags, &cfg.Mode, config.ModePerl, "perl-regexp", "P", "PATTERN is a Perl regular expression")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", cfg.IgnoreCase, "ignore case distinctions in PATTERN and entry names")
	flags.BoolVarP(&cfg.AbsolutePath, "absolute-path", "a", cfg.AbsolutePath, "print absolute archive paths")
	flags.StringVarP(&cfg.Separator, "seperator", "s", cfg.Separator, "separator between archive path and entry name")
	flags.StringVar(&cfg.Lister, "lister", cfg.Lister, "entry listing tool: auto, zipinfo, unzip, jar or builtin")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level: trace, debug, info, warn or error")
	flags.SetNormalizeFunc(separatorAlias)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &ExitError{Code: ExitBadOption, Err: err, ShowUsage: true}
	})

	return cmd
}

// Execute runs find-in-jars with args and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCommand(), args, stdout, stderr)
}

func execute(ctx context.Context, root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	display.PrintError(stderr, err, display.ColorEnabled(stderr))
	if showUsage(err) {
		fmt.Fprint(stderr, "\n"+root.UsageString())
	}
	return ExitCode(err)
}

// exactlyOnePattern rejects a missing PATTERN or extra positional arguments
func exactlyOnePattern(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return usageError(errors.New("missing PATTERN argument"))
	case 1:
		return nil
	default:
		return usageError(fmt.Errorf("expected exactly one PATTERN, got %d: %s", len(args), strings.Join(args, " ")))
	}
}

// separatorAlias accepts the correctly spelled --separator
func separatorAlias(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "separator" {
		name = "seperator"
	}
	return pflag.NormalizedName(name)
}

// run executes one search with a fully parsed configuration
func run(ctx context.Context, cfg *config.Config, env lister.Environment, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	m, err := matcher.New(cfg.Pattern, cfg.Mode, cfg.IgnoreCase)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	resolved, err := cfg.ValidateDirectories()
	if err != nil {
		return err
	}

	l, err := lister.Select(resolved.Lister, env)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("listing archive entries with %s", l.Name()))

	result, err := fileutil.FindArchives(resolved.Dirs, fileutil.ScanOptions{Extensions: resolved.Extensions})
	for _, scanErr := range scanErrors(result) {
		log.LogWarn(scanErr.Error())
	}
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("found %d archives under %s", len(result.Files), strings.Join(resolved.Dirs, ", ")))

	status := display.NewStatusReporter(stdout, stderr)
	log.BeforeWrite(status.Clear)

	printer := display.NewMatchPrinter(stdout, resolved.Separator, display.ColorEnabled(stdout))
	f := finder.New(l, m, status, printer, log)

	if _, err := f.Run(ctx, result.Files); err != nil {
		if errors.Is(err, context.Canceled) {
			return &ExitError{Code: ExitInterrupted, Err: errors.New("interrupted")}
		}
		return err
	}
	return nil
}

func scanErrors(result *fileutil.ScanResult) []error {
	if result == nil {
		return nil
	}
	return result.Errors
}
