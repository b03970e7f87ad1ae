// Command elattr decodes JSON element descriptors and reports how their
// attributes differ.
package main

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/elattr/internal/config"
	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/internal/source"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit statuses.
const (
	exitOK      = 0
	exitChanged = 1
	exitError   = 2
)

// errChanged is returned by diff --exit-code when attributes differ.
var errChanged = stderrors.New("attributes changed")

// cli holds state shared by every command.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configDir string
	logLevel  string

	cfg    *config.Config
	logger *slog.Logger
	loader *source.Loader
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := &cli{stdout: stdout, stderr: stderr}
	rootCmd := app.rootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if stderrors.Is(err, errChanged) {
			return exitChanged
		}
		app.report(err)
		return exitError
	}
	return exitOK
}

// report writes err to stderr. With log.format json it becomes one log
// record so the stream stays machine-readable.
func (app *cli) report(err error) {
	if app.logger != nil && app.cfg.Log.Format == "json" {
		app.logger.Error("command failed", "error", errors.Compact(err))
		return
	}
	errors.Fprint(app.stderr, err)
}

func (app *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "elattr",
		Short: "Inspect and diff element attributes",
		Long: `elattr builds elements from JSON descriptors and compares their
attributes using the rules of each element kind.

Exit status is 0 on success, 1 when diff --exit-code finds changes
and 2 on error.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.New("E230").WithDetail(err.Error())
	})

	rootCmd.PersistentFlags().StringVar(&app.configDir, "config", ".", "Directory containing "+config.ConfigFileName)
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		app.diffCmd(),
		app.inspectCmd(),
		app.serveCmd(),
		app.versionCmd(),
	)
	return rootCmd
}

// setup loads configuration and builds the logger.
func (app *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(app.configDir)
	if err != nil {
		return err
	}
	if app.logLevel != "" {
		cfg.Log.Level = app.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cfg.ColorEnabled() {
		errors.EnableColors()
	} else {
		errors.DisableColors()
	}

	app.cfg = cfg
	app.logger = slog.New(cfg.Log.Handler(app.stderr))
	app.loader = source.NewLoader(
		source.WithS3Config(cfg.S3),
		source.WithMaxBytes(cfg.Server.MaxBodyBytes),
	)
	app.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"path", cfg.Path(),
		"level", cfg.Log.Level,
	)
	return nil
}

// exactArgs is cobra.ExactArgs reporting E230.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New("E230").
				WithDetailf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args)).
				WithSuggestion("Usage: " + cmd.UseLine())
		}
		return nil
	}
}
