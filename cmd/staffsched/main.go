// Package main provides the CLI entry point for staffsched.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/staffsched-go/pkg/staffsched"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/config"
)

var (
	// errTemplateCreated ends a run that had to create the template first.
	errTemplateCreated = errors.New("blank template created")
	// errAborted ends a run the operator cancelled at a prompt.
	errAborted = errors.New("aborted")
)

// flags holds the command line options shared by all commands.
type flags struct {
	configPath string
	dir        string
	verbose    bool
	blankEmpty bool
	month      int
	year       int
	assumeYes  bool
	force      bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errTemplateCreated) && !errors.Is(err, errAborted) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run result to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errTemplateCreated):
		return 1
	case errors.Is(err, errAborted):
		return 130
	default:
		return 2
	}
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	var a *app

	rootCmd := &cobra.Command{
		Use:   "staffsched",
		Short: "Generate a monthly staff schedule from a weekly template",
		Long: `staffsched reads the weekly shift template (overnight and day-coverage
hours and staff for each weekday) and lays it out over every date of a
calendar month as a printable schedule workbook.

If the template does not exist yet, a blank one is created and the
command exits with status 1 so it can be filled in first.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd, fl)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fl.configPath, "config", "", "YAML config file")
	pf.StringVar(&fl.dir, "dir", "", "Directory holding the template and the schedule (default: desktop)")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&fl.blankEmpty, "blank-empty", false, "Leave unset template cells blank instead of printing None")

	addPeriodFlags(rootCmd, fl)
	rootCmd.Flags().BoolVarP(&fl.assumeYes, "yes", "y", false, "Skip confirmation prompts")

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank weekly template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writeTemplate(fl.force)
		},
	}
	templateCmd.Flags().BoolVar(&fl.force, "force", false, "Replace an existing template")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the projected month as JSON without writing a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.preview()
		},
	}
	addPeriodFlags(previewCmd, fl)

	rootCmd.AddCommand(templateCmd, previewCmd)
	return rootCmd
}

func addPeriodFlags(cmd *cobra.Command, fl *flags) {
	cmd.Flags().IntVar(&fl.month, "month", 0, "Month to generate (1-12); prompts when omitted")
	cmd.Flags().IntVar(&fl.year, "year", 0, "Year to generate; prompts when omitted")
}

func newApp(cmd *cobra.Command, fl *flags) (*app, error) {
	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if fl.dir != "" {
		cfg.Dir = fl.dir
	}
	if fl.blankEmpty {
		cfg.EmptyCellText = ""
	}

	logger, err := newLogger(cfg.Logging.Level, fl.verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts := staffsched.DefaultOptions()
	opts.EmptyCellText = cfg.EmptyCellText
	opts.Logger = logger

	a := &app{
		cfg:       cfg,
		opts:      opts,
		prompt:    newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		out:       cmd.OutOrStdout(),
		logger:    logger,
		assumeYes: fl.assumeYes,
	}
	if f := cmd.Flags().Lookup("month"); f != nil && f.Changed {
		a.month = &fl.month
	}
	if f := cmd.Flags().Lookup("year"); f != nil && f.Changed {
		a.year = &fl.year
	}
	return a, nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
