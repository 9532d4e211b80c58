// Package main provides the CLI entrypoint for survey-labeler.
//
// survey-labeler recovers variable and value labels from a legacy .sps
// syntax file and reconciles them with the columns of a LimeSurvey or
// KoboToolbox export:
//   - parse: show the labels recovered from a syntax file
//   - reconcile: review how every column is labeled
//   - syntax: generate label syntax for the renamed columns
//   - dictionary: export the code dictionary as CSV
//   - serve: run the JSON API
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"survey-labeler/internal/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "survey-labeler"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Recover survey labels from SPSS syntax",
		Long: `survey-labeler recovers variable and value labels from a legacy
statistical syntax file (.sps) and reconciles them with the column names of a
survey dataset exported by LimeSurvey or KoboToolbox.

Column names are normalized to one canonical form (group paths are dropped,
separators become underscores, duplicates get _2, _3, ... suffixes) and every
column gets a label: the one from the syntax, one pinned in an override file,
or its own raw name when nothing matches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.parseCmd(),
		a.reconcileCmd(),
		a.syntaxCmd(),
		a.dictionaryCmd(),
		a.serveCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	if a.configPath != "" {
		a.logger.Debug("Loaded config", slog.String("path", a.configPath))
	}

	return nil
}
