package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"survey-labeler/internal/api"
	"survey-labeler/internal/dataset"
	"survey-labeler/internal/diagnostic"
	"survey-labeler/internal/export"
	"survey-labeler/internal/mapping"
	"survey-labeler/internal/reconcile"
	"survey-labeler/internal/syntax"
)

// inputFlags are shared by the commands that reconcile.
type inputFlags struct {
	overrides string
	output    string
}

func (f *inputFlags) register(cmd *cobra.Command, outputHelp string) {
	cmd.Flags().StringVar(&f.overrides, "overrides", "", "Override file pinning renames, drops and labels (YAML)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", outputHelp)
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <syntax.sps>",
		Short: "Print the labels recovered from a syntax file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.parseSyntax(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)

			return enc.Encode(doc)
		},
	}
}

func (a *app) reconcileCmd() *cobra.Command {
	var (
		flags    inputFlags
		metadata string
		manifest string
	)

	cmd := &cobra.Command{
		Use:   "reconcile <syntax.sps> <dataset>",
		Short: "Report how every dataset column is labeled",
		Long: `Reconcile joins the labels of a syntax file with the columns of a dataset
(.csv or .tsv export, or a plain list with one column name per line) and
prints the review report. Columns without a label are marked "not found" and
keep their raw name as label.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.reconcile(args[0], args[1], flags.overrides)
			if err != nil {
				return err
			}

			if metadata != "" {
				if err := writeFile(metadata, func(w io.Writer) error { return export.WriteMetadata(w, res) }); err != nil {
					return err
				}

				a.logger.Info("Wrote metadata", slog.String("path", metadata))
			}

			if manifest != "" {
				if err := mapping.WriteFile(res.Manifest(), manifest); err != nil {
					return err
				}

				a.logger.Info("Wrote manifest", slog.String("path", manifest))
			}

			return a.output(cmd, flags.output, func(w io.Writer) error {
				return export.WriteReport(w, res.Report)
			})
		},
	}

	flags.register(cmd, "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Also write SAV writer metadata (JSON)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Also write an editable override file pinning this result (YAML)")

	return cmd
}

func (a *app) syntaxCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "syntax <syntax.sps> <dataset>",
		Short: "Generate label syntax for the renamed dataset columns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.reconcile(args[0], args[1], flags.overrides)
			if err != nil {
				return err
			}

			return a.output(cmd, flags.output, func(w io.Writer) error {
				return syntax.Write(w, res.Names(), res.ColumnLabels(), res.ValueLabels)
			})
		},
	}

	flags.register(cmd, "Write the syntax to a file instead of stdout")

	return cmd
}

func (a *app) dictionaryCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "dictionary <syntax.sps> <dataset>",
		Short: "Export the code dictionary of the dataset columns as CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.reconcile(args[0], args[1], flags.overrides)
			if err != nil {
				return err
			}

			return a.output(cmd, flags.output, func(w io.Writer) error {
				return export.WriteDictionary(w, res)
			})
		},
	}

	flags.register(cmd, "Write the dictionary to a file instead of stdout")

	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := a.cfg.Server
			if addr != "" {
				server.Addr = addr
			}

			var metrics *api.Metrics
			if server.Metrics {
				metrics = api.NewMetrics()
			}

			h := api.NewHandler(a.logger, a.options(nil), server.MaxBodyBytes, metrics)
			router := api.NewRouter(h, a.logger, server.AllowedOrigins)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.Serve(ctx, server, router, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func (a *app) options(overrides *mapping.File) reconcile.Options {
	return reconcile.Options{
		Overrides:           overrides,
		MaxSuggestions:      a.cfg.Match.MaxSuggestions,
		SuggestionThreshold: a.cfg.Match.SuggestionThreshold,
	}
}

func (a *app) parseSyntax(path string) (*syntax.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read syntax file: %w", err)
	}

	doc, err := syntax.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	a.logger.Debug("Parsed syntax",
		slog.String("path", path),
		slog.String("encoding", string(doc.Encoding)),
		slog.Int("variables", len(doc.Variables)))
	a.logDiagnostics(doc.Diagnostics)

	return doc, nil
}

func (a *app) reconcile(syntaxPath, datasetPath, overridesPath string) (*reconcile.Result, error) {
	var overrides *mapping.File

	if overridesPath != "" {
		f, err := mapping.LoadFile(overridesPath)
		if err != nil {
			return nil, err
		}

		diags := mapping.Validate(f)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid override file %s: %w", overridesPath, diags.Error())
		}

		a.logDiagnostics(*diags)
		overrides = f
	}

	doc, err := a.parseSyntax(syntaxPath)
	if err != nil {
		return nil, err
	}

	columns, err := dataset.LoadFile(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", datasetPath, err)
	}

	res := reconcile.Reconcile(doc, columns, a.options(overrides))
	a.logDiagnostics(res.Diagnostics)

	a.logger.Info("Reconciled dataset",
		slog.Int("columns", len(res.Columns)),
		slog.Int("dropped", len(res.Dropped)),
		slog.Int("not_found", res.Report.Summary().NotFound))

	return res, nil
}

// logDiagnostics logs warnings at warn level and infos at debug level.
func (a *app) logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		a.logger.Warn(d.Message, slog.String("code", d.Code), slog.String("variable", d.Variable))
	}

	for _, d := range diags.Infos {
		a.logger.Debug(d.Message, slog.String("code", d.Code), slog.String("variable", d.Variable))
	}
}

// output writes to path, or to stdout when path is empty.
func (a *app) output(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	if err := writeFile(path, write); err != nil {
		return err
	}

	a.logger.Info("Wrote output", slog.String("path", path))

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
