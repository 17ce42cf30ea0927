package main

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-builder/internal/bundle"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a saved bundle file without prompting",
	Long:  "Loads a JSON or YAML resume bundle, validates it against the bundle schema and writes the .docx resume.",
	RunE:  runRender,
}

var (
	renderBundleFile string
	renderConfigFile string
	renderOutputFile string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderBundleFile, "bundle", "b", "", "Path to bundle file, JSON or YAML (required)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to config file (JSON or YAML)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path of the generated .docx (default \"Your_Resume1.docx\")")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print bundle summary and document outline")

	if err := renderCmd.MarkFlagRequired("bundle"); err != nil {
		panic(fmt.Sprintf("failed to mark bundle flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(renderConfigFile, renderOutputFile, renderVerbose)
	if err != nil {
		return err
	}

	logger, runID := startRun(cfg.Verbose)

	b, err := bundle.Load(renderBundleFile)
	if err != nil {
		return fmt.Errorf("failed to load bundle: %w", err)
	}
	logger.Debug("bundle loaded", slog.String("path", renderBundleFile))

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	if cfg.Verbose {
		printer.PrintBundleSummary(b)
		printer.PrintOutline(rendering.Layout(b))
	}

	if err := newRenderer(cfg, out, logger).Save(b, cfg.Output); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	_, _ = fmt.Fprintln(out, "Resume created successfully!")
	_, _ = fmt.Fprintf(out, "Output: %s\n", cfg.Output)
	if cfg.Verbose {
		printer.PrintRunInfo(runID, cfg.Output)
	}
	return nil
}
