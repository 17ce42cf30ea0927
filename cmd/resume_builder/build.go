package main

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-builder/internal/collect"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Interactively collect resume data and write the document",
	Long: "Prompts for personal info, a profile picture, skills, experience, education, certifications, " +
		"hobbies, languages and personal details, then writes a .docx resume (Your_Resume1.docx by default).",
	RunE: runBuild,
}

var (
	buildConfigFile string
	buildOutputFile string
	buildVerbose    bool
)

func init() {
	addBuildFlags(buildCmd)
	addBuildFlags(rootCmd)

	rootCmd.AddCommand(buildCmd)
}

// addBuildFlags binds the build flags to cmd. The root command builds too.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to config file (JSON or YAML)")
	cmd.Flags().StringVarP(&buildOutputFile, "out", "o", "", "Path of the generated .docx (default \"Your_Resume1.docx\")")
	cmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print collected data and document outline")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(buildConfigFile, buildOutputFile, buildVerbose)
	if err != nil {
		return err
	}

	logger, runID := startRun(cfg.Verbose)
	logger.Debug("starting build", slog.String("output", cfg.Output))

	out := cmd.OutOrStdout()
	collector := collect.New(cmd.InOrStdin(), out,
		collect.WithStyledBanners(collect.IsTerminal(out)),
		collect.WithLogger(logger),
	)

	b, err := collector.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect resume data: %w", err)
	}

	printer := observability.NewPrinter(out)
	if cfg.Verbose {
		printer.PrintBundleSummary(b)
		printer.PrintOutline(rendering.Layout(b))
	}

	if err := newRenderer(cfg, out, logger).Save(b, cfg.Output); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	_, _ = fmt.Fprintln(out, "Resume created successfully!")
	if cfg.Verbose {
		printer.PrintRunInfo(runID, cfg.Output)
	}
	return nil
}
