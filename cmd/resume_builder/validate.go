package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/bundle"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a bundle file against the bundle schema",
	Long:  "Checks that a JSON or YAML resume bundle matches the bundle schema and normalizes cleanly, listing every field error found.",
	RunE:  runValidate,
}

var validateBundleFile string

func init() {
	validateCmd.Flags().StringVarP(&validateBundleFile, "bundle", "b", "", "Path to bundle file, JSON or YAML (required)")

	if err := validateCmd.MarkFlagRequired("bundle"); err != nil {
		panic(fmt.Sprintf("failed to mark bundle flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	b, err := bundle.Load(validateBundleFile)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(out, "Bundle %s is invalid:\n", validateBundleFile)
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("bundle has %d schema error(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("failed to load bundle: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Bundle %s is valid\n", validateBundleFile)
	_, _ = fmt.Fprintf(out, "Sections with data: %d\n", len(rendering.Layout(b).Headings()))
	return nil
}
