// Package main provides the entry point for the interactive resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Interactive resume builder",
	Long: "Resume Builder asks for your personal details, skills, experience, education and more, " +
		"then writes a formatted Word document. Running it without a command starts the interactive build.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
