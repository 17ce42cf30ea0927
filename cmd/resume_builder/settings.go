package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// resolveConfig merges configuration sources. Flags win over the environment,
// which wins over the config file, which wins over the defaults.
func resolveConfig(configPath, outPath string, verbose bool) (config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyEnv(os.Getenv)

	if outPath != "" {
		cfg.Output = outPath
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// startRun installs the logger and tags it with a fresh run id
func startRun(verbose bool) (*slog.Logger, string) {
	runID := uuid.NewString()
	logger := logging.Setup(verbose).With(slog.String("run_id", runID))
	return logger, runID
}

func newRenderer(cfg config.Config, diagnostics io.Writer, logger *slog.Logger) *rendering.Renderer {
	styles := rendering.ConfigureStyles(rendering.StyleOptions{
		FontFamily:  cfg.FontFamily,
		BodySize:    cfg.FontSize,
		NameSize:    cfg.NameFontSize,
		HeadingSize: cfg.HeadingFontSize,
	})
	return rendering.NewRenderer(styles,
		rendering.WithPictureWidth(cfg.PictureWidth),
		rendering.WithDiagnostics(diagnostics),
		rendering.WithLogger(logger),
	)
}
