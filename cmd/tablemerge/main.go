package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"tablemerge/internal/config"
	"tablemerge/internal/exporter"
	"tablemerge/internal/files"
	"tablemerge/internal/infrastructure"
	"tablemerge/internal/pipeline"
	"tablemerge/internal/tabular"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [search-path]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(),
			"Merges schema-compatible tabular files (CSV/TSV/XLSX) found under")
		fmt.Fprintln(flag.CommandLine.Output(),
			"search-path (default: current directory) into combined CSV artifacts.")
	}
	flag.Parse()

	// One optional positional argument: the search path
	searchPath := flag.Arg(0)
	if searchPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			slog.Error("Failed to determine working directory", "error", err)
			os.Exit(1)
		}
		searchPath = wd
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// Tag every log record of this run with a trace id
	ctx := infrastructure.WithTraceID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "starting table merge",
		slog.String("search_path", searchPath),
		slog.String("output_dir", cfg.Output.Dir))

	discovery := files.NewDiscovery(cfg.Scan.Extensions)
	writer := exporter.NewCSVWriter(cfg.Output.Dir, cfg.Output.BOMPrefix)
	p := pipeline.New(discovery, tabular.ReadFile, writer, logger)

	summary, err := p.Run(ctx, searchPath)
	if err != nil {
		logger.ErrorContext(ctx, "run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Processing complete! Created %d output files\n", summary.ArtifactsCreated)

	if cfg.Prompt.Enabled {
		pause("All files have been processed successfully, press enter to continue.")
	}
}

// pause blocks until the user presses enter
func pause(message string) {
	fmt.Println(message)
	bufio.NewReader(os.Stdin).ReadString('\n')
}
