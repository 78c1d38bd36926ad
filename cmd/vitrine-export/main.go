package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/3-lines-studio/vitrine"
	"github.com/3-lines-studio/vitrine/internal/adapters/cli"
	"github.com/3-lines-studio/vitrine/internal/adapters/env"
	"github.com/3-lines-studio/vitrine/internal/adapters/fs"
)

func main() {
	output := cli.NewOutput()
	output.PrintHeader("Vitrine Export")

	cfg, err := env.Load()
	if err != nil {
		output.PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	contentDir := flag.String("content", cfg.ContentDir, "content directory")
	outDir := flag.String("out", cfg.ExportDir, "output directory")
	clean := flag.Bool("clean", false, "remove the output directory first")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		output.DisableColors()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.EffectiveLevel()}))

	osfs := fs.NewOSFileSystem()
	contentFS, err := osfs.DirFS(*contentDir)
	if err != nil {
		output.PrintError("Failed to open content directory %s: %v", *contentDir, err)
		os.Exit(1)
	}

	app := vitrine.New(contentFS,
		vitrine.WithLogger(logger),
		vitrine.WithOnline(cfg.Online),
		vitrine.WithStylesheet(cfg.Stylesheet),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := app.Export(ctx, *outDir, vitrine.ExportOptions{
		Clean:      *clean,
		Output:     output,
		FileSystem: osfs,
	}); err != nil {
		output.PrintError("Export failed: %v", err)
		os.Exit(1)
	}

	output.PrintDone("Export complete")
}
