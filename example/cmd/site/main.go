package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/3-lines-studio/vitrine"
	"github.com/3-lines-studio/vitrine/example"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	app := vitrine.New(example.Content(), vitrine.WithLogger(logger))
	if err := app.Reload(); err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	addr := ":8080"
	logger.Info("serving example", "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, app.Handler()); err != nil {
		log.Fatal(err)
	}
}
