package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/mlorentedev/translink/internal/adapter"
	"github.com/mlorentedev/translink/internal/config"
	"github.com/mlorentedev/translink/internal/display"
	"github.com/mlorentedev/translink/internal/submit"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	text := flag.String("text", "", "text to translate (default: read stdin)")
	source := flag.String("source", "", "source language code")
	target := flag.String("target", "", "target language code")
	endpoint := flag.String("endpoint", "", "override translation endpoint URL")
	locale := flag.String("locale", "", "override message locale")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	if *endpoint != "" {
		cfg.EndpointURL = *endpoint
	}
	if *locale != "" {
		cfg.Locale = *locale
	}

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(2)
		}
		input = string(data)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var rec display.Recorder
	out := display.Multi(&display.Writer{Out: os.Stdout, Progress: os.Stderr}, &rec)
	s := submit.New(
		&adapter.HTTPAdapter{Endpoint: cfg.EndpointURL, Client: &http.Client{Timeout: cfg.Timeout}},
		out,
		submit.WithLogger(logger),
		submit.WithCatalog(display.NewCatalog(cfg.Locale)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	s.Submit(ctx, submit.Input{Text: input, SourceLang: *source, TargetLang: *target})
	stop()

	if rec.Last().Kind != display.Success {
		os.Exit(1)
	}
}
