package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mlorentedev/translink/internal/adapter"
	"github.com/mlorentedev/translink/internal/config"
	"github.com/mlorentedev/translink/internal/display"
	"github.com/mlorentedev/translink/internal/handler"
	"github.com/mlorentedev/translink/internal/lang"
	"github.com/mlorentedev/translink/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock translator instead of the remote endpoint")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	// .env is optional when variables come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	tr := handler.Translation{
		Translator: buildTranslator(cfg, *useMock),
		Catalog:    display.NewCatalog(cfg.Locale),
		Logger:     logger,
	}
	h := server.SetupMux(tr, lang.Options(cfg.Languages), cfg.RateLimit)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("translink listening", "addr", addr, "locale", cfg.Locale)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	slog.Info("server stopped")
}

func buildTranslator(cfg config.Config, useMock bool) adapter.Translator {
	if useMock {
		slog.Info("mode: mock translator enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}
	}

	slog.Info("mode: remote endpoint", "url", cfg.EndpointURL, "timeout", cfg.Timeout)
	return &adapter.HTTPAdapter{
		Endpoint: cfg.EndpointURL,
		Client:   &http.Client{Timeout: cfg.Timeout},
	}
}
