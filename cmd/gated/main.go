// Command gated runs the edge request filter in front of the site's static
// files: sensitive-path and bad-bot requests get a flat 403, everything
// else is served.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/teranos/dolly/gate"
)

type config struct {
	Addr            string        `env:"GATED_ADDR" envDefault:":8080"`
	StaticDir       string        `env:"GATED_STATIC_DIR" envDefault:"./public"`
	RulesFile       string        `env:"GATED_RULES_FILE"`
	ShutdownTimeout time.Duration `env:"GATED_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("gated: %v", err)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	rules := gate.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := gate.LoadRules(cfg.RulesFile)
		if err != nil {
			return err
		}
		rules = loaded
		log.Printf("loaded rules from %s: %d suffixes, %d agents",
			cfg.RulesFile, len(rules.PathSuffixes), len(rules.AgentSubstrings))
	}

	handler := gate.Chain(
		http.FileServer(http.Dir(cfg.StaticDir)),
		gate.Deny(rules),
	)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s, serving %s", cfg.Addr, cfg.StaticDir)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case s := <-sig:
		log.Printf("received %s, shutting down", s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	return <-errCh
}
