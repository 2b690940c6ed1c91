// Command heitn-server exposes Hebrew inverse text normalization as a JSON
// API.
//
// Endpoints:
//
//	POST /api/normalize   body: {"text":"..."}
//	POST /api/classify    body: {"text":"..."}
//	POST /api/verbalize   body: {"tokens":[...]} or {"tagged":"..."}
//	GET  /healthz
//
// Settings are taken from a YAML file (flag -config) and HEITN_* environment
// variables.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/npillmayer/itn/internal/config"
	"github.com/npillmayer/itn/normalize"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	configPath := flag.String("config", "", "path of a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("heitn-server: %v", err)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.Log.TraceLevel())
	if !cfg.Hebrew() {
		gtrace.CoreTracer.Errorf("locale %s is not Hebrew, normalizing Hebrew anyway", cfg.Grammar.Locale)
	}

	log.Printf("building grammars (cache %q)", cfg.Grammar.CacheDir)
	n, err := normalize.New(cfg.Grammar.Options())
	if err != nil {
		log.Fatalf("heitn-server: %v", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(n, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()
	<-ctx.Done()

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
