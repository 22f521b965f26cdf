package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/config"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/health"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/lib/logger/sl"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/server"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/telemetry"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	log := sl.SetupLogger(cfg.Log.Level, cfg.Log.Format)

	log.Info("starting Duplotech 6040 dashboard",
		slog.String("env", cfg.Env),
		slog.String("address", cfg.HTTP.Address),
		slog.Bool("debug", cfg.HTTP.Debug()),
	)

	assets := web.Assets(cfg.Web.TemplatesDir)

	// Re-parsing only makes sense when templates live on disk.
	reload := cfg.HTTP.Debug() && cfg.Web.TemplatesDir != ""
	renderer, err := loadRenderer(os.Stdout, assets, reload, publicURL(cfg.HTTP.Address))
	if err != nil {
		log.Error("failed to load templates", sl.Err(err))
		os.Exit(1)
	}

	sim := telemetry.NewSimulator(time.Now(), nil)
	sessions := session.NewStore(
		[]byte(cfg.Session.Secret),
		cfg.Session.CookieName,
		cfg.Session.Lifetime,
		cfg.Session.Secure,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := health.RegisterMachineGauges(reg, sim.Peek); err != nil {
		log.Error("failed to register machine gauges", sl.Err(err))
		os.Exit(1)
	}
	httpMetrics, err := health.NewHTTPMetrics(reg)
	if err != nil {
		log.Error("failed to register http metrics", sl.Err(err))
		os.Exit(1)
	}

	router, err := server.NewRouter(server.Dependencies{
		Log:       log,
		Telemetry: sim,
		Verifier:  auth.NewStaticVerifier(),
		Sessions:  sessions,
		Renderer:  renderer,
		Assets:    assets,
		Metrics:   httpMetrics,
	})
	if err != nil {
		log.Error("failed to build router", sl.Err(err))
		os.Exit(1)
	}

	opsServer := health.NewServer(log, cfg.Health.Address, reg)
	opsServer.AddChecker(health.NewTelemetryHealthChecker(func() bool {
		return sim.Peek().Operational
	}))
	opsServer.AddChecker(health.NewAssetsHealthChecker(func() []string {
		var paths []string
		for _, a := range web.MissingAssets(assets) {
			paths = append(paths, a.Path)
		}
		return paths
	}))

	if err := opsServer.Start(); err != nil {
		log.Error("failed to start ops server", sl.Err(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received signal, shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("http server error", sl.Err(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
	}

	if err := opsServer.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop ops server", sl.Err(err))
	}

	log.Info("dashboard stopped")
}

// loadRenderer prints the startup checklist before parsing templates, so a
// missing file is listed even when parsing then fails.
func loadRenderer(out io.Writer, assets fs.FS, reload bool, url string) (*web.Renderer, error) {
	web.WriteStartupReport(out, assets, url, auth.DemoAccounts())
	return web.NewRenderer(assets, reload)
}

// publicURL turns a listen address into the URL printed in the banner.
func publicURL(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "http://" + address
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
