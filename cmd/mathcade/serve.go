package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu. Scores
are stored per server and tagged with the SSH user name; dot card weights
are kept per user.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mathcade/host_key

Examples:
  mathcade serve                           # Listen on :23234
  mathcade serve --ssh :2222               # Listen on port 2222
  mathcade serve --metrics :9090           # Also expose /metrics
  mathcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	f.StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	f.IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	f.StringVar(&flagMetricsAddr, "metrics", "", "Address for the Prometheus /metrics endpoint (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	if flagMetricsAddr != "" {
		stop := serveMetrics(flagMetricsAddr)
		defer stop()
	}

	logger.Info("connect with: ssh localhost -p <port>, press Ctrl+C to stop")
	return server.ListenAndServe()
}

// serveMetrics exposes the Prometheus registry over HTTP and returns a
// function that stops it.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Default().Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "address", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}
}
