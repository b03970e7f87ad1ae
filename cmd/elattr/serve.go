package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/vango-dev/elattr/pkg/server"
	"github.com/vango-dev/elattr/pkg/telemetry"
)

func (app *cli) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diff API over HTTP",
		Long: `Serve element diffing over HTTP until interrupted.

  POST /v1/diff      diff two descriptors
  POST /v1/inspect   report one descriptor
  GET  /v1/watch     WebSocket stream of descriptors
  GET  /metrics      Prometheus metrics
  GET  /healthz      liveness probe`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.cfg.Server.Addr
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			recorder, err := telemetry.NewRecorder(
				telemetry.WithNamespace(app.cfg.Metrics.Namespace),
				telemetry.WithTracerName(app.cfg.Tracing.TracerName),
				telemetry.WithLogger(app.logger),
				telemetry.WithRegistry(registry),
			)
			if err != nil {
				return err
			}

			srv, err := server.New(&server.Config{
				Addr:           addr,
				MaxBodyBytes:   app.cfg.Server.MaxBodyBytes,
				AllowedOrigins: app.cfg.Server.AllowedOrigins,
				Recorder:       recorder,
				Registry:       registry,
				Gatherer:       registry,
				Namespace:      app.cfg.Metrics.Namespace,
				Logger:         app.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}
