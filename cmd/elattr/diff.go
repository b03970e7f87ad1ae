package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/vango-dev/elattr/internal/descriptor"
	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/telemetry"
	"github.com/vango-dev/elattr/pkg/vdom"
)

func (app *cli) diffCmd() *cobra.Command {
	var (
		format   string
		exitCode bool
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "diff PREV NEXT",
		Short: "Compare the attributes of two elements",
		Long: `Build both elements and compare their attributes using the rule for
their kind. Both descriptors must name the same kind.

PREV and NEXT are file paths or s3://bucket/key URIs. Children are
not compared.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return errors.New("E230").WithDetailf("unknown --format %q", format)
			}

			prev, err := app.loader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			next, err := app.loader.Load(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			// Metrics go to a private registry that is only gathered
			// for the dump.
			var registry *prometheus.Registry
			var registerer prometheus.Registerer
			dumpMetrics := metrics || app.cfg.Metrics.Enabled
			if dumpMetrics {
				registry = prometheus.NewRegistry()
				registerer = registry
			}
			recorder, err := telemetry.NewRecorder(
				telemetry.WithNamespace(app.cfg.Metrics.Namespace),
				telemetry.WithTracerName(app.cfg.Tracing.TracerName),
				telemetry.WithLogger(app.logger),
				telemetry.WithRegistry(registerer),
			)
			if err != nil {
				return err
			}

			changes, err := descriptor.Diff(cmd.Context(), recorder, prev, next)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				if err := writeChangesJSON(out, prev.Kind(), changes); err != nil {
					return err
				}
			} else {
				writeChangesText(out, prev.Kind(), changes)
			}

			if dumpMetrics {
				if err := writeMetrics(out, registry); err != nil {
					return err
				}
			}
			if exitCode && changes.Changed() {
				return errChanged
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when attributes differ")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print collected Prometheus metrics after the result")

	return cmd
}

var opSymbols = map[attr.Delta]string{
	attr.Added:   "+",
	attr.Removed: "-",
	attr.Updated: "~",
}

func writeChangesText(w io.Writer, kind string, changes vdom.Changes) {
	if !changes.Changed() {
		fmt.Fprintf(w, "%s: no attribute changes\n", kind)
		return
	}
	fmt.Fprintf(w, "%s: %d attribute change(s)\n", kind, len(changes))
	for _, c := range changes {
		fmt.Fprintf(w, "  %s %s (%s)\n", opSymbols[c.Op], c.Key, c.Op)
	}
}

func writeChangesJSON(w io.Writer, kind string, changes vdom.Changes) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(descriptor.NewResult(kind, changes))
}

// writeMetrics writes every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
