// Package telemetry observes element diffs for the reconciliation layer.
//
// A Recorder wraps the per-kind diff of package vdom with:
//
//   - Prometheus counters: elattr_diffs_total{kind,result} and
//     elattr_attribute_changes_total{kind,key,op}
//   - an OpenTelemetry span per diff ("elattr.diff <kind>")
//   - a Debug-level slog record listing the changed keys
//
// Example:
//
//	rec, err := telemetry.NewRecorder(
//	    telemetry.WithNamespace("myapp"),
//	    telemetry.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	changes := telemetry.Observe(ctx, rec, prevCanvas, nextCanvas)
//
// The tracer comes from the global OpenTelemetry provider unless WithTracer
// is given. A nil *Recorder is valid and only computes the diff.
package telemetry
