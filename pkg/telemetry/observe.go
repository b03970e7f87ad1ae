package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/pkg/vdom"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Observe computes prev.Changes(next) and records it on r.
//
// A panic raised by the diff marks the span as failed and is re-panicked.
// Only contract violations are counted.
func Observe[E vdom.Diffable[E]](ctx context.Context, r *Recorder, prev, next E) vdom.Changes {
	if r == nil {
		return prev.Changes(next)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	kind := prev.Kind()
	ctx, span := r.tracer.Start(ctx, "elattr.diff "+kind,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("elattr.kind", kind)),
	)
	defer func() {
		if p := recover(); p != nil {
			span.SetStatus(codes.Error, fmt.Sprint(p))
			if isContractViolation(p) && r.contractViolations != nil {
				r.contractViolations.Inc()
			}
			span.End()
			panic(p)
		}
		span.End()
	}()

	changes := prev.Changes(next)

	span.SetAttributes(
		attribute.Bool("elattr.changed", changes.Changed()),
		attribute.StringSlice("elattr.changed_keys", changes.Keys()),
	)
	r.record(kind, changes)
	r.logger.LogAttrs(ctx, slog.LevelDebug, "element diff",
		slog.String("kind", kind),
		slog.Bool("changed", changes.Changed()),
		slog.Any("keys", changes.Keys()),
	)
	return changes
}

func isContractViolation(p any) bool {
	e, ok := p.(*errors.ElattrError)
	return ok && e.Category == errors.CategoryContract
}

func (r *Recorder) record(kind string, changes vdom.Changes) {
	if r.diffsTotal == nil {
		return
	}
	result := "unchanged"
	if changes.Changed() {
		result = "changed"
	}
	r.diffsTotal.WithLabelValues(kind, result).Inc()
	for _, c := range changes {
		r.changesTotal.WithLabelValues(kind, c.Key, c.Op.String()).Inc()
	}
}
