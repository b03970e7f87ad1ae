package telemetry

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for elattr.
const defaultTracerName = "elattr"

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "elattr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer. Nil disables metrics.
	Registry prometheus.Registerer

	// TracerName is the name of the tracer (default: "elattr").
	TracerName string

	// Tracer overrides the tracer resolved from the global provider.
	Tracer trace.Tracer

	// Logger receives one Debug record per diff (default: discarded).
	Logger *slog.Logger
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry. Nil disables metrics.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Namespace:  "elattr",
		Registry:   prometheus.DefaultRegisterer,
		TracerName: defaultTracerName,
	}
}

// Recorder records element diffs.
type Recorder struct {
	diffsTotal         *prometheus.CounterVec
	changesTotal       *prometheus.CounterVec
	contractViolations prometheus.Counter
	tracer             trace.Tracer
	logger             *slog.Logger
}

// NewRecorder creates a Recorder. Metrics already registered under the same
// names are reused, so several recorders may share one registry.
func NewRecorder(opts ...Option) (*Recorder, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	r := &Recorder{
		tracer: config.Tracer,
		logger: config.Logger,
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(config.TracerName)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Registry == nil {
		return r, nil
	}

	diffs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "diffs_total",
		Help:        "Total number of element attribute diffs by kind and result",
		ConstLabels: config.ConstLabels,
	}, []string{"kind", "result"})

	changes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "attribute_changes_total",
		Help:        "Total number of changed attributes by kind, key and operation",
		ConstLabels: config.ConstLabels,
	}, []string{"kind", "key", "op"})

	violations := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "contract_violations_total",
		Help:        "Total number of diffs aborted by an attribute type mismatch",
		ConstLabels: config.ConstLabels,
	})

	var err error
	if r.diffsTotal, err = register(config.Registry, diffs); err != nil {
		return nil, err
	}
	if r.changesTotal, err = register(config.Registry, changes); err != nil {
		return nil, err
	}
	if r.contractViolations, err = register[prometheus.Counter](config.Registry, violations); err != nil {
		return nil, err
	}
	return r, nil
}

// register registers c, returning the existing collector if an identical one
// is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}
