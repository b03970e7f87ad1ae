package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/elattr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "elattr.json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler format.
	DefaultLogFormat = "text"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "elattr"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "elattr"

	// DefaultAddr is the default listen address of elattr serve.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes limits request bodies accepted by elattr serve.
	DefaultMaxBodyBytes = 1 << 20
)

// Config represents the complete elattr.json configuration.
type Config struct {
	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing"`

	// Output contains terminal output configuration.
	Output OutputConfig `json:"output"`

	// Server contains elattr serve configuration.
	Server ServerConfig `json:"server"`

	// S3 configures reading descriptors from s3:// URIs.
	S3 S3Config `json:"s3"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Enabled prints collected metrics after each command.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the Prometheus metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains tracing settings.
type TracingConfig struct {
	// TracerName is the OpenTelemetry tracer name.
	TracerName string `json:"tracerName,omitempty"`
}

// OutputConfig contains terminal output settings.
type OutputConfig struct {
	// Color enables ANSI colors in error output. Defaults to true.
	Color *bool `json:"color,omitempty"`
}

// ServerConfig contains HTTP diff service settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty"`

	// MaxBodyBytes limits request and WebSocket message sizes.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`

	// AllowedOrigins lists origins accepted on the WebSocket endpoint.
	// Empty accepts same-origin requests only; "*" accepts any origin.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// S3Config contains S3 client settings.
type S3Config struct {
	// Region is the AWS region. Falls back to the SDK's region chain
	// (AWS_REGION, shared config), then us-east-1.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty"`

	// UsePathStyle addresses buckets by path instead of host.
	UsePathStyle bool `json:"usePathStyle,omitempty"`

	// Anonymous sends unsigned requests, for public buckets.
	Anonymous bool `json:"anonymous,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	color := true
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Output: OutputConfig{
			Color: &color,
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Load reads configuration from elattr.json in the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault is Load, falling back to defaults when the file is missing.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E222").
				WithFile(path).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("E220").WithFile(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E220").Wrap(err)
		if line, col, ok := errors.JSONPosition(data, err); ok {
			return nil, e.WithLocation(path, line, col)
		}
		return nil, e.WithFile(path)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E220").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E220").WithFile(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields set to empty strings.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E221").
			WithFile(c.configPath).
			WithDetailf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// ColorEnabled reports whether ANSI colors are enabled.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, errors.New("E221").
			WithDetailf("unknown log level %q", l.Level).
			Wrap(err)
	}
	return level, nil
}

// Handler builds the slog handler described by l, writing to w.
// An invalid level falls back to info.
func (l LogConfig) Handler(w io.Writer) slog.Handler {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Exists checks if elattr.json exists in the directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
