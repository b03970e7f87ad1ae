package server

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/elattr/pkg/telemetry"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address used by Run.
	Addr string

	// MaxBodyBytes limits request bodies and WebSocket messages.
	MaxBodyBytes int64

	// AllowedOrigins lists origins accepted on /v1/watch. Empty keeps the
	// same-origin check; "*" accepts any origin.
	AllowedOrigins []string

	// ReadBufferSize and WriteBufferSize size WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// StreamIdleTimeout closes a watch stream with no messages.
	StreamIdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown in Run and Serve.
	ShutdownTimeout time.Duration

	// Recorder observes every diff. May be nil.
	Recorder *telemetry.Recorder

	// Registry receives the HTTP metrics. Nil disables them.
	Registry prometheus.Registerer

	// Gatherer is served on /metrics. Nil removes the route.
	Gatherer prometheus.Gatherer

	// Namespace is the HTTP metrics namespace (default: "elattr").
	Namespace string

	// Logger receives request and stream logs (default: discard).
	Logger *slog.Logger
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":8080",
		MaxBodyBytes:      1 << 20,
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		StreamIdleTimeout: 5 * time.Minute,
		ShutdownTimeout:   10 * time.Second,
		Namespace:         "elattr",
	}
}

// Server serves the diff API.
type Server struct {
	config   *Config
	router   chi.Router
	upgrader websocket.Upgrader
	logger   *slog.Logger

	requests *prometheus.CounterVec
	streams  prometheus.Gauge

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// New creates a Server. Zero fields of config take their defaults.
func New(config *Config) (*Server, error) {
	cfg := DefaultConfig()
	if config != nil {
		merged := *config
		if merged.Addr == "" {
			merged.Addr = cfg.Addr
		}
		if merged.MaxBodyBytes <= 0 {
			merged.MaxBodyBytes = cfg.MaxBodyBytes
		}
		if merged.ReadBufferSize <= 0 {
			merged.ReadBufferSize = cfg.ReadBufferSize
		}
		if merged.WriteBufferSize <= 0 {
			merged.WriteBufferSize = cfg.WriteBufferSize
		}
		if merged.StreamIdleTimeout <= 0 {
			merged.StreamIdleTimeout = cfg.StreamIdleTimeout
		}
		if merged.ShutdownTimeout <= 0 {
			merged.ShutdownTimeout = cfg.ShutdownTimeout
		}
		if merged.Namespace == "" {
			merged.Namespace = cfg.Namespace
		}
		cfg = &merged
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
	if err := s.initMetrics(); err != nil {
		return nil, err
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) initMetrics() (err error) {
	if s.config.Registry == nil {
		return nil
	}
	// promauto panics on registration conflicts.
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
				return
			}
			panic(p)
		}
	}()

	factory := promauto.With(s.config.Registry)
	s.requests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: s.config.Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of diff API requests by route and status",
	}, []string{"route", "status"})
	s.streams = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: s.config.Namespace,
		Name:      "active_streams",
		Help:      "Number of open /v1/watch streams",
	})
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.config.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/diff", s.handleDiff)
		r.Post("/inspect", s.handleInspect)
		r.Get("/watch", s.handleWatch)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on Config.Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully and
// closes open watch streams.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	s.logger.Info("server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.closeStreams()
	err := httpServer.Shutdown(shutdownCtx)
	s.logger.Info("server stopped", "addr", ln.Addr().String())
	return err
}

// observe logs each request and counts it by route pattern and status.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			// Hijacked by the WebSocket upgrade, or nothing written.
			status = http.StatusOK
			if websocket.IsWebSocketUpgrade(r) {
				status = http.StatusSwitchingProtocols
			}
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		if s.requests != nil {
			s.requests.WithLabelValues(route, statusLabel(status)).Inc()
		}
		s.logger.LogAttrs(r.Context(), slog.LevelDebug, "request",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
