package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/elattr/internal/descriptor"
	"github.com/vango-dev/elattr/pkg/telemetry"
)

func newTestServer(t *testing.T, mutate func(*Config)) (*Server, *httptest.Server, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	recorder, err := telemetry.NewRecorder(telemetry.WithRegistry(registry))
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}
	cfg := &Config{
		Recorder: recorder,
		Registry: registry,
		Gatherer: registry,
	}
	if mutate != nil {
		mutate(cfg)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, registry
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

func TestDiffEndpoint(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	resp, body := post(t, ts.URL+"/v1/diff", `{
		"prev": {"kind":"canvas","class":["view"],"width":10,"height":20},
		"next": {"kind":"canvas","class":["view"],"width":10,"height":30}
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var result descriptor.Result
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatal(err)
	}
	if result.Kind != "canvas" || !result.Changed || len(result.Changes) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if result.Changes[0] != (descriptor.Change{Key: "canvas_height", Op: "Updated"}) {
		t.Errorf("change = %+v, want canvas_height Updated", result.Changes[0])
	}
}

func TestDiffEndpointErrors(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *Config) { c.MaxBodyBytes = 256 })

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"kind mismatch", `{"prev":{"kind":"div"},"next":{"kind":"p"}}`, http.StatusUnprocessableEntity, "E212"},
		{"unknown kind", `{"prev":{"kind":"span"},"next":{"kind":"p"}}`, http.StatusBadRequest, "E210"},
		{"width on div", `{"prev":{"kind":"div","width":1},"next":{"kind":"div"}}`, http.StatusBadRequest, "E211"},
		{"missing next", `{"prev":{"kind":"div"}}`, http.StatusBadRequest, "E213"},
		{"not json", `nope`, http.StatusBadRequest, "E213"},
		{"too large", `{"prev":{"kind":"div","attrs":{"x":"` + strings.Repeat("y", 300) + `"}}}`, http.StatusRequestEntityTooLarge, "E213"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/v1/diff", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			var eb struct {
				Error struct {
					Code     string `json:"code"`
					Category string `json:"category"`
				} `json:"error"`
			}
			if err := json.Unmarshal(body, &eb); err != nil {
				t.Fatalf("error body %q: %v", body, err)
			}
			if eb.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", eb.Error.Code, tt.code)
			}
		})
	}
}

func TestInspectEndpoint(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	resp, body := post(t, ts.URL+"/v1/inspect", `{"kind":"p","class":["lead"],"children":[{"text":"hi"}]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if !bytes.Contains(body, []byte(`"kind":"p"`)) || !bytes.Contains(body, []byte(`"class":["lead"]`)) {
		t.Errorf("body = %s", body)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	post(t, ts.URL+"/v1/diff", `{"prev":{"kind":"div"},"next":{"kind":"div","class":["a"]}}`)

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	for _, want := range []string{
		`elattr_diffs_total{kind="div",result="changed"} 1`,
		`elattr_attribute_changes_total{key="class",kind="div",op="Added"} 1`,
		`elattr_http_requests_total{route="/v1/diff",status="200"} 1`,
		`elattr_http_requests_total{route="/healthz",status="200"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestMetricsRouteDisabled(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *Config) {
		c.Gatherer = nil
		c.Registry = nil
	})
	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestNewRegistrationConflict(t *testing.T) {
	registry := prometheus.NewRegistry()
	if _, err := New(&Config{Registry: registry}); err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	if _, err := New(&Config{Registry: registry}); err == nil {
		t.Error("second New() on the same registry should fail")
	}
}

func dialWatch(t *testing.T, ts *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/watch"
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("Dial() error = %v (status %d)", err, status)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func exchange(t *testing.T, conn *websocket.Conn, msg string) StreamMessage {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	var out StreamMessage
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return out
}

func TestWatchStream(t *testing.T) {
	s, ts, _ := newTestServer(t, nil)
	conn := dialWatch(t, ts, nil)

	m := exchange(t, conn, `{"kind":"div","class":["a"]}`)
	if m.Type != MessageSnapshot || m.Seq != 1 || m.Report == nil || m.Report.Kind != "div" {
		t.Fatalf("first message = %+v", m)
	}

	m = exchange(t, conn, `{"kind":"div","class":["a","b"]}`)
	if m.Type != MessageChanges || m.Seq != 2 || m.Result == nil {
		t.Fatalf("second message = %+v", m)
	}
	if len(m.Result.Changes) != 1 || m.Result.Changes[0].Key != "class" || m.Result.Changes[0].Op != "Updated" {
		t.Errorf("changes = %+v", m.Result.Changes)
	}

	m = exchange(t, conn, `{"kind":"span"}`)
	if m.Type != MessageError || !bytes.Contains(m.Error, []byte(`"E210"`)) {
		t.Errorf("third message = %+v (%s)", m, m.Error)
	}

	m = exchange(t, conn, `{"kind":"div","class":["a","b"]}`)
	if m.Type != MessageChanges || m.Result.Changed {
		t.Errorf("error should not advance the stream: %+v", m)
	}

	m = exchange(t, conn, `{"kind":"p"}`)
	if m.Type != MessageReplace || m.Report == nil || m.Report.Kind != "p" {
		t.Errorf("kind change message = %+v", m)
	}

	if got := s.StreamCount(); got != 1 {
		t.Errorf("StreamCount() = %d, want 1", got)
	}
}

func TestWatchOrigin(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *Config) {
		c.AllowedOrigins = []string{"https://app.example"}
	})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/watch"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	if err == nil {
		t.Fatal("Dial() from a foreign origin should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v, want 403", resp)
	}

	conn := dialWatch(t, ts, http.Header{"Origin": {"https://app.example"}})
	if m := exchange(t, conn, `{"kind":"header"}`); m.Type != MessageSnapshot {
		t.Errorf("message = %+v", m)
	}
}

func TestServeShutdown(t *testing.T) {
	s, err := New(&Config{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "ws://" + ln.Addr().String() + "/v1/watch"
	var conn *websocket.Conn
	for i := 0; i < 50; i++ {
		conn, _, err = websocket.DefaultDialer.Dial(url, nil)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.StreamCount() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("ReadMessage() error = %v, want close going away", err)
	}
	if got := s.StreamCount(); got != 0 {
		t.Errorf("StreamCount() = %d after shutdown, want 0", got)
	}
}
