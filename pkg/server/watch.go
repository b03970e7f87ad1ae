package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/elattr/internal/descriptor"
)

// Stream message types sent on /v1/watch.
const (
	MessageSnapshot = "snapshot"
	MessageChanges  = "changes"
	MessageReplace  = "replace"
	MessageError    = "error"
)

const writeTimeout = 10 * time.Second

// StreamMessage is sent for every descriptor received on /v1/watch.
type StreamMessage struct {
	Type   string             `json:"type"`
	Seq    int                `json:"seq"`
	Report *descriptor.Report `json:"report,omitempty"`
	Result *descriptor.Result `json:"result,omitempty"`
	Error  json.RawMessage    `json:"error,omitempty"`
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.config.MaxBodyBytes)

	s.track(conn)
	defer s.untrack(conn)

	ctx := r.Context()
	var prev descriptor.Element
	for seq := 1; ; seq++ {
		if err := conn.SetReadDeadline(time.Now().Add(s.config.StreamIdleTimeout)); err != nil {
			s.logger.Debug("watch stream read deadline", "error", err)
			return
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.logger.Debug("watch stream read error", "error", err)
			}
			return
		}

		msg := StreamMessage{Seq: seq}
		next, err := descriptor.Parse(fmt.Sprintf("message %d", seq), data)
		switch {
		case err != nil:
			msg.Type = MessageError
			msg.Error = errorJSON(err)
		case prev == nil || prev.Kind() != next.Kind():
			msg.Type = MessageSnapshot
			if prev != nil {
				msg.Type = MessageReplace
			}
			report := descriptor.Inspect(next)
			msg.Report = &report
			prev = next
		default:
			changes, derr := descriptor.Diff(ctx, s.config.Recorder, prev, next)
			if derr != nil {
				msg.Type = MessageError
				msg.Error = errorJSON(derr)
				break
			}
			result := descriptor.NewResult(next.Kind(), changes)
			msg.Type = MessageChanges
			msg.Result = &result
			prev = next
		}

		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			s.logger.Debug("watch stream write deadline", "error", err)
			return
		}
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug("watch stream write error", "error", err)
			return
		}
	}
}

func (s *Server) track(conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	if s.streams != nil {
		s.streams.Inc()
	}
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.conns[conn]
	delete(s.conns, conn)
	s.mu.Unlock()
	if ok && s.streams != nil {
		s.streams.Dec()
	}
	conn.Close()
}

// closeStreams closes every open watch stream.
func (s *Server) closeStreams() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		s.untrack(conn)
	}
}

// StreamCount returns the number of open watch streams.
func (s *Server) StreamCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
