// Package server exposes element diffing over HTTP.
//
// Routes:
//
//	GET  /healthz      liveness probe
//	GET  /metrics      Prometheus metrics, when a Gatherer is configured
//	POST /v1/diff      {"prev": <descriptor>, "next": <descriptor>} -> diff result
//	POST /v1/inspect   <descriptor> -> element report
//	GET  /v1/watch     WebSocket stream of descriptors
//
// On /v1/watch every text message is a descriptor. The first is answered
// with a "snapshot" carrying its report. Each later message is diffed
// against the previous one and answered with "changes", or with "replace"
// and a new snapshot when the kind differs. Undecodable messages are
// answered with "error" and do not advance the stream.
//
// Errors are returned as {"error": {...}} using the structured error JSON
// of internal/errors.
//
//	srv, err := server.New(&server.Config{
//	    Addr:     ":8080",
//	    Recorder: recorder,
//	    Registry: registry,
//	    Gatherer: registry,
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
package server
