// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context, logs access info
//     and recovers handler panics.
//   - WithMetrics: Observes request latency per route pattern in Prometheus.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - ClientIP: Resolves the originating client address behind the gateway.
//   - RequestID: Returns the id assigned to the request by WithLogger.
package controller
