// Package api exposes parsing and reconciliation over HTTP as JSON
// endpoints.
//
// Routes:
//   - GET  /health          liveness probe
//   - GET  /metrics         Prometheus metrics, when enabled
//   - POST /api/parse       parse a syntax file
//   - POST /api/reconcile   reconcile a syntax file with dataset columns
//   - POST /api/syntax      generate label syntax for the reconciled columns
//
// Every request builds its own parser, namer and reconciler state; the
// handler holds configuration only.
package api
