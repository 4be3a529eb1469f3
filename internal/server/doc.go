// Package server exposes the blacklist checker over HTTP.
//
// Routes:
//   - GET /api/v1/blacklist/check?ip=<addr>&threads=<n>: run one scan.
//   - GET /health: liveness probe.
//   - GET /metrics: Prometheus exposition.
//
// Every route goes through panic recovery, request-id tagging, metrics
// accounting, and the security headers/CORS middleware.
package server
