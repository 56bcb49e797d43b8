// Package server exposes the resolution engine over HTTP.
//
// # Overview
//
// The server wraps a loaded tables.Bundle and serves speed resolution, feed
// derivation, tool inventory, and tap drill lookups as JSON endpoints. Each
// feed derivation runs against a fresh machine session so command logs never
// interleave between requests.
//
// # Endpoints
//
//   - GET  /v1/speeds?material=&tool=&diameter=  resolve surface and spindle speed
//   - POST /v1/feed                              derive a feed for a tool and material
//   - GET  /v1/tools                             flattened tool inventory
//   - GET  /v1/tapdrill?screw=&percent=          tap and clearance drill lookup
//   - GET  /health, /ready                       probes (no rate limiting)
//   - GET  /metrics                              Prometheus metrics
//
// # Middleware
//
// API endpoints pass through metrics, request-ID, panic recovery, rate
// limiting, and request logging middleware, in that order. Request IDs are
// taken from the X-Request-Id header when present and valid, generated
// otherwise, and always echoed back.
//
// # Error Responses
//
// Failures return a JSON body carrying the engine's structured error code,
// mapped to HTTP status: NOT_FOUND to 404, INVALID_REQUEST and DATA_FORMAT
// to 400, OUT_OF_RANGE and LIMIT_EXCEEDED to 422, RATE_LIMIT_EXCEEDED to
// 429, everything else to 500.
//
// # Usage
//
//	bundle, err := tables.LoadAll(ctx, paths)
//	if err != nil {
//	    return err
//	}
//	return server.Run(bundle)
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
package server
