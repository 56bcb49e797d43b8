package defaults

import "time"

// Table loading timeouts.
const (
	// TableLoadTimeout is the default timeout for loading one reference
	// table from disk.
	TableLoadTimeout = 10 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Machining fallbacks applied when a configuration omits a value.
const (
	// SafeZ is the retract height in millimeters between operations.
	SafeZ = 10.0
)
