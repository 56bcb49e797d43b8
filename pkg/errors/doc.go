// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeOutOfRange,
//	    "diameter outside spindle-speed table",
//	    cause,
//	    map[string]interface{}{
//	        "material": material,
//	        "diameter": diameter,
//	    },
//	)
package errors
