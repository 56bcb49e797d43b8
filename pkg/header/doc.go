// Package header provides common header types for millwright data structures.
//
// This package defines the Header type used across derivation traces, feed
// results, and other serialized documents to provide consistent metadata and
// versioning information.
//
// # Header Structure
//
// The Header contains standard fields for schema versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              // Document type (e.g., "Trace", "FeedResult")
//	    APIVersion string            // Schema version (e.g., "v1")
//	    Metadata   map[string]string // Optional key-value metadata
//	}
//
// # Usage
//
// Creating a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindTrace),
//	    header.WithAPIVersion("v1"),
//	    header.WithMetadata("machine", "benchtop-mill"),
//	)
package header
