// Package defaults provides centralized configuration constants for the
// millwright system.
//
// This package defines timeout values and machining fallbacks used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/millworks/millwright/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.TableLoadTimeout)
//	defer cancel()
package defaults
