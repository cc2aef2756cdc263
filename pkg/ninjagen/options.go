package ninjagen

import "time"

// RenderOptions controls the forward rendering process (description → build
// file text).
type RenderOptions struct {
	GenerationTag string        // Optional tag recorded in bundle metadata
	Strict        bool          // Fail on any warnings if true
	Timeout       time.Duration // Maximum time allowed for rendering
}

// ParseOptions controls the reverse direction (build file text →
// description). Parsing is currently a stub; the options exist so the Backend
// interface keeps both directions.
type ParseOptions struct {
	BestEffort bool          // Continue parsing on non-fatal errors
	Timeout    time.Duration // Maximum time allowed for parsing
}
