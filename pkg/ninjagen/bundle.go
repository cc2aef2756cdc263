package ninjagen

import "time"

// Package represents a single generated build file. The main document renders
// as "build.ninja"; when a description declares subninja children each child
// becomes its own package, named by the path the parent references it with.
type Package struct {
	Name    string // File name relative to the output root (e.g. "build.ninja")
	Content []byte // Rendered build-file text
}

// Metadata stores information about how and when the bundle was generated.
type Metadata struct {
	Format    string            // Format identifier ("ninja")
	Backend   string            // Backend name that generated this bundle
	Generated time.Time         // Timestamp when the bundle was created
	Version   string            // Optional version tag
	Custom    map[string]string // Extensible metadata for backend-specific information
}

// Bundle represents the complete output of one render operation: every
// generated build file plus metadata about the generation process.
type Bundle struct {
	Packages []Package
	Metadata Metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// The Generated timestamp is set to the current time.
func NewBundle(format, backend string) *Bundle {
	return &Bundle{
		Packages: make([]Package, 0),
		Metadata: Metadata{
			Format:    format,
			Backend:   backend,
			Generated: time.Now(),
			Custom:    make(map[string]string),
		},
	}
}
