package ninjagen

import (
	"context"

	build "ninjagen/domain/build"
)

// Backend defines the bidirectional conversion interface between a resolved
// build description and rendered build-file bundles.
type Backend interface {
	// Name returns the backend identifier (e.g. "ninja").
	Name() string

	// ToNative renders a build description to build-file text.
	ToNative(ctx context.Context, cfg *build.Config, opts RenderOptions) (*Bundle, error)

	// ToConfig parses rendered build files back into a description.
	// This is the reverse conversion and may be unimplemented.
	ToConfig(ctx context.Context, bundle *Bundle, opts ParseOptions) (*build.Config, error)
}
