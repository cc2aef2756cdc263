package renderer

import (
	"context"

	"ninjagen/pkg/ninjagen"
)

// Sink receives rendered text as sequential chunks. A strings.Builder serves
// as the in-memory accumulator; any io.StringWriter (files, network streams)
// can be substituted. A write error aborts rendering.
type Sink interface {
	WriteString(s string) (int, error)
}

// Renderer turns a dialect document into a rendered bundle. The document type
// is constrained with a generic parameter.
type Renderer[T any] interface {
	Render(ctx context.Context, doc T, opts ninjagen.RenderOptions) (*ninjagen.Bundle, error)
}

// Parser is the reverse direction: rendered text back into a dialect document.
type Parser[T any] interface {
	Parse(ctx context.Context, bundle *ninjagen.Bundle, opts ninjagen.ParseOptions) (T, error)
}
