package ninja

import (
	"context"

	ast "ninjagen/pkg/ast/ninja"
	"ninjagen/pkg/ngerrors"
	"ninjagen/pkg/ninjagen"
)

// NotImplementedParser is a placeholder: parsing generated build files back
// into a document is out of scope.
type NotImplementedParser struct{}

func NewNotImplementedParser() *NotImplementedParser {
	return &NotImplementedParser{}
}

func (p *NotImplementedParser) Parse(ctx context.Context, bundle *ninjagen.Bundle, opts ninjagen.ParseOptions) (*ast.Document, error) {
	return nil, ngerrors.ErrNotImplemented
}
