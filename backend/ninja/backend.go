package ninja

import (
	"context"
	"errors"

	build "ninjagen/domain/build"
	ast "ninjagen/pkg/ast/ninja"
	"ninjagen/pkg/ngerrors"
	"ninjagen/pkg/ninjagen"
	"ninjagen/pkg/renderer"
)

// Backend composes a renderer and a parser behind the ninjagen.Backend
// interface. A description with subninja children fans out to one package per
// child, depth first, after the main build.ninja package.
type Backend struct {
	renderer renderer.Renderer[*ast.Document]
	parser   renderer.Parser[*ast.Document]
}

func New(r renderer.Renderer[*ast.Document], p renderer.Parser[*ast.Document]) *Backend {
	return &Backend{renderer: r, parser: p}
}

func (b *Backend) Name() string {
	return "ninja"
}

func (b *Backend) ToNative(ctx context.Context, cfg *build.Config, opts ninjagen.RenderOptions) (*ninjagen.Bundle, error) {
	if cfg == nil {
		return nil, ngerrors.New(ngerrors.KindValidation, errors.New("expected build config"))
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	doc, err := cfg.ToAST()
	if err != nil {
		return nil, err
	}
	bundle, err := b.renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	if err := b.appendSubninjas(ctx, bundle, cfg.Subninjas, opts); err != nil {
		return nil, err
	}
	return bundle, nil
}

// appendSubninjas renders each child description into its own package named
// by the path the parent references it with.
func (b *Backend) appendSubninjas(ctx context.Context, bundle *ninjagen.Bundle, subs []build.Subninja, opts ninjagen.RenderOptions) error {
	for _, sub := range subs {
		if sub.Config == nil {
			continue
		}
		doc, err := sub.Config.ToAST()
		if err != nil {
			return err
		}
		child, err := b.renderer.Render(ctx, doc, opts)
		if err != nil {
			return err
		}
		pkg := ninjagen.Package{Name: sub.Path}
		if len(child.Packages) > 0 {
			pkg.Content = child.Packages[0].Content
		}
		bundle.Packages = append(bundle.Packages, pkg)
		if err := b.appendSubninjas(ctx, bundle, sub.Config.Subninjas, opts); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) ToConfig(ctx context.Context, bundle *ninjagen.Bundle, opts ninjagen.ParseOptions) (*build.Config, error) {
	if _, err := b.parser.Parse(ctx, bundle, opts); err != nil {
		return nil, err
	}
	return nil, ngerrors.ErrNotImplemented
}
