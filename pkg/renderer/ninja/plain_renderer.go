package ninja

import (
	"context"
	"fmt"
	"strings"

	ast "ninjagen/pkg/ast/ninja"
	"ninjagen/pkg/ngerrors"
	"ninjagen/pkg/ninjagen"
	"ninjagen/pkg/renderer"
)

// PlainTextRenderer serializes a ninja AST document to build-file text.
// Rendering is side-effect free: serializing the same document twice yields
// byte-identical output.
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render implements renderer.Renderer. The resulting bundle holds at most one
// package, named build.ninja; an empty document yields no packages. Fanning a
// description with subninja children out to multiple packages is the
// backend's job.
func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.Document, opts ninjagen.RenderOptions) (*ninjagen.Bundle, error) {
	if doc == nil {
		return nil, ngerrors.New(ngerrors.KindInternal, fmt.Errorf("document is nil"))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if err := WriteDocument(&b, doc); err != nil {
		return nil, ngerrors.New(ngerrors.KindRender, err)
	}

	bundle := ninjagen.NewBundle("ninja", "ninja")
	if opts.GenerationTag != "" {
		bundle.Metadata.Custom["generation_tag"] = opts.GenerationTag
	}
	if b.Len() > 0 {
		bundle.Packages = append(bundle.Packages, ninjagen.Package{
			Name:    "build.ninja",
			Content: []byte(b.String()),
		})
	}
	return bundle, nil
}

// WriteDocument streams the document to sink in serialization order: derived
// preamble (version, then builddir), appended nodes in append order, derived
// postamble (default line). It stops at the first write error and returns it.
func WriteDocument(sink renderer.Sink, doc *ast.Document) error {
	for _, node := range doc.Preamble() {
		if err := writeNode(sink, node); err != nil {
			return err
		}
	}
	for _, node := range doc.Nodes() {
		if err := writeNode(sink, node); err != nil {
			return err
		}
	}
	for _, node := range doc.Postamble() {
		if err := writeNode(sink, node); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(sink renderer.Sink, node ast.Node) error {
	switch n := node.(type) {
	case ast.RawLine:
		return writeString(sink, n.Text+"\n")
	case ast.Binding:
		return writeBinding(sink, n.Name, n.Value, n.Indent)
	case ast.Rule:
		return writeRule(sink, n)
	case ast.Edge:
		return writeEdge(sink, n)
	default:
		return fmt.Errorf("unknown node type %T", node)
	}
}

func writeString(sink renderer.Sink, s string) error {
	_, err := sink.WriteString(s)
	return err
}

func writeBinding(sink renderer.Sink, name, value string, indent int) error {
	return writeString(sink, strings.Repeat("  ", indent)+name+" = "+value+"\n")
}

// writeRule emits the rule line, the mandatory command binding, then every
// present option in the fixed declaration order of ast.RuleOptions. Boolean
// options render as `1`; absent or false options produce no line.
func writeRule(sink renderer.Sink, rule ast.Rule) error {
	if err := writeString(sink, "rule "+rule.Name+"\n"); err != nil {
		return err
	}
	if err := writeBinding(sink, "command", rule.Command, 1); err != nil {
		return err
	}
	opts := rule.Options
	options := []struct {
		key   string
		value string
	}{
		{"description", opts.Description},
		{"depfile", opts.Depfile},
		{"deps", opts.Deps},
		{"msvc_deps_prefix", opts.MSVCDepsPrefix},
		{"dyndep", opts.Dyndep},
		{"generator", boolValue(opts.Generator)},
		{"in", opts.In},
		{"in_newline", opts.InNewline},
		{"out", opts.Out},
		{"restat", boolValue(opts.Restat)},
		{"rspfile", opts.Rspfile},
		{"rspfile_content", opts.RspfileContent},
	}
	for _, opt := range options {
		if opt.value == "" {
			continue
		}
		if err := writeBinding(sink, opt.key, opt.value, 1); err != nil {
			return err
		}
	}
	return nil
}

func boolValue(v bool) string {
	if v {
		return "1"
	}
	return ""
}

// writeEdge emits the build line followed by the optional nested bindings:
// dyndep, pool, then the extra variables in insertion order.
func writeEdge(sink renderer.Sink, edge ast.Edge) error {
	var b strings.Builder
	b.WriteString("build")
	if s := ast.FileList(edge.Outputs, ""); s != "" {
		b.WriteString(" ")
		b.WriteString(s)
	}
	b.WriteString(ast.FileList(edge.Options.ImplicitOutputs, "|"))
	b.WriteString(": ")
	b.WriteString(edge.Rule)
	if s := ast.FileList(edge.Inputs, ""); s != "" {
		b.WriteString(" ")
		b.WriteString(s)
	}
	b.WriteString(ast.FileList(edge.Options.Implicit, "|"))
	b.WriteString(ast.FileList(edge.Options.OrderOnly, "||"))
	b.WriteString(ast.FileList(edge.Options.Validations, "|@"))
	b.WriteString("\n")
	if err := writeString(sink, b.String()); err != nil {
		return err
	}

	if edge.Options.Dyndep != "" {
		if err := writeBinding(sink, "dyndep", edge.Options.Dyndep, 1); err != nil {
			return err
		}
	}
	if edge.Options.Pool != "" {
		if err := writeBinding(sink, "pool", edge.Options.Pool, 1); err != nil {
			return err
		}
	}
	for _, v := range edge.Options.Variables {
		if err := writeBinding(sink, v.Name, v.Value, 1); err != nil {
			return err
		}
	}
	return nil
}
