// Package build holds the resolved, format-agnostic build description
// produced by the manifest loader. Names and paths are stored unescaped and
// only escaped when lowered to the AST.
package build

import (
	"fmt"

	ast "ninjagen/pkg/ast/ninja"
	"ninjagen/pkg/ngerrors"
)

// Config is one complete build description. A config may reference child
// descriptions through subninja entries; each child renders as its own file.
type Config struct {
	RequiredVersion string
	BuildDir        string
	Bindings        []Binding
	Pools           []Pool
	Rules           []Rule
	Edges           []Edge
	Defaults        []string
	Subninjas       []Subninja
}

// Binding is a top-level variable declaration.
type Binding struct {
	Name  string
	Value string
}

// Pool is a named pool declaration with its depth.
type Pool struct {
	Name  string
	Depth int
}

// Rule is a named command template with its recognized options.
type Rule struct {
	Name    string
	Command string
	Options ast.RuleOptions
}

// Edge maps outputs to inputs through a named rule. The path groups carry
// unescaped paths; Variables are already ordered.
type Edge struct {
	Outputs         []string
	Rule            string
	Inputs          []string
	ImplicitOutputs []string
	Implicit        []string
	OrderOnly       []string
	Validations     []string
	Dyndep          string
	Pool            string
	Variables       []ast.Variable
}

// Subninja is a child description referenced from the parent with a
// `subninja` statement and rendered to its own file at Path.
type Subninja struct {
	Path   string
	Config *Config
}

// ToAST lowers the config to a serializable document. Output, input, and
// default paths are escaped here with ast.Escape; commands and binding values
// pass through untouched since they commonly reference $in and $out on
// purpose. Body order is bindings, pools, rules, edges, then one subninja
// statement per child.
func (c *Config) ToAST() (*ast.Document, error) {
	if c == nil {
		return nil, ngerrors.New(ngerrors.KindValidation, fmt.Errorf("build config is nil"))
	}

	doc := ast.NewDocument()
	doc.RequiredVersion = c.RequiredVersion
	doc.BuildDir = c.BuildDir
	doc.Defaults = escapePaths(c.Defaults)

	for _, b := range c.Bindings {
		doc.Variable(b.Name, b.Value)
	}
	for _, p := range c.Pools {
		doc.Pool(p.Name, p.Depth)
	}
	for _, r := range c.Rules {
		doc.Rule(r.Name, r.Command, r.Options)
	}
	for _, e := range c.Edges {
		doc.Build(escapePaths(e.Outputs), e.Rule, escapePaths(e.Inputs), ast.EdgeOptions{
			ImplicitOutputs: escapePaths(e.ImplicitOutputs),
			Implicit:        escapePaths(e.Implicit),
			OrderOnly:       escapePaths(e.OrderOnly),
			Validations:     escapePaths(e.Validations),
			Dyndep:          e.Dyndep,
			Pool:            e.Pool,
			Variables:       e.Variables,
		})
	}
	for _, sub := range c.Subninjas {
		doc.Subninja(ast.Escape(sub.Path))
	}
	return doc, nil
}

func escapePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	escaped := make([]string, len(paths))
	for i, p := range paths {
		escaped[i] = ast.Escape(p)
	}
	return escaped
}
