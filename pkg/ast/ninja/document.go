// Package ninja holds the AST for ninja build files: a document of
// declarations appended in order, serialized elsewhere to the build-file
// grammar.
package ninja

import "strconv"

// Document accumulates declarations in append order and carries the optional
// document-wide settings that become the serialized preamble and postamble.
// The zero value is ready to use. Append methods return the document so calls
// can be chained; none of them validate their arguments — the document is a
// syntax-correct emitter, not a semantic checker.
type Document struct {
	RequiredVersion string
	BuildDir        string
	Defaults        []string

	nodes []Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Variable appends a top-level binding.
func (d *Document) Variable(name, value string) *Document {
	d.nodes = append(d.nodes, Binding{Name: name, Value: value})
	return d
}

// Rule appends a rule declaration.
func (d *Document) Rule(name, command string, opts RuleOptions) *Document {
	d.nodes = append(d.nodes, Rule{Name: name, Command: command, Options: opts})
	return d
}

// Build appends a build statement. The rule name is not checked against
// previously appended rules.
func (d *Document) Build(outputs []string, rule string, inputs []string, opts EdgeOptions) *Document {
	d.nodes = append(d.nodes, Edge{Outputs: outputs, Rule: rule, Inputs: inputs, Options: opts})
	return d
}

// Raw appends a verbatim passthrough line.
func (d *Document) Raw(line string) *Document {
	d.nodes = append(d.nodes, RawLine{Text: line})
	return d
}

// Comment appends a `# …` comment line.
func (d *Document) Comment(text string) *Document {
	return d.Raw("# " + text)
}

// Newline appends a blank line.
func (d *Document) Newline() *Document {
	return d.Raw("")
}

// Include appends an `include` statement for the given path.
func (d *Document) Include(path string) *Document {
	return d.Raw("include " + path)
}

// Subninja appends a `subninja` statement for the given path.
func (d *Document) Subninja(path string) *Document {
	return d.Raw("subninja " + path)
}

// Pool appends a pool declaration with its depth binding.
func (d *Document) Pool(name string, depth int) *Document {
	d.Raw("pool " + name)
	d.nodes = append(d.nodes, Binding{Name: "depth", Value: strconv.Itoa(depth), Indent: 1})
	return d
}

// Nodes returns the appended nodes in append order.
func (d *Document) Nodes() []Node {
	return d.nodes
}

// Preamble returns the derived leading nodes: the required-version binding if
// set, then the builddir binding if set.
func (d *Document) Preamble() []Node {
	var nodes []Node
	if d.RequiredVersion != "" {
		nodes = append(nodes, Binding{Name: "ninja_required_version", Value: d.RequiredVersion})
	}
	if d.BuildDir != "" {
		nodes = append(nodes, Binding{Name: "builddir", Value: d.BuildDir})
	}
	return nodes
}

// Postamble returns the derived trailing nodes: the `default` line when
// default targets are configured.
func (d *Document) Postamble() []Node {
	if len(d.Defaults) == 0 {
		return nil
	}
	return []Node{RawLine{Text: "default " + FileList(d.Defaults, "")}}
}
