package ninja

// Node is a single declaration in a build file. The set of implementations
// is fixed (raw line, binding, rule, edge); rendering dispatches over it
// exhaustively and consumers cannot add variants.
type Node interface {
	node()
}

// RawLine is emitted verbatim followed by a newline. Comments, include and
// subninja statements, and any other passthrough content are raw lines.
type RawLine struct {
	Text string
}

// Binding is a `name = value` line. Indent is the nesting depth: 0 for
// top-level bindings, 1 for bindings nested under a rule or build statement.
// Duplicate names are not rejected; the consuming executor resolves
// precedence between repeated bindings.
type Binding struct {
	Name   string
	Value  string
	Indent int
}

// Rule declares a named command template. Command is mandatory and is always
// rendered as the first nested binding, ahead of any option.
type Rule struct {
	Name    string
	Command string
	Options RuleOptions
}

// RuleOptions carries the recognized optional rule bindings. Fields are
// emitted in declaration order; empty strings are omitted and boolean options
// render as the literal `1` only when true (a false option produces no line).
type RuleOptions struct {
	Description    string
	Depfile        string
	Deps           string // "gcc" or "msvc"
	MSVCDepsPrefix string
	Dyndep         string
	Generator      bool
	In             string
	InNewline      string
	Out            string
	Restat         bool
	Rspfile        string
	RspfileContent string
}

// Edge is a `build` statement mapping output paths to input paths through a
// named rule. The rule name is a reference only; it is not checked against
// declared rules.
type Edge struct {
	Outputs []string
	Rule    string
	Inputs  []string
	Options EdgeOptions
}

// EdgeOptions carries the qualified path groups and nested bindings of a
// build statement. The groups render with their marker tokens (`|` for
// implicit outputs and inputs, `||` for order-only inputs, `|@` for
// validations); Dyndep and Pool render as indented bindings in that order,
// followed by Variables in insertion order.
type EdgeOptions struct {
	ImplicitOutputs []string
	Implicit        []string
	OrderOnly       []string
	Validations     []string
	Dyndep          string
	Pool            string
	Variables       []Variable
}

// Variable is one nested binding on a build statement, kept as a pair so
// insertion order survives.
type Variable struct {
	Name  string
	Value string
}

func (RawLine) node() {}
func (Binding) node() {}
func (Rule) node()    {}
func (Edge) node()    {}
