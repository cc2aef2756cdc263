// Package manifest loads declarative HCL build manifests and resolves them
// into a build description.
package manifest

import "github.com/hashicorp/hcl/v2"

// variableRoot is the first decode pass: it consumes the `variable` blocks
// and leaves everything else in Remain for the second pass, which runs with
// the variables in scope.
type variableRoot struct {
	Variables []*variableBlock `hcl:"variable,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// variableBlock declares a string variable usable as `var.<name>` in the
// rest of the manifest.
type variableBlock struct {
	Name    string  `hcl:"name,label"`
	Default *string `hcl:"default,optional"`
}

// fileRoot decodes every remaining top-level construct of one manifest body.
type fileRoot struct {
	RequiredVersion *string  `hcl:"required_version,optional"`
	BuildDir        *string  `hcl:"builddir,optional"`
	Defaults        []string `hcl:"default,optional"`

	Bindings  []*bindingBlock  `hcl:"binding,block"`
	Pools     []*poolBlock     `hcl:"pool,block"`
	Rules     []*ruleBlock     `hcl:"rule,block"`
	Builds    []*buildBlock    `hcl:"build,block"`
	Subninjas []*subninjaBlock `hcl:"subninja,block"`
}

type bindingBlock struct {
	Name  string `hcl:"name,label"`
	Value string `hcl:"value"`
}

type poolBlock struct {
	Name  string `hcl:"name,label"`
	Depth int    `hcl:"depth"`
}

type ruleBlock struct {
	Name           string  `hcl:"name,label"`
	Command        string  `hcl:"command"`
	Description    *string `hcl:"description,optional"`
	Depfile        *string `hcl:"depfile,optional"`
	Deps           *string `hcl:"deps,optional"`
	MSVCDepsPrefix *string `hcl:"msvc_deps_prefix,optional"`
	Dyndep         *string `hcl:"dyndep,optional"`
	Generator      *bool   `hcl:"generator,optional"`
	In             *string `hcl:"in,optional"`
	InNewline      *string `hcl:"in_newline,optional"`
	Out            *string `hcl:"out,optional"`
	Restat         *bool   `hcl:"restat,optional"`
	Rspfile        *string `hcl:"rspfile,optional"`
	RspfileContent *string `hcl:"rspfile_content,optional"`
}

type buildBlock struct {
	Outputs         []string          `hcl:"outputs"`
	Rule            string            `hcl:"rule"`
	Inputs          []string          `hcl:"inputs,optional"`
	ImplicitOutputs []string          `hcl:"implicit_outputs,optional"`
	Implicit        []string          `hcl:"implicit,optional"`
	OrderOnly       []string          `hcl:"order_only,optional"`
	Validations     []string          `hcl:"validations,optional"`
	Dyndep          *string           `hcl:"dyndep,optional"`
	Pool            *string           `hcl:"pool,optional"`
	Variables       map[string]string `hcl:"variables,optional"`
}

// subninjaBlock nests a complete manifest body that renders to its own build
// file at Path. Variables declared inside the block extend (and shadow) the
// parent scope.
type subninjaBlock struct {
	Path   string   `hcl:"path,label"`
	Remain hcl.Body `hcl:",remain"`
}
