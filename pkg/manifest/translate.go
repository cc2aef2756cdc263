package manifest

import (
	"sort"

	"github.com/zclconf/go-cty/cty"

	build "ninjagen/domain/build"
	ast "ninjagen/pkg/ast/ninja"
)

// appendRoot merges one decoded manifest body into the build description.
// Later files may override the scalar settings (version, builddir) of earlier
// ones; list-shaped content is appended.
func (l *Loader) appendRoot(cfg *build.Config, root *fileRoot, vars map[string]cty.Value) error {
	if root.RequiredVersion != nil {
		cfg.RequiredVersion = *root.RequiredVersion
	}
	if root.BuildDir != nil {
		cfg.BuildDir = *root.BuildDir
	}
	cfg.Defaults = append(cfg.Defaults, root.Defaults...)

	for _, b := range root.Bindings {
		cfg.Bindings = append(cfg.Bindings, build.Binding{Name: b.Name, Value: b.Value})
	}
	for _, p := range root.Pools {
		cfg.Pools = append(cfg.Pools, build.Pool{Name: p.Name, Depth: p.Depth})
	}
	for _, r := range root.Rules {
		cfg.Rules = append(cfg.Rules, translateRule(r))
	}
	for _, e := range root.Builds {
		cfg.Edges = append(cfg.Edges, translateEdge(e))
	}
	for _, sub := range root.Subninjas {
		child, err := l.decodeConfig(sub.Remain, vars)
		if err != nil {
			return err
		}
		cfg.Subninjas = append(cfg.Subninjas, build.Subninja{Path: sub.Path, Config: child})
	}
	return nil
}

func translateRule(block *ruleBlock) build.Rule {
	return build.Rule{
		Name:    block.Name,
		Command: block.Command,
		Options: ast.RuleOptions{
			Description:    deref(block.Description),
			Depfile:        deref(block.Depfile),
			Deps:           deref(block.Deps),
			MSVCDepsPrefix: deref(block.MSVCDepsPrefix),
			Dyndep:         deref(block.Dyndep),
			Generator:      derefBool(block.Generator),
			In:             deref(block.In),
			InNewline:      deref(block.InNewline),
			Out:            deref(block.Out),
			Restat:         derefBool(block.Restat),
			Rspfile:        deref(block.Rspfile),
			RspfileContent: deref(block.RspfileContent),
		},
	}
}

func translateEdge(block *buildBlock) build.Edge {
	return build.Edge{
		Outputs:         block.Outputs,
		Rule:            block.Rule,
		Inputs:          block.Inputs,
		ImplicitOutputs: block.ImplicitOutputs,
		Implicit:        block.Implicit,
		OrderOnly:       block.OrderOnly,
		Validations:     block.Validations,
		Dyndep:          deref(block.Dyndep),
		Pool:            deref(block.Pool),
		Variables:       sortedVariables(block.Variables),
	}
}

// sortedVariables turns the HCL map attribute into an ordered slice. HCL maps
// carry no declaration order, so names are sorted for deterministic output.
func sortedVariables(m map[string]string) []ast.Variable {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	variables := make([]ast.Variable, 0, len(m))
	for _, name := range names {
		variables = append(variables, ast.Variable{Name: name, Value: m[name]})
	}
	return variables
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
