package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	build "ninjagen/domain/build"
	"ninjagen/pkg/ctxlog"
	"ninjagen/pkg/ngerrors"
)

// Loader resolves HCL manifests into a build description. It is agnostic to
// the origin of the paths: files are used as-is, directories are walked for
// .hcl files.
type Loader struct {
	// Overrides take precedence over `variable` block defaults, including
	// defaults declared inside subninja blocks.
	Overrides map[string]string
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every manifest file reachable from the given paths and merges
// them into a single build description. Variables from all files are
// collected before any body is decoded, so a variable declared in one file is
// visible in every other. Within one body the compile order is bindings,
// pools, rules, builds, subninjas; HCL block interleaving is not preserved.
func (l *Loader) Load(ctx context.Context, paths ...string) (*build.Config, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("no .hcl manifest found in %v", paths))
	}
	logger.Debug("manifest files discovered", "count", len(files))

	parser := hclparse.NewParser()

	type pendingBody struct {
		path   string
		remain hcl.Body
	}
	vars := make(map[string]cty.Value)
	var pending []pendingBody

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("parse manifest %s: %w", file, diags))
		}
		var root variableRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("decode manifest %s: %w", file, diags))
		}
		for _, v := range root.Variables {
			value := ""
			if v.Default != nil {
				value = *v.Default
			}
			vars[v.Name] = cty.StringVal(value)
		}
		pending = append(pending, pendingBody{path: file, remain: root.Remain})
	}
	for name, value := range l.Overrides {
		vars[name] = cty.StringVal(value)
	}

	evalCtx := evalContext(vars)
	cfg := &build.Config{}
	for _, p := range pending {
		var root fileRoot
		if diags := gohcl.DecodeBody(p.remain, evalCtx, &root); diags.HasErrors() {
			return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("decode manifest %s: %w", p.path, diags))
		}
		if err := l.appendRoot(cfg, &root, vars); err != nil {
			return nil, err
		}
	}

	logger.Debug("manifest loaded",
		"bindings", len(cfg.Bindings),
		"rules", len(cfg.Rules),
		"edges", len(cfg.Edges),
		"subninjas", len(cfg.Subninjas))
	return cfg, nil
}

// decodeConfig resolves one nested manifest body (a subninja block) into its
// own build description, with the parent variable scope extended by the
// block's variable declarations.
func (l *Loader) decodeConfig(body hcl.Body, vars map[string]cty.Value) (*build.Config, error) {
	var vroot variableRoot
	if diags := gohcl.DecodeBody(body, nil, &vroot); diags.HasErrors() {
		return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("decode subninja body: %w", diags))
	}

	merged := vars
	if len(vroot.Variables) > 0 {
		merged = make(map[string]cty.Value, len(vars)+len(vroot.Variables))
		for name, value := range vars {
			merged[name] = value
		}
		for _, v := range vroot.Variables {
			value := ""
			if v.Default != nil {
				value = *v.Default
			}
			if override, ok := l.Overrides[v.Name]; ok {
				value = override
			}
			merged[v.Name] = cty.StringVal(value)
		}
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(vroot.Remain, evalContext(merged), &root); diags.HasErrors() {
		return nil, ngerrors.New(ngerrors.KindParse, fmt.Errorf("decode subninja body: %w", diags))
	}
	cfg := &build.Config{}
	if err := l.appendRoot(cfg, &root, merged); err != nil {
		return nil, err
	}
	return cfg, nil
}

// evalContext exposes the collected variables as `var.<name>`.
func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
		},
	}
}

// findManifestFiles flattens the given paths into a deduplicated list of .hcl
// files, walking directories in lexical order.
func (l *Loader) findManifestFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			files = append(files, path)
			seen[path] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("access manifest path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk manifest path %s: %w", path, err)
		}
	}
	return files, nil
}
