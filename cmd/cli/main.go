package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ninjabackend "ninjagen/backend/ninja"
	"ninjagen/pkg/ctxlog"
	"ninjagen/pkg/manifest"
	"ninjagen/pkg/ninjagen"
	ninjarenderer "ninjagen/pkg/renderer/ninja"
)

func main() {
	var (
		manifestPath = flag.String("manifest", ".", "manifest file or directory containing .hcl manifests")
		outputPath   = flag.String("output", "-", "output path for build.ninja (default: stdout)")
		checkOnly    = flag.Bool("check", false, "load and render the manifest without writing output")
		quiet        = flag.Bool("quiet", false, "suppress progress logging")
		tag          = flag.String("tag", "", "generation tag recorded in bundle metadata")
	)
	overrides := map[string]string{}
	flag.Func("var", "variable override as name=value (repeatable)", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("expected name=value, got %q", s)
		}
		overrides[name] = value
		return nil
	})
	flag.Parse()

	level := slog.LevelDebug
	if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	loader := manifest.NewLoader()
	loader.Overrides = overrides
	cfg, err := loader.Load(ctx, *manifestPath)
	if err != nil {
		exitWithError(fmt.Errorf("load manifest: %w", err))
	}

	backend := ninjabackend.New(ninjarenderer.NewPlainTextRenderer(), ninjarenderer.NewNotImplementedParser())
	bundle, err := backend.ToNative(ctx, cfg, ninjagen.RenderOptions{GenerationTag: *tag})
	if err != nil {
		exitWithError(fmt.Errorf("render: %w", err))
	}

	if *checkOnly {
		logger.Info("manifest renders cleanly", "packages", len(bundle.Packages))
		return
	}

	if *outputPath == "" || *outputPath == "-" {
		if err := writeBundle(os.Stdout, bundle); err != nil {
			exitWithError(fmt.Errorf("write output: %w", err))
		}
		return
	}
	if err := writeBundleToFiles(*outputPath, bundle); err != nil {
		exitWithError(err)
	}
	logger.Info("build files written", "output", *outputPath, "packages", len(bundle.Packages))
}

// writeBundle streams every package to w, separated by a file-name comment
// when the bundle fans out to more than one build file.
func writeBundle(w *os.File, bundle *ninjagen.Bundle) error {
	for i, pkg := range bundle.Packages {
		if len(bundle.Packages) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# file: %s\n", pkg.Name)
		}
		if _, err := w.Write(pkg.Content); err != nil {
			return err
		}
	}
	return nil
}

// writeBundleToFiles writes the main package to mainOut and every subninja
// package relative to mainOut's directory.
func writeBundleToFiles(mainOut string, bundle *ninjagen.Bundle) error {
	baseDir := filepath.Dir(mainOut)
	for i, pkg := range bundle.Packages {
		target := filepath.Join(baseDir, pkg.Name)
		if i == 0 {
			target = mainOut
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directories for %q: %w", target, err)
		}
		if err := os.WriteFile(target, pkg.Content, 0o644); err != nil {
			return fmt.Errorf("write build file %q: %w", target, err)
		}
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
