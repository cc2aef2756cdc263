package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ninjagen/pkg/ngerrors"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "build.hcl", `
required_version = "1.10"
builddir         = "out"
default          = ["out/app"]

binding "cflags" {
  value = "-Wall -O2"
}

pool "link" {
  depth = 2
}

rule "cc" {
  command     = "gcc $cflags -c $in -o $out"
  description = "CC $out"
  depfile     = "$out.d"
  deps        = "gcc"
  generator   = true
}

build {
  outputs   = ["out/main.o"]
  rule      = "cc"
  inputs    = ["src/main.c"]
  implicit  = ["src/main.h"]
  pool      = "link"
  variables = { cflags = "-O3" }
}
`)

	cfg, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, "1.10", cfg.RequiredVersion)
	require.Equal(t, "out", cfg.BuildDir)
	require.Equal(t, []string{"out/app"}, cfg.Defaults)

	require.Len(t, cfg.Bindings, 1)
	require.Equal(t, "cflags", cfg.Bindings[0].Name)

	require.Len(t, cfg.Pools, 1)
	require.Equal(t, 2, cfg.Pools[0].Depth)

	require.Len(t, cfg.Rules, 1)
	rule := cfg.Rules[0]
	require.Equal(t, "cc", rule.Name)
	require.Equal(t, "gcc $cflags -c $in -o $out", rule.Command)
	require.Equal(t, "CC $out", rule.Options.Description)
	require.Equal(t, "gcc", rule.Options.Deps)
	require.True(t, rule.Options.Generator)
	require.False(t, rule.Options.Restat)

	require.Len(t, cfg.Edges, 1)
	edge := cfg.Edges[0]
	require.Equal(t, []string{"out/main.o"}, edge.Outputs)
	require.Equal(t, "cc", edge.Rule)
	require.Equal(t, []string{"src/main.h"}, edge.Implicit)
	require.Equal(t, "link", edge.Pool)
	require.Len(t, edge.Variables, 1)
	require.Equal(t, "cflags", edge.Variables[0].Name)
	require.Equal(t, "-O3", edge.Variables[0].Value)
}

func TestLoadVariableInterpolation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "build.hcl", `
variable "cc" {
  default = "gcc"
}

rule "cc" {
  command = "${var.cc} -c $in -o $out"
}
`)

	cfg, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "gcc -c $in -o $out", cfg.Rules[0].Command)
}

func TestLoadVariableOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "build.hcl", `
variable "cc" {
  default = "gcc"
}

rule "cc" {
  command = "${var.cc} -c $in -o $out"
}
`)

	loader := NewLoader()
	loader.Overrides = map[string]string{"cc": "clang"}
	cfg, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "clang -c $in -o $out", cfg.Rules[0].Command)
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a_rules.hcl", `
variable "cc" {
  default = "cc"
}

rule "cc" {
  command = "${var.cc} -c $in -o $out"
}
`)
	writeManifest(t, dir, "b_edges.hcl", `
build {
  outputs = ["main.o"]
  rule    = "cc"
  inputs  = ["main.c"]
}
`)

	cfg, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	require.Len(t, cfg.Edges, 1)
}

func TestLoadSubninja(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "build.hcl", `
variable "msg" {
  default = "outer"
}

rule "echo" {
  command = "echo ${var.msg} > $out"
}

subninja "sub/build.ninja" {
  variable "msg" {
    default = "inner"
  }

  rule "echo" {
    command = "echo ${var.msg} > $out"
  }

  build {
    outputs = ["msg.txt"]
    rule    = "echo"
  }
}
`)

	cfg, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "echo outer > $out", cfg.Rules[0].Command)

	require.Len(t, cfg.Subninjas, 1)
	sub := cfg.Subninjas[0]
	require.Equal(t, "sub/build.ninja", sub.Path)
	require.Equal(t, "echo inner > $out", sub.Config.Rules[0].Command)
	require.Len(t, sub.Config.Edges, 1)
}

func TestLoadParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "build.hcl", `rule "cc" {`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)

	var kindErr *ngerrors.Error
	require.True(t, errors.As(err, &kindErr))
	require.Equal(t, ngerrors.KindParse, kindErr.Kind)
}

func TestLoadMissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestLoadEmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
}
