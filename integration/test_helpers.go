package integration

import (
	"strings"

	"github.com/google/go-cmp/cmp"

	"ninjagen/pkg/ninjagen"
)

// bundleToText returns the content of the main build file for comparison
// against a golden file.
func bundleToText(bundle *ninjagen.Bundle) string {
	if len(bundle.Packages) > 0 {
		return string(bundle.Packages[0].Content)
	}
	return ""
}

// packageByName finds a package in the bundle by its file name.
func packageByName(bundle *ninjagen.Bundle, name string) (ninjagen.Package, bool) {
	for _, pkg := range bundle.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return ninjagen.Package{}, false
}

// normalizeConfig strips leading/trailing whitespace and unifies line endings
// so golden files survive editor churn.
func normalizeConfig(text string) string {
	text = strings.TrimSpace(text)
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// diffConfigs returns an empty string when the normalized texts match, or a
// readable diff when they do not.
func diffConfigs(got, want string) string {
	return cmp.Diff(normalizeConfig(want), normalizeConfig(got))
}
