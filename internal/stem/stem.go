// Package stem derives comparable identities from filenames produced by an
// image export pipeline.
//
// Converters append a `_<unix seconds>` suffix to avoid clobbering existing
// files and usually change the extension. Normalize strips that suffix so an
// output can be compared against the base name of its source image.
package stem

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// timestampSuffix matches an underscore-digit group anchored immediately
// before the final extension.
var timestampSuffix = regexp.MustCompile(`_\d+(\.\w+)$`)

// Normalize removes a trailing `_<digits>` group sitting directly before the
// extension and returns the shortened filename with its extension intact.
// Names without such a suffix are returned unchanged.
func Normalize(name string) string {
	return timestampSuffix.ReplaceAllString(name, "$1")
}

// NormalizeAll applies Normalize to every name, preserving order.
func NormalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Normalize(name)
	}
	return out
}

// Base returns the filename without its final extension.
func Base(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Ext returns the lowercased final extension including the leading dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Fold composes name to Unicode NFC. HFS+ and some sync tools hand back
// decomposed (NFD) names, which would otherwise never compare equal to the
// composed spelling of the same file.
func Fold(name string) string {
	return norm.NFC.String(name)
}

// FoldAll applies Fold to every name, preserving order.
func FoldAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Fold(name)
	}
	return out
}
