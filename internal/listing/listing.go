// Package listing reads a single directory level and returns the names of
// entries carrying one of the configured image extensions.
package listing

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"convcheck/internal/stem"
)

// DefaultExtensions is the extension set used when none is configured.
var DefaultExtensions = []string{".heic", ".png", ".jpg", ".jpeg"}

// Lister returns the filtered entry names of one directory.
type Lister interface {
	List(ctx context.Context, dir string) ([]string, error)
}

// ExtensionSet is a case-insensitive set of extensions with leading dots.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from values such as "heic", ".PNG" or "jpg".
// Blank values are ignored; an empty result falls back to DefaultExtensions.
func NewExtensionSet(values []string) ExtensionSet {
	set := make(ExtensionSet, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	if len(set) == 0 {
		for _, ext := range DefaultExtensions {
			set[ext] = struct{}{}
		}
	}
	return set
}

// Accepts reports whether name carries an extension in the set. Dotfiles
// such as ".jpg" have no extension, only a name, and are rejected.
func (s ExtensionSet) Accepts(name string) bool {
	if stem.Base(name) == "" {
		return false
	}
	_, ok := s[stem.Ext(name)]
	return ok
}

// Filter keeps the names accepted by the set, preserving order.
func (s ExtensionSet) Filter(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if s.Accepts(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

// OSLister lists directories on the local filesystem.
//
// Subdirectories are not skipped: a directory named "album.jpg" is listed
// like a file.
type OSLister struct {
	Extensions ExtensionSet
}

// NewOSLister returns an OSLister filtering on the given extensions.
func NewOSLister(extensions []string) OSLister {
	return OSLister{Extensions: NewExtensionSet(extensions)}
}

// List implements Lister.
func (l OSLister) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return l.extensions().Filter(entryNames(entries)), nil
}

func (l OSLister) extensions() ExtensionSet {
	if len(l.Extensions) == 0 {
		return NewExtensionSet(nil)
	}
	return l.Extensions
}

// FSLister lists directories inside an fs.FS, which keeps tests and
// embedded fixtures off the real filesystem.
type FSLister struct {
	FS         fs.FS
	Extensions ExtensionSet
}

// List implements Lister. dir must be a valid fs.FS path.
func (l FSLister) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	exts := l.Extensions
	if len(exts) == 0 {
		exts = NewExtensionSet(nil)
	}
	return exts.Filter(entryNames(entries)), nil
}

func entryNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
