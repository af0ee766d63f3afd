// Package model defines the data structures shared by the counting engine.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Extension is a file extension without its leading dot (e.g. "go", "rs").
type Extension string

// ExtensionOf returns the substring after the final "." of the base name.
// Dotfiles without a further dot (".bashrc") and names ending in "." have no
// extension.
func ExtensionOf(path Path) (Extension, bool) {
	base := filepath.Base(string(path))

	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return "", false
	}

	return Extension(base[idx+1:]), true
}

// Normalize returns the lowercase form used for matching.
func (e Extension) Normalize() Extension {
	return Extension(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(string(e)), ".")))
}

// ExtensionSet is a case-insensitive membership set of extensions.
type ExtensionSet map[Extension]struct{}

// NewExtensionSet builds a set from raw extension strings. Blank entries are dropped.
func NewExtensionSet(extensions []string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))

	for _, ext := range extensions {
		normalized := Extension(ext).Normalize()
		if normalized == "" {
			continue
		}

		set[normalized] = struct{}{}
	}

	return set
}

// Contains reports whether ext matches a member of the set, ignoring case.
func (s ExtensionSet) Contains(ext Extension) bool {
	_, ok := s[ext.Normalize()]
	return ok
}
