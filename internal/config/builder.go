package config

import (
	"fmt"
	"strings"

	m "countroo.dev/pkg/countroo/internal/model"
)

// Builder assembles a Config step by step.
type Builder struct {
	loader          *Loader
	projectPath     *m.Path
	extensions      []string
	countEmptyLines bool
}

// NewBuilder returns a Builder that keeps project paths exactly as given.
func NewBuilder() *Builder {
	return &Builder{}
}

// ProjectPath sets the traversal root.
func (b *Builder) ProjectPath(path m.Path) *Builder {
	b.projectPath = &path
	return b
}

// Extension appends one extension.
func (b *Builder) Extension(ext string) *Builder {
	b.extensions = append(b.extensions, ext)
	return b
}

// Extensions appends several extensions.
func (b *Builder) Extensions(exts ...string) *Builder {
	b.extensions = append(b.extensions, exts...)
	return b
}

// CountEmptyLines sets the blank-line policy.
func (b *Builder) CountEmptyLines(count bool) *Builder {
	b.countEmptyLines = count
	return b
}

// Build validates and returns the Config.
func (b *Builder) Build() (Config, error) {
	if b.projectPath == nil || strings.TrimSpace(string(*b.projectPath)) == "" {
		return Config{}, fmt.Errorf("%w: project or workspace path is required", m.ErrConfiguration)
	}

	path := *b.projectPath
	if b.loader != nil {
		resolved, err := b.loader.ResolvePath(path)
		if err != nil {
			return Config{}, err
		}

		path = resolved
	}

	cfg := Config{
		ProjectPath:     path,
		Extensions:      append([]string(nil), b.extensions...),
		CountEmptyLines: b.countEmptyLines,
	}

	return cfg, cfg.Validate()
}
