// Package config builds the counting configuration from its supported sources:
// the builder, a newline-separated extension list, or a structured file.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"countroo.dev/pkg/countroo/internal/adapter"
	m "countroo.dev/pkg/countroo/internal/model"
)

//go:embed extensions.txt
var defaultExtensionList string

// Config parameterizes one counting run.
type Config struct {
	ProjectPath     m.Path   `json:"project_path" yaml:"project_path" toml:"project_path" xml:"project_path"`
	ConfigPath      m.Path   `json:"config_path,omitempty" yaml:"config_path,omitempty" toml:"config_path,omitempty" xml:"config_path,omitempty"`
	Extensions      []string `json:"extensions" yaml:"extensions" toml:"extensions" xml:"extensions"`
	CountEmptyLines bool     `json:"count_empty_lines" yaml:"count_empty_lines" toml:"count_empty_lines" xml:"count_empty_lines"`
}

// Validate rejects configurations that cannot drive a traversal.
func (c Config) Validate() error {
	if strings.TrimSpace(string(c.ProjectPath)) == "" {
		return fmt.Errorf("%w: project or workspace path is required", m.ErrConfiguration)
	}

	return nil
}

// WithExtensions returns a copy of c using extensions instead of its own.
func (c Config) WithExtensions(extensions []string) Config {
	c.Extensions = append([]string(nil), extensions...)
	return c
}

// ExtensionSet returns the case-insensitive match set for c.Extensions.
func (c Config) ExtensionSet() m.ExtensionSet {
	return m.NewExtensionSet(c.Extensions)
}

// FromExtensionList treats each non-blank line of text as one extension.
func FromExtensionList(text string, countEmptyLines bool, projectPath m.Path) Config {
	return Config{
		ProjectPath:     projectPath,
		Extensions:      parseExtensionLines(text),
		CountEmptyLines: countEmptyLines,
	}
}

// DefaultExtensions returns the extension list bundled with the binary.
func DefaultExtensions() []string {
	return parseExtensionLines(defaultExtensionList)
}

func parseExtensionLines(text string) []string {
	lines := strings.Split(text, "\n")
	extensions := make([]string, 0, len(lines))

	for _, line := range lines {
		ext := strings.TrimSpace(line)
		if ext == "" {
			continue
		}

		extensions = append(extensions, ext)
	}

	return extensions
}

// Loader resolves configuration that depends on the filesystem: relative
// project paths, the project root, and structured config files.
type Loader struct {
	fs      adapter.SourceFSAdapter
	markers []string
}

// NewLoader creates a Loader. Without markers adapter.DefaultProjectMarkers are used.
func NewLoader(fsAdapter adapter.SourceFSAdapter, markers ...string) *Loader {
	if len(markers) == 0 {
		markers = adapter.DefaultProjectMarkers
	}

	return &Loader{fs: fsAdapter, markers: markers}
}

// ProjectRoot walks upward from the working directory looking for a project marker.
func (l *Loader) ProjectRoot() (m.Path, bool) {
	wd, err := l.fs.WorkingDir()
	if err != nil {
		return "", false
	}

	return l.fs.FindProjectRoot(wd, l.markers...)
}

// baseDir is the project root, or the working directory outside a project.
func (l *Loader) baseDir() (m.Path, error) {
	if root, ok := l.ProjectRoot(); ok {
		return root, nil
	}

	wd, err := l.fs.WorkingDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolve working directory: %w", m.ErrIO, err)
	}

	return wd, nil
}

// ResolvePath anchors a relative path at the project root. Absolute paths are cleaned only.
func (l *Loader) ResolvePath(path m.Path) (m.Path, error) {
	raw := strings.TrimSpace(string(path))
	if filepath.IsAbs(raw) {
		return m.Path(filepath.Clean(raw)), nil
	}

	base, err := l.baseDir()
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Join(string(base), raw)), nil
}

// Default counts the bundled extension list under the project root, ignoring blank lines.
func (l *Loader) Default() (Config, error) {
	base, err := l.baseDir()
	if err != nil {
		return Config{}, err
	}

	return FromExtensionList(defaultExtensionList, false, base), nil
}

// Builder returns a Builder whose relative project paths resolve through l.
func (l *Loader) Builder() *Builder {
	return &Builder{loader: l}
}
