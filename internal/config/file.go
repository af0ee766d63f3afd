package config

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	m "countroo.dev/pkg/countroo/internal/model"
)

// document mirrors Config with pointer fields so missing keys can be told
// apart from zero values.
type document struct {
	ProjectPath     *string  `json:"project_path" yaml:"project_path" toml:"project_path" xml:"project_path"`
	ConfigPath      *string  `json:"config_path" yaml:"config_path" toml:"config_path" xml:"config_path"`
	Extensions      []string `json:"extensions" yaml:"extensions" toml:"extensions" xml:"extensions"`
	CountEmptyLines *bool    `json:"count_empty_lines" yaml:"count_empty_lines" toml:"count_empty_lines" xml:"count_empty_lines"`
}

type decodeFunc func(data []byte, doc *document) error

var decoders = map[string]decodeFunc{
	"toml": func(data []byte, doc *document) error {
		_, err := toml.Decode(string(data), doc)
		return err
	},
	"yaml": func(data []byte, doc *document) error { return yaml.Unmarshal(data, doc) },
	"yml":  func(data []byte, doc *document) error { return yaml.Unmarshal(data, doc) },
	"json": func(data []byte, doc *document) error { return json.Unmarshal(data, doc) },
	"xml":  decodeXML,
}

// decodeXML reads repeated <extensions> elements. A single empty
// <extensions/> element stands for an empty list, which XML cannot
// otherwise tell apart from a missing field.
func decodeXML(data []byte, doc *document) error {
	if err := xml.Unmarshal(data, doc); err != nil {
		return err
	}

	if doc.Extensions == nil {
		return nil
	}

	extensions := make([]string, 0, len(doc.Extensions))
	for _, ext := range doc.Extensions {
		if trimmed := strings.TrimSpace(ext); trimmed != "" {
			extensions = append(extensions, trimmed)
		}
	}

	doc.Extensions = extensions

	return nil
}

// SupportedFileTypes lists the config file extensions FromStructuredFile accepts.
func SupportedFileTypes() []string {
	return []string{"toml", "yaml", "yml", "json", "xml", "txt"}
}

// FromStructuredFile loads a Config from path, choosing the decoder from the
// file's extension. projectPath is only used for plain "txt" lists, which carry
// no project path of their own.
func (l *Loader) FromStructuredFile(path m.Path, projectPath m.Path) (Config, error) {
	ext, ok := m.ExtensionOf(path)
	if !ok {
		return Config{}, fmt.Errorf("%w: invalid config file type: %s", m.ErrConfiguration, path)
	}

	fileType := string(ext.Normalize())

	decode, known := decoders[fileType]
	if !known && fileType != "txt" {
		return Config{}, fmt.Errorf("%w: unsupported config file type %q", m.ErrConfiguration, fileType)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read config %s: %w", m.ErrIO, path, err)
	}

	slog.Debug("Loading config file", "path", path, "type", fileType)

	if fileType == "txt" {
		cfg := FromExtensionList(string(data), false, projectPath)
		cfg.ConfigPath = path

		return cfg, nil
	}

	var doc document
	if err := decode(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: decode %s: %w", m.ErrConfiguration, filepath.Base(string(path)), err)
	}

	return doc.toConfig(path)
}

func (d document) toConfig(source m.Path) (Config, error) {
	var missing []string

	if d.ProjectPath == nil {
		missing = append(missing, "project_path")
	}

	if d.Extensions == nil {
		missing = append(missing, "extensions")
	}

	if d.CountEmptyLines == nil {
		missing = append(missing, "count_empty_lines")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s: missing field(s) %s", m.ErrConfiguration, source, strings.Join(missing, ", "))
	}

	cfg := Config{
		ProjectPath:     m.Path(*d.ProjectPath),
		ConfigPath:      source,
		Extensions:      d.Extensions,
		CountEmptyLines: *d.CountEmptyLines,
	}

	if d.ConfigPath != nil && *d.ConfigPath != "" {
		cfg.ConfigPath = m.Path(*d.ConfigPath)
	}

	return cfg, cfg.Validate()
}
