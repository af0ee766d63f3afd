package controller

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	m "countroo.dev/pkg/countroo/internal/model"
)

// ExtensionLines is one row of a report.
type ExtensionLines struct {
	Extension string `json:"extension" yaml:"extension" toml:"extension" xml:"extension,attr"`
	Lines     int    `json:"lines" yaml:"lines" toml:"lines" xml:"lines,attr"`
}

// Report is the serializable form of an aggregate.
type Report struct {
	XMLName    xml.Name         `json:"-" yaml:"-" toml:"-" xml:"report"`
	Total      int              `json:"total" yaml:"total" toml:"total" xml:"total"`
	Files      int              `json:"files" yaml:"files" toml:"files" xml:"files"`
	Skipped    int              `json:"skipped" yaml:"skipped" toml:"skipped" xml:"skipped"`
	Extensions []ExtensionLines `json:"extensions" yaml:"extensions" toml:"extensions" xml:"extension"`
}

// NewReport converts an aggregate into a Report with rows sorted by line
// count (descending), then by extension.
func NewReport(aggregate m.Aggregate) Report {
	rows := make([]ExtensionLines, 0, len(aggregate.PerExtension))
	for ext, lines := range aggregate.PerExtension {
		rows = append(rows, ExtensionLines{Extension: ext, Lines: lines})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Lines != rows[j].Lines {
			return rows[i].Lines > rows[j].Lines
		}

		return rows[i].Extension < rows[j].Extension
	})

	return Report{
		Total:      aggregate.Total,
		Files:      aggregate.Files,
		Skipped:    aggregate.Skipped,
		Extensions: rows,
	}
}

// FormattedTotal renders total with thousands separators, e.g. "12,345".
func FormattedTotal(total int) string {
	return humanize.Comma(int64(total))
}

// RenderTable renders a "File Extension | Lines of Code" table with a total footer.
func RenderTable(aggregate m.Aggregate, colored bool) string {
	var tableBuffer bytes.Buffer

	report := NewReport(aggregate)

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"File Extension", "Lines of Code"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range report.Extensions {
		label := row.Extension
		if colored {
			label = Colorize(row.Extension)
		}

		table.Append([]string{label, FormattedTotal(row.Lines)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total (%d files)", report.Files),
		FormattedTotal(report.Total),
	})

	table.Render()

	return tableBuffer.String()
}

// RenderStructured serializes the aggregate as JSON, YAML, TOML or XML.
func RenderStructured(aggregate m.Aggregate, format Format) (string, error) {
	report := NewReport(aggregate)

	var (
		out []byte
		err error
	)

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(report, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(report)
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(report)
		out = buf.Bytes()
	case FormatXML:
		out, err = xml.MarshalIndent(report, "", "  ")
		if err == nil {
			out = append([]byte(xml.Header), out...)
		}
	default:
		return "", fmt.Errorf("%w: unsupported structured format %q", m.ErrConfiguration, format)
	}

	if err != nil {
		return "", fmt.Errorf("render %s: %w", format, err)
	}

	return string(out), nil
}
