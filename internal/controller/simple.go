package controller

import (
	"context"

	"countroo.dev/pkg/countroo/internal/adapter"
	m "countroo.dev/pkg/countroo/internal/model"
)

// SimpleUI renders a result and hands the text to an OutputWriter.
type SimpleUI struct {
	writer adapter.OutputWriter
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(writer adapter.OutputWriter) *SimpleUI {
	return &SimpleUI{writer: writer}
}

// Display renders aggregate in the selected format (table by default).
func (s *SimpleUI) Display(ctx context.Context, aggregate m.Aggregate, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := DisplayConfig{format: FormatTable}
	for _, option := range options {
		option(&cfg)
	}

	var (
		text string
		err  error
	)

	switch cfg.format {
	case FormatPlain:
		text = FormattedTotal(aggregate.Total)
	case FormatTable:
		text = RenderTable(aggregate, cfg.colored)
	default:
		text, err = RenderStructured(aggregate, cfg.format)
	}

	if err != nil {
		return err
	}

	return s.writer.Write(text)
}
