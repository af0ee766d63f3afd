package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	m "countroo.dev/pkg/countroo/internal/model"
)

// OutputWriter consumes a fully rendered report.
type OutputWriter interface {
	Write(data string) error
}

// StdoutWriter writes to the cobra command's stdout, falling back to os.Stdout.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter bound to cmd. A nil cmd writes to os.Stdout.
func NewStdoutWriter(cmd *cobra.Command) *StdoutWriter {
	if cmd == nil {
		return &StdoutWriter{out: os.Stdout}
	}

	return &StdoutWriter{out: cmd.OutOrStdout()}
}

// Write prints data followed by a newline.
func (w *StdoutWriter) Write(data string) error {
	_, err := fmt.Fprintln(w.out, data)
	return err
}

// FileWriter replaces the contents of a file with each write.
type FileWriter struct {
	path m.Path
}

// NewFileWriter creates a FileWriter targeting path.
func NewFileWriter(path m.Path) *FileWriter {
	return &FileWriter{path: path}
}

// Write stores data at the writer's path, creating parent directories as needed.
func (w *FileWriter) Write(data string) error {
	if err := os.MkdirAll(filepath.Dir(string(w.path)), 0o750); err != nil {
		return fmt.Errorf("%w: create output dir: %w", m.ErrIO, err)
	}

	if err := os.WriteFile(string(w.path), []byte(data), 0o644); err != nil { // #nosec G306 - reports are meant to be shared
		return fmt.Errorf("%w: write %s: %w", m.ErrIO, w.path, err)
	}

	return nil
}

// Path returns the output location.
func (w *FileWriter) Path() m.Path {
	return w.path
}
