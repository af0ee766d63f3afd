// Package domain implements the counting engine: per-file line counting,
// filtered traversal, parallel aggregation and the counter facade.
package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"countroo.dev/pkg/countroo/internal/adapter"
	m "countroo.dev/pkg/countroo/internal/model"
)

// CountLines counts the lines of one file. Whitespace-only lines are kept
// only when countEmptyLines is set. Paths that are not regular files count 0.
func CountLines(fsAdapter adapter.SourceFSAdapter, path m.Path, countEmptyLines bool) (int, error) {
	info, err := fsAdapter.FileInfo(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, nil
	}

	file, err := fsAdapter.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %w", m.ErrIO, path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	count, err := countReaderLines(file, countEmptyLines)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", m.ErrIO, path, err)
	}

	return count, nil
}

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

func countReaderLines(r io.Reader, countEmptyLines bool) (int, error) {
	reader := bufio.NewReader(r)
	count := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}

		if line != "" {
			if !utf8.ValidString(line) {
				return 0, errInvalidUTF8
			}

			if countEmptyLines || strings.TrimSpace(line) != "" {
				count++
			}
		}

		if errors.Is(err, io.EOF) {
			return count, nil
		}
	}
}
