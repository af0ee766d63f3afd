package domain

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countroo.dev/pkg/countroo/internal/adapter"
	"countroo.dev/pkg/countroo/internal/adapter/mocks"
	m "countroo.dev/pkg/countroo/internal/model"
)

func TestCountLines(t *testing.T) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	tests := []struct {
		name           string
		content        string
		wantWithBlank  int
		wantSkipBlanks int
	}{
		{"blank and whitespace-only lines", "a\n\n \t \nc", 4, 2},
		{"whitespace around content still counts", "a\n\n b \nc", 4, 3},
		{"trailing newline adds no line", "a\nb\n", 2, 2},
		{"windows line endings", "a\r\n\r\nb\r\n", 3, 2},
		{"empty file", "", 0, 0},
		{"single unterminated line", "package main", 1, 1},
		{"only blank lines", "\n\n\n", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, map[string]string{"file.rs": tt.content})
			path := m.Path(filepath.Join(root, "file.rs"))

			withBlank, err := CountLines(fsAdapter, path, true)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWithBlank, withBlank)

			skipBlank, err := CountLines(fsAdapter, path, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkipBlanks, skipBlank)

			assert.GreaterOrEqual(t, withBlank, skipBlank)
		})
	}
}

func TestCountLines_LongLine(t *testing.T) {
	root := writeTree(t, map[string]string{"big.js": strings.Repeat("x", 200_000) + "\nshort\n"})

	got, err := CountLines(adapter.NewLocalSourceFSAdapter(), m.Path(filepath.Join(root, "big.js")), false)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCountLines_NotARegularFile(t *testing.T) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	root := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		got, err := CountLines(fsAdapter, m.Path(filepath.Join(root, "missing.rs")), true)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("directory", func(t *testing.T) {
		got, err := CountLines(fsAdapter, m.Path(root), true)
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestCountLines_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bin.c")
	require.NoError(t, os.WriteFile(path, []byte("ok\n\xff\xfe\n"), 0o644))

	got, err := CountLines(adapter.NewLocalSourceFSAdapter(), m.Path(path), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrIO))
	assert.Zero(t, got)
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}

	return 0, errors.New("device went away")
}

func (r *failingReader) Close() error { return nil }

func TestCountLines_IOFailures(t *testing.T) {
	root := writeTree(t, map[string]string{"real.go": "package main\n"})
	realPath := m.Path(filepath.Join(root, "real.go"))

	info, err := os.Stat(string(realPath))
	require.NoError(t, err)

	t.Run("open failure", func(t *testing.T) {
		fsMock := mocks.NewMockSourceFSAdapter(t)
		fsMock.On("FileInfo", realPath).Return(info, nil)
		fsMock.On("Open", realPath).Return(nil, os.ErrPermission)

		_, err := CountLines(fsMock, realPath, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, m.ErrIO))
		assert.True(t, errors.Is(err, os.ErrPermission))
	})

	t.Run("read failure mid-file returns no partial count", func(t *testing.T) {
		fsMock := mocks.NewMockSourceFSAdapter(t)
		fsMock.On("FileInfo", realPath).Return(info, nil)
		fsMock.On("Open", realPath).Return(io.ReadCloser(&failingReader{data: "one\ntwo\nthree"}), nil)

		got, err := CountLines(fsMock, realPath, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, m.ErrIO))
		assert.Zero(t, got)
	})
}
