package adapter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "countroo.dev/pkg/countroo/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutWriter_Write(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	writer := NewStdoutWriter(cmd)
	require.NoError(t, writer.Write("1,234"))
	assert.Equal(t, "1,234\n", buf.String())
}

func TestFileWriter_Write(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "reports", "loc.txt")

		writer := NewFileWriter(m.Path(target))
		require.NoError(t, writer.Write("rs 10\n"))
		assert.Equal(t, m.Path(target), writer.Path())

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "rs 10\n", string(got))
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "loc.txt")
		writer := NewFileWriter(m.Path(target))

		require.NoError(t, writer.Write("first"))
		require.NoError(t, writer.Write("second"))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("directory target fails with io kind", func(t *testing.T) {
		dir := t.TempDir()

		err := NewFileWriter(m.Path(dir)).Write("data")
		require.Error(t, err)
		assert.True(t, errors.Is(err, m.ErrIO))
	})
}
