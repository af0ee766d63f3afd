package domain

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"countroo.dev/pkg/countroo/internal/adapter"
	m "countroo.dev/pkg/countroo/internal/model"
)

// Traverse streams every regular file under root whose extension is in
// extensions. Entries that fail during enumeration are skipped. Symlinks are
// not followed. The channel closes when the walk ends or ctx is cancelled.
func Traverse(ctx context.Context, fsAdapter adapter.SourceFSAdapter, root m.Path, extensions m.ExtensionSet, buffer int) <-chan m.Path {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan m.Path, buffer)

	go func() {
		defer close(ch)

		err := fsAdapter.Walk(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				slog.Debug("Skipping unreadable entry", "path", path, "error", err)

				if entry != nil && entry.IsDir() && path != string(root) {
					return filepath.SkipDir
				}

				return nil
			}

			if !entry.Type().IsRegular() {
				return nil
			}

			ext, ok := m.ExtensionOf(m.Path(path))
			if !ok || !extensions.Contains(ext) {
				return nil
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- m.Path(path):
			}

			return nil
		})
		if err != nil {
			slog.Debug("Traversal stopped", "root", root, "error", err)
		}
	}()

	return ch
}
