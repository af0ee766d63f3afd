package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "countroo.dev/pkg/countroo/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}

		if !containsPath(visited, filepath.Join(root, "main.go")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("follows a symlinked root but not nested links", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		base := t.TempDir()
		realDir := filepath.Join(base, "real")
		mustMkdir(t, realDir)
		writeTestFile(t, filepath.Join(realDir, "lib.rs"), "fn main() {}\n")

		outside := filepath.Join(base, "outside")
		mustMkdir(t, outside)
		writeTestFile(t, filepath.Join(outside, "hidden.rs"), "fn hidden() {}\n")

		if err := os.Symlink(outside, filepath.Join(realDir, "nested")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		link := filepath.Join(base, "link")
		if err := os.Symlink(realDir, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		var visited []string
		err := adapter.Walk(m.Path(link), func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, filepath.Base(path))
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, "lib.rs") {
			t.Fatalf("Walk() did not descend into symlinked root, visited %v", visited)
		}

		if containsPath(visited, "hidden.rs") {
			t.Fatalf("Walk() followed a nested symlink, visited %v", visited)
		}
	})

	t.Run("reports missing root through callback", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		missing := filepath.Join(t.TempDir(), "missing")

		var gotErr error
		_ = adapter.Walk(m.Path(missing), func(_ string, _ fs.DirEntry, err error) error {
			gotErr = err
			return nil
		})

		if gotErr == nil {
			t.Fatalf("Walk() expected callback error for missing root")
		}
	})
}

func TestLocalSourceFSAdapter_OpenAndReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	rc, err := adapter.Open(m.Path(path))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = rc.Close() }()

	opened, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if string(opened) != content {
		t.Fatalf("Open() content = %q, want %q", string(opened), content)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	projectDir := filepath.Join(root, "project")
	mustMkdir(t, projectDir)
	writeTestFile(t, filepath.Join(projectDir, "go.mod"), "module example.com/project\n")

	subDir := filepath.Join(projectDir, "sub", "pkg")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, ok := adapter.FindProjectRoot(m.Path(subDir))
	if !ok {
		t.Fatalf("FindProjectRoot() found nothing")
	}

	if got != m.Path(projectDir) {
		t.Fatalf("FindProjectRoot() = %s, want %s", got, projectDir)
	}

	t.Run("custom marker", func(t *testing.T) {
		writeTestFile(t, filepath.Join(subDir, "Cargo.toml"), "[package]\n")

		got, ok := adapter.FindProjectRoot(m.Path(subDir), "Cargo.toml")
		if !ok || got != m.Path(subDir) {
			t.Fatalf("FindProjectRoot() = %s, %v, want %s", got, ok, subDir)
		}
	})

	t.Run("not found is not an error", func(t *testing.T) {
		got, ok := adapter.FindProjectRoot(m.Path(subDir), "no-such-marker.lock")
		if ok || got != "" {
			t.Fatalf("FindProjectRoot() = %s, %v, want empty and false", got, ok)
		}
	})
}

func TestLocalSourceFSAdapter_WorkingDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	wd, err := adapter.WorkingDir()
	if err != nil {
		t.Fatalf("WorkingDir() error = %v", err)
	}

	if !filepath.IsAbs(string(wd)) {
		t.Fatalf("WorkingDir() = %s, want absolute path", wd)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
