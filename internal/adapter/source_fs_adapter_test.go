package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.rs"), "fn b() {}\n")
		writeTestFile(t, filepath.Join(root, "a.rs"), "fn a() {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.rs")
		writeTestFile(t, child, "fn child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			root,
			filepath.Join(root, "a.rs"),
			filepath.Join(root, "b.rs"),
			nestedDir,
			child,
		}, visited)
	})

	t.Run("missing root reports an error to the callback", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		missing := filepath.Join(t.TempDir(), "missing")

		var gotErr error
		err := adapter.Walk(m.Path(missing), func(_ string, _ fs.DirEntry, err error) error {
			gotErr = err
			return err
		})

		require.Error(t, err)
		assert.ErrorIs(t, gotErr, os.ErrNotExist)
	})

	t.Run("symlinked directories are not followed", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		target := filepath.Join(root, "target")
		mustMkdir(t, target)
		writeTestFile(t, filepath.Join(target, "x.rs"), "x\n")

		link := filepath.Join(root, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, link), "Walk() did not report the link itself")
		assert.False(t, containsPath(visited, filepath.Join(link, "x.rs")), "Walk() followed a symlink")
	})

	t.Run("symlinked root is walked and reported under the link", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		base := t.TempDir()
		target := filepath.Join(base, "target")
		mustMkdir(t, target)
		writeTestFile(t, filepath.Join(target, "lib.rs"), "fn lib() {}\n")

		link := filepath.Join(base, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		var visited []string
		err := adapter.Walk(m.Path(link), func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{link, filepath.Join(link, "lib.rs")}, visited)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.rs")
	content := "fn main() {\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "a.rs")
	writeTestFile(t, file, "")

	info, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = adapter.FileInfo(m.Path(file))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = adapter.FileInfo(m.Path(filepath.Join(root, "missing")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(m.Path("/tmp/root"), m.Path("/tmp/root/a/x.rs"))
	require.NoError(t, err)
	assert.Equal(t, "a/x.rs", rel.Slash())
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
