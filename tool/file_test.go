package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTool(t *testing.T, tl Tool, args map[string]any) (*Outcome, error) {
	t.Helper()
	inv, err := tl.Build(args)
	require.NoError(t, err)
	return inv.Execute(context.Background())
}

func TestReadFileTool(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0o644))

	rf := NewReadFileTool(WithBasePath(dir))

	t.Run("reads file contents", func(t *testing.T) {
		out, err := runTool(t, rf, map[string]any{"path": "hello.txt"})
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out.Content)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := runTool(t, rf, map[string]any{"path": "nope.txt"})
		assert.Error(t, err)
	})

	t.Run("rejects escape from base path", func(t *testing.T) {
		_, err := runTool(t, rf, map[string]any{"path": "../outside.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside base path")
	})

	t.Run("missing argument fails at build", func(t *testing.T) {
		_, err := rf.Build(map[string]any{})
		var missing *ErrMissingArg
		require.ErrorAs(t, err, &missing)
	})

	t.Run("enforces size limit", func(t *testing.T) {
		small := NewReadFileTool(WithBasePath(dir), WithMaxFileSize(3))
		_, err := runTool(t, small, map[string]any{"path": "hello.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maximum size")
	})
}

func TestWriteFileTool(t *testing.T) {
	dir := t.TempDir()
	wf := NewWriteFileTool(WithBasePath(dir))

	t.Run("writes and reports bytes", func(t *testing.T) {
		out, err := runTool(t, wf, map[string]any{"path": "out.txt", "content": "data"})
		require.NoError(t, err)
		assert.Equal(t, "Wrote 4 bytes to out.txt", out.Content)

		data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		_, err := runTool(t, wf, map[string]any{"path": "a/b/c.txt", "content": "x"})
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "a", "b", "c.txt"))
	})

	t.Run("rejects escape from base path", func(t *testing.T) {
		_, err := runTool(t, wf, map[string]any{"path": "../evil.txt", "content": "x"})
		assert.Error(t, err)
	})
}

func TestReplaceTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.go")
	require.NoError(t, os.WriteFile(path, []byte("foo bar foo"), 0o644))

	rt := NewReplaceTool(WithBasePath(dir))

	t.Run("replaces all occurrences and reports count", func(t *testing.T) {
		out, err := runTool(t, rt, map[string]any{
			"path": "code.go", "old_string": "foo", "new_string": "baz",
		})
		require.NoError(t, err)
		assert.Equal(t, "Replaced 2 occurrence(s) in code.go", out.Content)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "baz bar baz", string(data))
	})

	t.Run("errors when old_string is absent", func(t *testing.T) {
		_, err := runTool(t, rt, map[string]any{
			"path": "code.go", "old_string": "absent", "new_string": "x",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("rejects empty old_string at build", func(t *testing.T) {
		_, err := rt.Build(map[string]any{
			"path": "code.go", "old_string": "", "new_string": "x",
		})
		var bad *ErrBadArg
		require.ErrorAs(t, err, &bad)
	})
}

func TestReadManyFilesTool(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0o644))

	rm := NewReadManyFilesTool(WithBasePath(dir))

	t.Run("reads files with headers", func(t *testing.T) {
		out, err := runTool(t, rm, map[string]any{"paths": []any{"a.txt", "b.txt"}})
		require.NoError(t, err)

		sections, ok := out.Content.([]string)
		require.True(t, ok)
		require.Len(t, sections, 2)
		assert.Equal(t, "--- a.txt ---\nalpha", sections[0])
		assert.Equal(t, "--- b.txt ---\nbeta", sections[1])
	})

	t.Run("per-file errors are reported inline", func(t *testing.T) {
		out, err := runTool(t, rm, map[string]any{"paths": []any{"a.txt", "missing.txt"}})
		require.NoError(t, err)

		sections := out.Content.([]string)
		require.Len(t, sections, 2)
		assert.Equal(t, "--- a.txt ---\nalpha", sections[0])
		assert.Contains(t, sections[1], "--- missing.txt ---")
		assert.Contains(t, sections[1], "[error:")
	})

	t.Run("empty list fails at build", func(t *testing.T) {
		_, err := rm.Build(map[string]any{"paths": []any{}})
		var bad *ErrBadArg
		require.ErrorAs(t, err, &bad)
	})
}
