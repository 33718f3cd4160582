package tool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, tl Tool, ctx context.Context, command string) *ShellOutcome {
	t.Helper()
	inv, err := tl.Build(map[string]any{"command": command})
	require.NoError(t, err)
	out, err := inv.Execute(ctx)
	require.NoError(t, err)
	require.NotNil(t, out.Shell)
	return out.Shell
}

func TestShellTool(t *testing.T) {
	sh := NewShellTool()

	t.Run("captures combined output on success", func(t *testing.T) {
		out := runShell(t, sh, context.Background(), "echo out; echo err >&2")
		assert.Equal(t, 0, out.ExitCode)
		assert.NoError(t, out.Err)
		assert.Contains(t, out.Output, "out")
		assert.Contains(t, out.Output, "err")
	})

	t.Run("reports nonzero exit code", func(t *testing.T) {
		out := runShell(t, sh, context.Background(), "echo failing; exit 3")
		assert.Equal(t, 3, out.ExitCode)
		assert.Contains(t, out.Output, "failing")
	})

	t.Run("runs in the configured working directory", func(t *testing.T) {
		dir := t.TempDir()
		scoped := NewShellTool(WithWorkDir(dir))
		out := runShell(t, scoped, context.Background(), "pwd")
		assert.Contains(t, out.Output, dir)
	})

	t.Run("cancellation marks the outcome aborted", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		out := runShell(t, sh, ctx, "echo started; sleep 30")
		assert.True(t, out.Aborted)
		assert.Contains(t, out.Output, "started")
	})

	t.Run("bad working directory reports a launch error", func(t *testing.T) {
		broken := NewShellTool(WithWorkDir("/nonexistent-dir-for-test"))
		out := runShell(t, broken, context.Background(), "true")
		assert.Error(t, out.Err)
	})

	t.Run("rejects blank command at build", func(t *testing.T) {
		_, err := sh.Build(map[string]any{"command": "   "})
		var bad *ErrBadArg
		require.ErrorAs(t, err, &bad)
	})

	t.Run("self-termination by signal is recorded", func(t *testing.T) {
		out := runShell(t, sh, context.Background(), "kill -TERM $$")
		assert.Equal(t, "terminated", out.Signal)
	})
}
