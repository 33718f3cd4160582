package tool

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	ai "github.com/anicolao/gemini-cli"
)

// ShellOption configures the shell tool.
type ShellOption func(*shellConfig)

type shellConfig struct {
	workDir string
}

// WithWorkDir sets the working directory for executed commands.
func WithWorkDir(dir string) ShellOption {
	return func(c *shellConfig) {
		c.workDir = dir
	}
}

type shellArgs struct {
	Command string `json:"command" desc:"Shell command to execute" required:"true"`
}

type shellTool struct {
	cfg *shellConfig
}

// NewShellTool creates a tool that runs a command through bash -c and
// reports its combined output and exit disposition.
func NewShellTool(opts ...ShellOption) Tool {
	cfg := &shellConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &shellTool{cfg: cfg}
}

func (t *shellTool) Declaration() Declaration {
	return Declaration{
		Name:        "run_shell_command",
		Description: "Execute a shell command and return its combined stdout and stderr.",
		Parameters:  ai.MustSchemaFor[shellArgs](),
	}
}

func (t *shellTool) Build(args map[string]any) (Invocation, error) {
	command, err := stringArg("run_shell_command", args, "command")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(command) == "" {
		return nil, &ErrBadArg{Tool: "run_shell_command", Arg: "command", Want: "non-empty string"}
	}

	return invocationFunc(func(ctx context.Context) (*Outcome, error) {
		return &Outcome{Shell: t.run(ctx, command)}, nil
	}), nil
}

func (t *shellTool) run(ctx context.Context, command string) *ShellOutcome {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Dir = t.cfg.workDir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()

	out := &ShellOutcome{
		RawOutput: buf.Bytes(),
		Output:    buf.String(),
	}

	if ctx.Err() != nil {
		out.Aborted = true
		return out
	}

	if runErr == nil {
		return out
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			out.ExitCode = code
		} else {
			// A negative exit code means the process was killed by a
			// signal. ProcessState renders it as "signal: <name>".
			out.Signal = strings.TrimPrefix(exitErr.ProcessState.String(), "signal: ")
		}
		return out
	}

	// The command never ran (bad working directory, bash missing, ...).
	out.Err = runErr
	return out
}
