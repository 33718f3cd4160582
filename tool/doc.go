// Package tool provides the tool infrastructure for the agent loop.
//
// This package includes:
//   - Declaration, Tool, and Invocation types describing callable tools
//   - Registry for name-based tool lookup and dispatch
//   - Built-in tools for file operations and shell command execution
//
// # Basic Usage
//
// Build a registry, register tools, and hand it to a scheduler:
//
//	registry := tool.NewRegistry()
//	registry.MustRegister(tool.NewReadFileTool(tool.WithBasePath(dir)))
//	registry.MustRegister(tool.NewShellTool(tool.WithWorkDir(dir)))
//
// Each Tool separates static description (its Declaration, advertised to
// the model) from execution: Build validates arguments and returns an
// Invocation, and Invocation.Execute runs the call under a context. A
// Build failure means bad arguments; an Execute failure means the
// operation itself failed.
//
// # Built-in Tools
//
// File tools (confined to a base path when WithBasePath is set):
//   - read_file: Read file contents
//   - write_file: Write content to a file
//   - replace: Replace occurrences of a string within a file
//   - read_many_files: Read several files in one call
//
// Shell tool:
//   - run_shell_command: Run a command via bash -c, capturing combined
//     output and exit disposition
package tool
