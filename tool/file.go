package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ai "github.com/anicolao/gemini-cli"
)

// FileOption configures file tools.
type FileOption func(*fileConfig)

type fileConfig struct {
	basePath    string
	maxFileSize int64
}

// WithBasePath restricts file operations to a specific directory.
// All paths will be resolved relative to this base path.
func WithBasePath(path string) FileOption {
	return func(c *fileConfig) {
		c.basePath = path
	}
}

// WithMaxFileSize sets the maximum file size for read operations.
// Default is 10MB.
func WithMaxFileSize(bytes int64) FileOption {
	return func(c *fileConfig) {
		c.maxFileSize = bytes
	}
}

func applyFileOpts(opts []FileOption) *fileConfig {
	cfg := &fileConfig{
		maxFileSize: 10 * 1024 * 1024, // 10MB default
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *fileConfig) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)

	if c.basePath != "" {
		basePath := filepath.Clean(c.basePath)
		fullPath := path
		if !filepath.IsAbs(path) {
			fullPath = filepath.Join(basePath, path)
		}

		// Ensure the resolved path is still within the base path.
		rel, err := filepath.Rel(basePath, fullPath)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("path %q is outside base path %q", path, basePath)
		}
		path = fullPath
	}

	return path, nil
}

func (c *fileConfig) readFile(path string) ([]byte, error) {
	resolved, err := c.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > c.maxFileSize {
		return nil, fmt.Errorf("file %s exceeds maximum size of %d bytes", path, c.maxFileSize)
	}

	return os.ReadFile(resolved)
}

type readFileArgs struct {
	Path string `json:"path" desc:"Path of the file to read" required:"true"`
}

type readFileTool struct {
	cfg *fileConfig
}

// NewReadFileTool creates a tool that reads the contents of a single file.
func NewReadFileTool(opts ...FileOption) Tool {
	return &readFileTool{cfg: applyFileOpts(opts)}
}

func (t *readFileTool) Declaration() Declaration {
	return Declaration{
		Name:        "read_file",
		Description: "Read and return the contents of a text file.",
		Parameters:  ai.MustSchemaFor[readFileArgs](),
	}
}

func (t *readFileTool) Build(args map[string]any) (Invocation, error) {
	path, err := stringArg("read_file", args, "path")
	if err != nil {
		return nil, err
	}

	return invocationFunc(func(ctx context.Context) (*Outcome, error) {
		data, err := t.cfg.readFile(path)
		if err != nil {
			return nil, err
		}
		return &Outcome{Content: string(data)}, nil
	}), nil
}

type writeFileArgs struct {
	Path    string `json:"path" desc:"Path of the file to write" required:"true"`
	Content string `json:"content" desc:"Content to write to the file" required:"true"`
}

type writeFileTool struct {
	cfg *fileConfig
}

// NewWriteFileTool creates a tool that writes content to a file, creating
// parent directories as needed.
func NewWriteFileTool(opts ...FileOption) Tool {
	return &writeFileTool{cfg: applyFileOpts(opts)}
}

func (t *writeFileTool) Declaration() Declaration {
	return Declaration{
		Name:        "write_file",
		Description: "Write content to a file, replacing any existing content.",
		Parameters:  ai.MustSchemaFor[writeFileArgs](),
	}
}

func (t *writeFileTool) Build(args map[string]any) (Invocation, error) {
	path, err := stringArg("write_file", args, "path")
	if err != nil {
		return nil, err
	}
	content, err := stringArg("write_file", args, "content")
	if err != nil {
		return nil, err
	}

	return invocationFunc(func(ctx context.Context) (*Outcome, error) {
		resolved, err := t.cfg.resolvePath(path)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(resolved); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
			return nil, err
		}
		return &Outcome{Content: fmt.Sprintf("Wrote %d bytes to %s", len(content), path)}, nil
	}), nil
}

type replaceArgs struct {
	Path      string `json:"path" desc:"Path of the file to modify" required:"true"`
	OldString string `json:"old_string" desc:"Exact text to replace" required:"true"`
	NewString string `json:"new_string" desc:"Replacement text" required:"true"`
}

type replaceTool struct {
	cfg *fileConfig
}

// NewReplaceTool creates a tool that replaces every occurrence of a string
// within a file.
func NewReplaceTool(opts ...FileOption) Tool {
	return &replaceTool{cfg: applyFileOpts(opts)}
}

func (t *replaceTool) Declaration() Declaration {
	return Declaration{
		Name:        "replace",
		Description: "Replace all occurrences of a string in a file with new text.",
		Parameters:  ai.MustSchemaFor[replaceArgs](),
	}
}

func (t *replaceTool) Build(args map[string]any) (Invocation, error) {
	path, err := stringArg("replace", args, "path")
	if err != nil {
		return nil, err
	}
	oldString, err := stringArg("replace", args, "old_string")
	if err != nil {
		return nil, err
	}
	newString, err := stringArg("replace", args, "new_string")
	if err != nil {
		return nil, err
	}
	if oldString == "" {
		return nil, &ErrBadArg{Tool: "replace", Arg: "old_string", Want: "non-empty string"}
	}

	return invocationFunc(func(ctx context.Context) (*Outcome, error) {
		data, err := t.cfg.readFile(path)
		if err != nil {
			return nil, err
		}

		text := string(data)
		count := strings.Count(text, oldString)
		if count == 0 {
			return nil, fmt.Errorf("old_string not found in %s", path)
		}

		resolved, err := t.cfg.resolvePath(path)
		if err != nil {
			return nil, err
		}
		updated := strings.ReplaceAll(text, oldString, newString)
		if err := os.WriteFile(resolved, []byte(updated), 0o644); err != nil {
			return nil, err
		}

		return &Outcome{Content: fmt.Sprintf("Replaced %d occurrence(s) in %s", count, path)}, nil
	}), nil
}

type readManyFilesArgs struct {
	Paths []string `json:"paths" desc:"Paths of the files to read" required:"true"`
}

type readManyFilesTool struct {
	cfg *fileConfig
}

// NewReadManyFilesTool creates a tool that reads several files in one call.
// Each file's contents is preceded by a header naming it; per-file errors
// are reported inline so one unreadable file does not fail the batch.
func NewReadManyFilesTool(opts ...FileOption) Tool {
	return &readManyFilesTool{cfg: applyFileOpts(opts)}
}

func (t *readManyFilesTool) Declaration() Declaration {
	return Declaration{
		Name:        "read_many_files",
		Description: "Read and return the contents of multiple text files.",
		Parameters:  ai.MustSchemaFor[readManyFilesArgs](),
	}
}

func (t *readManyFilesTool) Build(args map[string]any) (Invocation, error) {
	paths, err := stringSliceArg("read_many_files", args, "paths")
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &ErrBadArg{Tool: "read_many_files", Arg: "paths", Want: "non-empty list of strings"}
	}

	return invocationFunc(func(ctx context.Context) (*Outcome, error) {
		sections := make([]string, 0, len(paths))
		for _, path := range paths {
			data, err := t.cfg.readFile(path)
			if err != nil {
				sections = append(sections, fmt.Sprintf("--- %s ---\n[error: %v]", path, err))
				continue
			}
			sections = append(sections, fmt.Sprintf("--- %s ---\n%s", path, string(data)))
		}
		return &Outcome{Content: sections}, nil
	}), nil
}
