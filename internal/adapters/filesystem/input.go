// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/aoc/internal/core/puzzle"
)

// InputAdapter implements secondary.InputSource for files and stdin.
// Stdin is drained on first use and replayed to later reads.
type InputAdapter struct {
	inputDir string
	stdin    io.Reader

	stdinOnce sync.Once
	stdinText string
	stdinErr  error
}

// NewInputAdapter creates a new filesystem input adapter.
// If inputDir is empty, defaults to "inputs" in the working directory.
func NewInputAdapter(inputDir string, stdin io.Reader) *InputAdapter {
	if inputDir == "" {
		inputDir = "inputs"
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &InputAdapter{
		inputDir: inputDir,
		stdin:    stdin,
	}
}

// Read returns the input text at path.
// An empty path reads the day's default file; "-" reads stdin.
func (a *InputAdapter) Read(ctx context.Context, day int, path string) (string, string, error) {
	switch path {
	case "":
		return a.ReadFromDir(ctx, a.inputDir, day)
	case "-":
		return a.readStdin(ctx)
	}
	return readFile(ctx, path)
}

// ReadFromDir returns the default input of the day inside dir.
func (a *InputAdapter) ReadFromDir(ctx context.Context, dir string, day int) (string, string, error) {
	if dir == "" {
		dir = a.inputDir
	}
	return readFile(ctx, filepath.Join(dir, puzzle.InputFileName(day)))
}

func (a *InputAdapter) readStdin(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	a.stdinOnce.Do(func() {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			a.stdinErr = fmt.Errorf("failed to read stdin: %w", err)
			return
		}
		a.stdinText = string(data)
	})
	if a.stdinErr != nil {
		return "", "", a.stdinErr
	}
	return a.stdinText, "stdin", nil
}

func readFile(ctx context.Context, path string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", "", fmt.Errorf("input not found at %s", path)
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), path, nil
}
