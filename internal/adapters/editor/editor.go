// Package editor hands page declarations to the user's editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbacks are tried in order when neither $EDITOR nor $VISUAL is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Editor runs the configured terminal editor on a file
type Editor struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// New creates an editor reading the process environment
func New() *Editor {
	return &Editor{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns the editor invocation for path. $EDITOR may carry
// arguments, e.g. "code --wait".
func (e *Editor) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	argv, err := e.find()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Edit blocks until the editor exits
func (e *Editor) Edit(ctx context.Context, path string) error {
	cmd, err := e.Command(ctx, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", cmd.Path, err)
	}
	return nil
}

func (e *Editor) find() ([]string, error) {
	for _, name := range []string{"EDITOR", "VISUAL"} {
		if argv := strings.Fields(e.getenv(name)); len(argv) > 0 {
			return argv, nil
		}
	}
	for _, name := range fallbacks {
		if path, err := e.lookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
}
