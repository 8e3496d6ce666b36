// Package editor launches the user's text editor on a local file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Find returns the editor command to use.
// $VISUAL wins over $EDITOR; without either the first of nvim, vim, vi and
// nano found in PATH is used.
func Find(getenv func(string) string) (string, error) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if ed := strings.TrimSpace(getenv(key)); ed != "" {
			return ed, nil
		}
	}
	for _, ed := range fallbackEditors {
		if path, err := exec.LookPath(ed); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $VISUAL or $EDITOR")
}

// Command builds the process that edits filePath. The editor string is
// split by whitespace to support values like "code --wait".
func Command(editor, filePath string) (*exec.Cmd, error) {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	args = append(args, filePath)
	return exec.Command(args[0], args[1:]...), nil
}

// Open edits filePath in the foreground with the terminal attached.
func Open(editor, filePath string) error {
	cmd, err := Command(editor, filePath)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
