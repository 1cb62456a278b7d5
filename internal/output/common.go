// Package output delivers rendered diagram text to a file or stdout.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IsStdout reports whether path selects standard output.
func IsStdout(path string) bool {
	return path == "" || path == "-"
}

// Write delivers content to path. Terminal output gets a trailing newline;
// files receive content byte for byte.
func Write(path, content string) error {
	w, file, err := openOutputWriter(path)
	if err != nil {
		return err
	}
	if file != nil {
		return writeAndClose(file, displayName(path), content)
	}

	if _, err := io.WriteString(w, content+"\n"); err != nil {
		return fmt.Errorf("write %s: %w", displayName(path), err)
	}
	return nil
}

// writeAndClose writes content and closes wc exactly once. A write error
// takes precedence over the close error.
func writeAndClose(wc io.WriteCloser, name, content string) error {
	if _, err := io.WriteString(wc, content); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if IsStdout(outputPath) {
		return os.Stdout, nil, nil
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func displayName(path string) string {
	if IsStdout(path) {
		return "stdout"
	}
	return path
}
