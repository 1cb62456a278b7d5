// Package render hands diagram files to the PlantUML renderer.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoJar is returned when no PlantUML jar is configured.
var ErrNoJar = errors.New("plantuml jar path not set")

// Error reports a failed renderer run.
type Error struct {
	File   string
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("render %s: %v: %s", e.File, e.Err, e.Output)
	}
	return fmt.Sprintf("render %s: %v", e.File, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PlantUML runs "java -jar plantuml.jar <file>". The image is written next
// to the input file by PlantUML itself.
type PlantUML struct {
	JavaPath string // Empty means "java"
	JarPath  string
}

// Args returns the command line for rendering file.
func (p PlantUML) Args(file string) []string {
	return []string{"-jar", p.JarPath, file}
}

func (p PlantUML) java() string {
	if p.JavaPath != "" {
		return p.JavaPath
	}
	return "java"
}

// Render runs the renderer against file and waits for it to exit.
func (p PlantUML) Render(ctx context.Context, file string) error {
	if strings.TrimSpace(p.JarPath) == "" {
		return &Error{File: file, Err: ErrNoJar}
	}
	if _, err := os.Stat(p.JarPath); err != nil {
		return &Error{File: file, Err: fmt.Errorf("plantuml jar: %w", err)}
	}
	if _, err := os.Stat(file); err != nil {
		return &Error{File: file, Err: err}
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, p.java(), p.Args(file)...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &Error{File: file, Output: strings.TrimSpace(out.String()), Err: err}
	}
	return nil
}
