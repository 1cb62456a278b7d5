package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsStdout(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "", want: true},
		{path: "-", want: true},
		{path: "graph.puml", want: false},
	}

	for _, tt := range tests {
		if got := IsStdout(tt.path); got != tt.want {
			t.Fatalf("IsStdout(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWrite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "graph.puml")
	content := "@startuml\ndigraph G {\n}\n@enduml"

	if err := Write(path, content); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != content {
		t.Fatalf("file content = %q, want %q", string(data), content)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.puml")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Write(path, "new"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("file content = %q, want %q", string(data), "new")
	}
}

func TestWrite_Stdout(t *testing.T) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	writeErr := Write("-", "hello")
	w.Close()

	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if writeErr != nil {
		t.Fatalf("Write: %v", writeErr)
	}
	if got := string(buf[:n]); got != "hello\n" {
		t.Fatalf("stdout = %q, want %q", got, "hello\n")
	}
}

// countingFile records writes and closes.
type countingFile struct {
	data     []byte
	closes   int
	writeErr error
	closeErr error
}

func (f *countingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.data = append(f.data, p...)
	return len(p), nil
}

func (f *countingFile) Close() error {
	f.closes++
	return f.closeErr
}

func TestWriteAndClose_ClosesOnce(t *testing.T) {
	errDisk := errors.New("disk full")
	errFlush := errors.New("flush failed")

	tests := []struct {
		name    string
		file    *countingFile
		wantErr error
	}{
		{name: "Success", file: &countingFile{}},
		{name: "WriteError", file: &countingFile{writeErr: errDisk}, wantErr: errDisk},
		{name: "CloseError", file: &countingFile{closeErr: errFlush}, wantErr: errFlush},
		{name: "BothFail", file: &countingFile{writeErr: errDisk, closeErr: errFlush}, wantErr: errDisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeAndClose(tt.file, "graph.puml", "@startuml")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("writeAndClose: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("writeAndClose error = %v, want %v", err, tt.wantErr)
			}
			if tt.file.closes != 1 {
				t.Fatalf("Close called %d times, want 1", tt.file.closes)
			}
			if tt.wantErr == nil && string(tt.file.data) != "@startuml" {
				t.Fatalf("written = %q, want %q", tt.file.data, "@startuml")
			}
		})
	}
}
