// Package golden compares emitted diagram text with files under testdata/.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "rewrite .golden files with the current output")

// Dir returns the testdata directory next to the calling test file.
func Dir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Assert compares got with <dir>/<name>.golden. The file may end with one
// newline that got lacks. Run tests with -update to rewrite the file.
func Assert(t *testing.T, dir, name, got string) {
	t.Helper()
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("golden name %q must be a plain file stem", name)
	}
	path := filepath.Join(dir, name+".golden")

	if *update {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatalf("update %s: %v", path, err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (run with -update to create it)", path, err)
	}
	want := strings.TrimSuffix(string(data), "\n")
	if got != want {
		line, g, w := firstDiff(got, want)
		t.Fatalf("%s differs at line %d\n got: %q\nwant: %q\n--- got ---\n%s", filepath.Base(path), line, g, w, got)
	}
}

// firstDiff returns the 1-based number of the first differing line and the
// two lines there; a missing line is reported as "".
func firstDiff(got, want string) (int, string, string) {
	g := strings.Split(got, "\n")
	w := strings.Split(want, "\n")
	for i := 0; i < len(g) || i < len(w); i++ {
		var gl, wl string
		if i < len(g) {
			gl = g[i]
		}
		if i < len(w) {
			wl = w[i]
		}
		if gl != wl || i >= len(g) || i >= len(w) {
			return i + 1, gl, wl
		}
	}
	return 0, "", ""
}
