package digest

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"a.c": "int main() { return 0; }\n",
		"b.c": "static int unused;\n",
	}
	paths := make([]string, 0, len(inputs))
	var want strings.Builder
	for _, name := range []string{"a.c", "b.c"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(inputs[name]), 0o644); err != nil {
			t.Fatalf("input %s can't be written %v", path, err)
		}
		paths = append(paths, path)
		fmt.Fprintf(&want, "%x %s\n", sha1.Sum([]byte(inputs[name])), path)
	}
	var b bytes.Buffer
	if err := Write(&b, paths); err != nil {
		t.Fatalf("digests can't be written %v", err)
	}
	if b.String() != want.String() {
		t.Fatalf("expected digests %q but got %q", want.String(), b.String())
	}
}

func TestWriteMissingInput(t *testing.T) {
	var b bytes.Buffer
	err := Write(&b, []string{filepath.Join(t.TempDir(), "nosuch.c")})
	if err == nil {
		t.Fatal("expected missing input to fail")
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "x.c")
	content := "void x(void) {}\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatalf("input %s can't be written %v", input, err)
	}
	output := filepath.Join(dir, "x.out")
	if err := File(output, []string{input}); err != nil {
		t.Fatalf("output %s can't be built %v", output, err)
	}
	b, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output %s can't be read %v", output, err)
	}
	want := fmt.Sprintf("%x %s\n", sha1.Sum([]byte(content)), input)
	if string(b) != want {
		t.Fatalf("expected output %q but got %q", want, string(b))
	}
}
