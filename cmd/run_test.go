package cmd

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/1pkg/cargs"
	"github.com/1pkg/cargs/grammar"
	"github.com/1pkg/cargs/report"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"a.c": "int main() { return 0; }\n",
		"b.c": "static int unused;\n",
	}
	paths := make([]string, 0, len(inputs))
	for _, name := range []string{"a.c", "b.c"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(inputs[name]), 0o644); err != nil {
			t.Fatalf("input %s can't be written %v", path, err)
		}
		paths = append(paths, path)
	}
	output := filepath.Join(dir, "prog")
	arguments := append([]string{"maker", "-g", "-Wall", "-o", output}, paths...)
	var sink bytes.Buffer
	if err := Run(context.TODO(), grammar.Compiler(), arguments, &sink); err != nil {
		t.Fatalf("run failed %v", err)
	}
	b, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output %s can't be read %v", output, err)
	}
	want := fmt.Sprintf(
		"%x %s\n%x %s\n",
		sha1.Sum([]byte(inputs["a.c"])), paths[0],
		sha1.Sum([]byte(inputs["b.c"])), paths[1],
	)
	if string(b) != want {
		t.Fatalf("expected output %q but got %q", want, string(b))
	}
	var event report.Event
	if err := json.Unmarshal(sink.Bytes(), &event); err != nil {
		t.Fatalf("event can't be deserialized %v", err)
	}
	if !reflect.DeepEqual(event.Arguments, arguments) {
		t.Fatalf("expected reported arguments %v but got %v", arguments, event.Arguments)
	}
}

func TestRunErrors(t *testing.T) {
	table := map[string]struct {
		arguments []string
		target    error
	}{
		"missing inputs should fail": {
			arguments: []string{"maker"},
			target:    cargs.ErrMissingRequiredPositional,
		},
		"dangling output flag should fail": {
			arguments: []string{"maker", "main.c", "-o"},
			target:    cargs.ErrMissingValue,
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			var sink bytes.Buffer
			err := Run(context.TODO(), grammar.Compiler(), tcase.arguments, &sink)
			if !errors.Is(err, tcase.target) {
				t.Fatalf("expected err %v to wrap %v", err, tcase.target)
			}
		})
	}
}
