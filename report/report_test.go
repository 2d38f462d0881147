package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestReport(t *testing.T) {
	var b bytes.Buffer
	arguments := []string{"maker", "-g", "-o", "prog", "main.c"}
	if err := New(&b).Report(arguments); err != nil {
		t.Fatalf("event can't be reported %v", err)
	}
	var event Event
	if err := json.Unmarshal(b.Bytes(), &event); err != nil {
		t.Fatalf("event can't be deserialized %v", err)
	}
	if !reflect.DeepEqual(event.Arguments, arguments) {
		t.Fatalf("expected arguments %v but got %v", arguments, event.Arguments)
	}
	if _, err := uuid.Parse(event.ID); err != nil {
		t.Fatalf("event id %q is not a uuid %v", event.ID, err)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("event timestamp is zero")
	}
}

func TestLogName(t *testing.T) {
	table := map[string]string{
		"maker":              "maker.log",
		"maker.py":           "maker.log",
		"/usr/bin/maker.exe": "maker.log",
		"./bin/cc":           "cc.log",
	}
	for executable, want := range table {
		if got := LogName(executable); got != want {
			t.Fatalf("expected log name %q for %q but got %q", want, executable, got)
		}
	}
}
