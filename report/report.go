// Package report serializes invocation events to a log sink so build system
// usage of the simulated compiler can be inspected afterwards.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Event is a single recorded invocation.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Arguments []string  `json:"arguments"`
}

// Reporter writes invocation events to its sink.
type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report records the raw argument vector as an indented JSON event.
func (r *Reporter) Report(arguments []string) error {
	event := Event{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Timestamp: time.Now().UTC(),
		Arguments: arguments,
	}
	b, err := json.MarshalIndent(event, "", "    ")
	if err != nil {
		return fmt.Errorf("event %v can't be serialized, %w", event, err)
	}
	if _, err := fmt.Fprintf(r.out, "%s\n", b); err != nil {
		return fmt.Errorf("event %v can't be written, %w", event, err)
	}
	return nil
}

// FileSink returns a rotating file writer for the named log file.
func FileSink(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    16,
		MaxBackups: 4,
		MaxAge:     30,
	}
}

// LogName derives the log file name from the executable path, the base name
// with its extension swapped for .log.
func LogName(executable string) string {
	base := filepath.Base(executable)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".log"
}
