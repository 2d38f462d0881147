package cmd

import (
	"context"
	"io"

	"github.com/1pkg/cargs"
	"github.com/1pkg/cargs/digest"
	"github.com/1pkg/cargs/report"
)

// Run drives one maker invocation, interprets the compiler style argument
// vector against the provided grammar, writes the input digests to the
// requested output file and reports the raw vector to out.
func Run(ctx context.Context, decls []cargs.Declaration, arguments []string, out io.Writer) error {
	parser := cargs.New()
	if err := parser.Declare(decls...); err != nil {
		return err
	}
	res, err := parser.Parse(arguments[1:])
	if err != nil {
		return err
	}
	var parsed struct {
		Output string   `mapstructure:"output"`
		Input  []string `mapstructure:"input"`
	}
	if err := res.Decode(&parsed); err != nil {
		return err
	}
	if err := digest.File(parsed.Output, parsed.Input); err != nil {
		return err
	}
	return report.New(out).Report(arguments)
}
