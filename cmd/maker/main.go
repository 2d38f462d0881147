package main

import (
	"context"
	"log"
	"os"

	"github.com/1pkg/cargs/cmd"
	"github.com/1pkg/cargs/grammar"
	"github.com/1pkg/cargs/report"
)

// Maker stands in for a file building program, e.g. a compiler. It captures
// the arguments the build system passes to it, builds digest artifacts for
// the inputs and reports each invocation to a log file next to the
// executable. The grammar can be swapped via the MAKER_GRAMMAR file.
func main() {
	decls := grammar.Compiler()
	if path := os.Getenv("MAKER_GRAMMAR"); path != "" {
		d, err := grammar.LoadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		decls = d
	}
	sink := report.FileSink(report.LogName(os.Args[0]))
	if err := cmd.Run(context.Background(), decls, os.Args, sink); err != nil {
		log.Fatal(err)
	}
}
