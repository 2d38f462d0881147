// Package grammar holds argument grammar specifications for the cargs
// engine, the built in cc compiler grammar and a loader for grammar files.
package grammar

import "github.com/1pkg/cargs"

// Compiler returns the declaration list of the emulated cc argument grammar.
// The catch all unknown option is declared last on purpose, options match
// first declared first.
func Compiler() []cargs.Declaration {
	return []cargs.Declaration{
		// flag specified debug switch
		cargs.Opt("debug", `-g`, cargs.Config{Type: cargs.Switch}),
		// flag specified optimization level
		cargs.Opt("optimize", `-O(.*)`, cargs.Config{Type: cargs.Group(1)}),
		// flag specified warnings
		cargs.Opt("warn", `-W(.*)`, cargs.Config{Count: cargs.ZeroOrMore}),
		// library modules
		cargs.Opt("lib", `-l(.+)`, cargs.Config{Count: cargs.ZeroOrMore}),
		// library search paths
		cargs.Opt("libsearch", `-L(.+)`, cargs.Config{Count: cargs.ZeroOrMore}),
		// include search paths
		cargs.Opt("incsearch", `-I(.+)`, cargs.Config{Count: cargs.ZeroOrMore}),
		// flag specified intermediate compile switch
		cargs.Opt("compile", `-c`, cargs.Config{Type: cargs.Switch}),
		// flag specified output argument
		cargs.Opt("output", `-o`, cargs.Config{Type: cargs.NextToken, Default: "a.out"}),
		// all unknown options
		cargs.Opt("unknown", `-(.+)`, cargs.Config{Count: cargs.ZeroOrMore}),
		// positional input arguments
		cargs.Pos("input", cargs.Config{Count: cargs.OneOrMore}),
	}
}
