// 3code is an interpreter for 3code, a tiny prefix-notation language with six
// numeric variables and functions of up to three arguments. It runs scripts,
// an interactive loop and a language server.
package main

import (
	"os"

	"src.3code.sh/pkg/buildinfo"
	"src.3code.sh/pkg/lsp"
	"src.3code.sh/pkg/pprof"
	"src.3code.sh/pkg/prog"
	"src.3code.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&pprof.Program{}, &buildinfo.Program{}, &lsp.Program{},
			&shell.Program{})))
}
