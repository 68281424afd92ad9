// Command fatelf-replace swaps one binary inside a FatELF container for
// another.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-replace"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	selector := flag.String("target", "", "selector expression identifying the binary to replace")
	flag.Parse()
	args := flag.Args()
	if len(args) != 3 || *selector == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -target=<selector> <container> <output> <new-binary>\n", prog)
		os.Exit(1)
	}

	if err := fatelf.Replace(args[0], args[1], *selector, args[2]); err != nil {
		clihelp.Fail(prog, err)
	}
}
