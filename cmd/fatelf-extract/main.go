// Command fatelf-extract pulls a single binary out of a FatELF container.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-extract"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	selector := flag.String("target", "", "selector expression identifying the binary to extract")
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 || *selector == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -target=<selector> <container> <output>\n", prog)
		os.Exit(1)
	}

	if err := fatelf.Extract(args[0], args[1], *selector); err != nil {
		clihelp.Fail(prog, err)
	}
}
