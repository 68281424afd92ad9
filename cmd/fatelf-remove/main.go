// Command fatelf-remove writes a copy of a FatELF container with one
// binary dropped.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-remove"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	selector := flag.String("target", "", "selector expression identifying the binary to remove")
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 || *selector == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -target=<selector> <container> <output>\n", prog)
		os.Exit(1)
	}

	if err := fatelf.Remove(args[0], args[1], *selector); err != nil {
		clihelp.Fail(prog, err)
	}
}
