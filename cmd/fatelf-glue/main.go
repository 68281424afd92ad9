// Command fatelf-glue combines two or more ELF binaries into one FatELF
// container.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-glue"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output> <binary1> <binary2> [more binaries...]\n", prog)
		os.Exit(1)
	}

	if err := fatelf.Glue(args[0], args[1:]); err != nil {
		clihelp.Fail(prog, err)
	}
}
