// Command fatelf-validate checks that a FatELF container's header is
// internally well-formed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-validate"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <container>\n", prog)
		os.Exit(1)
	}

	if err := fatelf.Validate(args[0]); err != nil {
		clihelp.Fail(prog, err)
	}
	fmt.Printf("%s: OK\n", args[0])
}
