// Command fatelf-split extracts every binary in a FatELF container into a
// directory, one file per binary, named uniquely.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-split"

func main() {
	if clihelp.CheckVersionFlag(prog, os.Args[1:]) {
		return
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <container> <output-dir>\n", prog)
		os.Exit(1)
	}

	paths, err := fatelf.Split(args[0], args[1])
	if err != nil {
		clihelp.Fail(prog, err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}
