// Command fatelf-info prints a human-readable description of a FatELF
// container's contents.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
)

const prog = "fatelf-info"

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

	info, err := fatelf.Info(args[0])
	if err != nil {
		clihelp.Fail(prog, err)
	}
	fmt.Print(fatelf.FormatInfo(args[0], info))
}
