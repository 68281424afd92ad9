// Command fatelf-verify checks a FatELF container's header against the
// ELF binaries actually embedded in it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatelf/fatelf"
	"github.com/fatelf/fatelf/internal/clihelp"
	"github.com/fatelf/fatelf/internal/core"
)

const prog = "fatelf-verify"

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

	if err := fatelf.Verify(args[0]); err != nil {
		if errors.Is(err, core.ErrNotELF) {
			clihelp.Fail(prog, fmt.Errorf("embedded binary is not an ELF file: %w", err))
		} else {
			clihelp.Fail(prog, err)
		}
	}
	fmt.Printf("%s: OK\n", args[0])
}
