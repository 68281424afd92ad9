// Package clihelp holds the small amount of behavior shared by every
// cmd/fatelf-* binary: the --version convention the reference tools all
// implement identically, and a single place where a returned error becomes a
// diagnostic and a process exit code. Nothing under internal/ or the
// top-level fatelf package may call os.Exit itself; only the cmd/fatelf-*
// main functions do, through Fail below for operation errors and directly for
// usage errors.
package clihelp

import (
	"fmt"
	"os"
)

// Version is the fatelf toolchain version string, printed by every tool's
// --version flag (xfatelf_init's convention in the original tools).
const Version = "2.0.0"

// CheckVersionFlag scans args for a leading "--version" or "-version" and,
// if present, prints the version banner and returns true so the caller can
// exit 0 immediately without parsing the rest of the command line.
func CheckVersionFlag(prog string, args []string) bool {
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-version") {
		fmt.Printf("%s version %s\n", prog, Version)
		return true
	}
	return false
}

// Fail prints a single-line diagnostic to stderr and exits the process with
// status 1. Together with Usagef it is the only code outside the
// cmd/fatelf-* main functions that calls os.Exit; every cmd/fatelf-* main
// funnels its top-level operation error here instead of returning one up
// through library code.
func Fail(prog string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
	os.Exit(1)
}

// Usagef prints a usage diagnostic to stderr and exits with status 1,
// matching the reference tools' "not enough arguments" behavior.
func Usagef(prog, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prog, fmt.Sprintf(format, args...))
	os.Exit(1)
}
