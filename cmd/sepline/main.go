// Command sepline computes axis-parallel lines separating every pair of
// points of each instance file it is given.
//
//	sepline [flags] FILE...
//	sepline solve [flags] FILE...
//	sepline gen --kind random --n 50 --seed 7 > instance01
//
// Each instance is written to <out-dir>/<prefix>NN, NN being the digits of
// the input file name. Processing stops at the first failing file.
package main

import (
	"io"
	"os"
)

// Exit codes.
const (
	exitOK       = 0
	exitInput    = 1 // bad usage, configuration or instance file
	exitInternal = 2 // broken solver invariant
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return report(stderr, err)
	}

	return exitOK
}
