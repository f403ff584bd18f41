// Command spheregrid runs A* searches, component and bridge queries over grid maps
// stored as YAML files.
//
//	spheregrid path --map level.yaml --from 0,0 --to 7,3
//	spheregrid components --map level.yaml
//	spheregrid bridge --map level.yaml --src 0 --dst 1
//
// Every flag can also be set through a SPHEREGRID_* environment variable or
// a --config file. Exit status is 1 for usage errors and 2 when no path
// exists.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitOK     = 0
	exitUsage  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoPath):
		fmt.Fprintln(stderr, err)
		return exitNoPath
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
}
