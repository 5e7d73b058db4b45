// Command edulens runs the study-planner and textbook computations from a
// shell. Every subcommand prints JSON, so its output can feed the static
// site generator or be inspected by hand.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
