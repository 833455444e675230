// cmd/playcount runs the listen-count catalog REPL.
//
// Usage:
//
//	playcount                 interactive prompt
//	playcount run script.cql  execute a file of commands
//	playcount version
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
