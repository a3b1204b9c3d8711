// Command loxc scans and parses Lox source files and prints their tokens,
// syntax trees or diagnostics.
package main

import "os"

func main() {
	os.Exit(newRootCommand(newGlobalState()).execute(os.Args[1:]))
}
