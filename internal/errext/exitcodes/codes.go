// Package exitcodes contains the process exit codes used by loxc.
package exitcodes

// ExitCode is a process exit code.
type ExitCode uint8

// list of exit codes used by loxc
const (
	LexicalErrors ExitCode = 1 // the input had lexical errors
	SyntaxError   ExitCode = 2 // the parser stopped on an unexpected token
	InputError    ExitCode = 3 // a source file could not be read
	InvalidConfig ExitCode = 4
	Usage         ExitCode = 64 // bad flags or arguments
)
