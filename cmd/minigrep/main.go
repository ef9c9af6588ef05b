// Command minigrep reports whether the first line of standard input matches
// a pattern.
//
// Usage:
//
//	echo <input_text> | minigrep -E <pattern>
//
// Exit status is 0 when the line matches, 1 when it does not or the
// invocation is malformed, and 2 when the pattern cannot be compiled or the
// input cannot be read.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
