// Command cssparse parses a stylesheet file and prints the parsed
// rules, or the diagnostic for the first syntax error.
package main

import (
	"fmt"
	"os"

	css "github.com/soheil-01/css-parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cssparse FILE")
		os.Exit(2)
	}

	buf, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sheet, err := css.Parse(string(buf))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var p css.Printer
	if err := p.Print(os.Stdout, sheet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
