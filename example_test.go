package css_test

import (
	"fmt"
	"os"

	css "github.com/soheil-01/css-parser"
)

// Parse a small stylesheet and print it in display form.
func ExampleParse() {
	sheet, err := css.Parse("a { color: red; background: blue; } b { color: green; }")
	if err != nil {
		fmt.Println(err)
		return
	}

	var p css.Printer
	_ = p.Print(os.Stdout, sheet)
	// Output:
	// a
	// color: red
	// background: blue
	//
	// b
	// color: green
}
