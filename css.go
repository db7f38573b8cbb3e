package css

import (
	"github.com/soheil-01/css-parser/ast"
	"github.com/soheil-01/css-parser/parser"
)

// Parse parses a complete stylesheet held in memory. It returns the
// parsed sheet, or the first error encountered as a *parser.Error
// whose message is the full diagnostic. There is no partial result on
// failure.
func Parse(input string) (*ast.Sheet, error) {
	return parser.Parse(input)
}
