package css

import (
	"io"

	"github.com/soheil-01/css-parser/ast"
)

// Printer writes the display form of parsed nodes: each rule as its
// selector on one line followed by one declaration per line, with a
// blank line between rules. Rule and declaration order is the input
// order.
type Printer struct{}

func (p *Printer) Print(w io.Writer, n ast.Node) (err error) {
	switch n := n.(type) {
	case *ast.Sheet:
		if n == nil {
			return nil
		}
		for i, r := range n.Rules {
			if i > 0 {
				_, _ = w.Write([]byte{'\n'})
			}
			err = p.Print(w, r)
		}

	case *ast.Rule:
		if n == nil {
			return nil
		}
		_, _ = io.WriteString(w, n.Selector)
		_, err = w.Write([]byte{'\n'})
		for _, d := range n.Properties {
			_ = p.Print(w, d)
			_, err = w.Write([]byte{'\n'})
		}

	case *ast.Color:
		if n == nil {
			return nil
		}
		_, err = io.WriteString(w, n.String())

	case *ast.Background:
		if n == nil {
			return nil
		}
		_, err = io.WriteString(w, n.String())

	case *ast.Unknown:
		if n == nil {
			return nil
		}
		_, err = io.WriteString(w, n.String())
	}

	return err
}
