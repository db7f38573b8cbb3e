package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	css "github.com/soheil-01/css-parser"
	"github.com/soheil-01/css-parser/ast"
	"github.com/soheil-01/css-parser/parser"
)

// Ensure that the package entry point parses and that failures carry
// the typed parser error.
func TestParse(t *testing.T) {
	sheet, err := css.Parse("a { color: red; }")
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "a", sheet.Rules[0].Selector)
	assert.Equal(t, []ast.Property{&ast.Color{Value: "red"}}, sheet.Rules[0].Properties)

	sheet, err = css.Parse("a { margin: 1px; }")
	assert.Nil(t, sheet)

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.UnknownProperty, perr.Kind)
}
