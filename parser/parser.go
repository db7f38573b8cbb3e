// Package parser parses a restricted stylesheet subset into the tree
// defined by package ast.
//
// The grammar is a sequence of rules, each a bare alphabetic selector
// followed by a brace-delimited block of "name: value;" declarations.
// Scanning and parsing are fused: every production and primitive takes
// an explicit byte position into the immutable input and returns the
// position just past what it consumed. Parsing stops at the first
// failure and the returned *Error carries the full diagnostic.
package parser

import (
	"fmt"

	"github.com/soheil-01/css-parser/ast"
)

// Parse parses a complete stylesheet held in memory. On failure it
// returns a *Error and no sheet; there is no recovery and no partial
// result. The returned sheet's strings are slices of input, so input
// must outlive the sheet.
func Parse(input string) (*ast.Sheet, error) {
	p := &parser{input: input}
	return p.parseSheet()
}

// parser carries the input buffer. All position state is threaded
// explicitly through the methods below.
type parser struct {
	input string
}

// errorAt builds the diagnostic for a failure at the given offset.
func (p *parser) errorAt(kind ErrorKind, offset int, format string, args ...interface{}) *Error {
	pos, src := position(p.input, offset)
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos, Src: src}
}

// skipWhitespace advances pos past consecutive whitespace. It never
// fails and may return len(input).
func (p *parser) skipWhitespace(pos int) int {
	for pos < len(p.input) && isWhitespace(p.input[pos]) {
		pos++
	}
	return pos
}

// expectChar consumes the single character c at pos.
func (p *parser) expectChar(pos int, c byte) (int, error) {
	if pos >= len(p.input) || p.input[pos] != c {
		return pos, p.errorAt(NoSuchSyntax, pos, "expected '%c'", c)
	}
	return pos + 1, nil
}

// parseIdentifier consumes the maximal run of alphabetic characters
// starting at pos. A zero-length run is an error. The returned text
// is a slice of the input, not a copy.
func (p *parser) parseIdentifier(pos int) (string, int, error) {
	end := pos
	for end < len(p.input) && isAlpha(p.input[end]) {
		end++
	}
	if end == pos {
		return "", pos, p.errorAt(InvalidIdentifier, pos, "invalid identifier")
	}
	return p.input[pos:end], end, nil
}

// parseProperty parses one "name: value;" declaration. The name is
// matched against the recognized variants before the value is
// consumed, so an unknown property is reported even when its value
// would not scan as an identifier. The unknown-property diagnostic is
// anchored at the position the declaration attempt began.
func (p *parser) parseProperty(pos int) (ast.Property, int, error) {
	start := pos
	pos = p.skipWhitespace(pos)

	name, pos, err := p.parseIdentifier(pos)
	if err != nil {
		return nil, pos, err
	}

	// The case set below is the source of truth for which property
	// names the grammar accepts.
	switch name {
	case "color":
		value, pos, err := p.parseDeclarationValue(pos)
		if err != nil {
			return nil, pos, err
		}
		return &ast.Color{Value: value}, pos, nil
	case "background":
		value, pos, err := p.parseDeclarationValue(pos)
		if err != nil {
			return nil, pos, err
		}
		return &ast.Background{Value: value}, pos, nil
	}
	return nil, pos, p.errorAt(UnknownProperty, start, "unknown property %q", name)
}

// parseDeclarationValue parses the ": value;" tail of a declaration
// and returns the value text.
func (p *parser) parseDeclarationValue(pos int) (string, int, error) {
	pos = p.skipWhitespace(pos)

	pos, err := p.expectChar(pos, ':')
	if err != nil {
		return "", pos, err
	}
	pos = p.skipWhitespace(pos)

	value, pos, err := p.parseIdentifier(pos)
	if err != nil {
		return "", pos, err
	}
	pos = p.skipWhitespace(pos)

	if pos, err = p.expectChar(pos, ';'); err != nil {
		return "", pos, err
	}
	return value, pos, nil
}

// parseRule parses one "selector { declarations }" rule. The
// declaration loop has no iteration bound; it ends at the closing
// brace or at end of input, where expectChar reports the missing
// brace.
func (p *parser) parseRule(pos int) (*ast.Rule, int, error) {
	pos = p.skipWhitespace(pos)

	selector, pos, err := p.parseIdentifier(pos)
	if err != nil {
		return nil, pos, err
	}
	pos = p.skipWhitespace(pos)

	if pos, err = p.expectChar(pos, '{'); err != nil {
		return nil, pos, err
	}

	r := &ast.Rule{Selector: selector}
	pos = p.skipWhitespace(pos)
	for pos < len(p.input) && p.input[pos] != '}' {
		d, next, err := p.parseProperty(pos)
		if err != nil {
			return nil, next, err
		}
		r.Properties = append(r.Properties, d)
		pos = p.skipWhitespace(next)
	}

	if pos, err = p.expectChar(pos, '}'); err != nil {
		return nil, pos, err
	}
	return r, pos, nil
}

// parseSheet parses the entire input. Empty or whitespace-only input
// yields a sheet with no rules.
func (p *parser) parseSheet() (*ast.Sheet, error) {
	sheet := &ast.Sheet{}
	pos := p.skipWhitespace(0)
	for pos < len(p.input) {
		r, next, err := p.parseRule(pos)
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, r)
		pos = p.skipWhitespace(next)
	}
	return sheet, nil
}

// isWhitespace reports whether c is a whitespace character.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isAlpha reports whether c is an ASCII alphabetic character.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
