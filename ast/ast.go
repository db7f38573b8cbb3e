package ast

import "bytes"

// Node represents a node in the stylesheet syntax tree.
type Node interface {
	node()
	String() string
}

func (_ *Sheet) node()      {}
func (_ *Rule) node()       {}
func (_ *Color) node()      {}
func (_ *Background) node() {}
func (_ *Unknown) node()    {}

// Sheet represents a parsed stylesheet: an ordered list of rules.
// It is built once by a successful parse and never mutated afterward.
type Sheet struct {
	Rules []*Rule
}

func (s *Sheet) String() string {
	var buf bytes.Buffer
	for i, r := range s.Rules {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(r.String())
	}
	return buf.String()
}

// Rule represents a selector and its block of declarations.
// Selector is a slice of the parsed input buffer, not a copy, so the
// buffer must outlive the rule. The parser guarantees it is a
// non-empty alphabetic identifier.
type Rule struct {
	Selector   string
	Properties []Property
}

func (r *Rule) String() string {
	var buf bytes.Buffer
	buf.WriteString(r.Selector)
	buf.WriteString("\n")
	for _, d := range r.Properties {
		buf.WriteString(d.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// Property represents a single "name: value;" declaration. The set of
// implementations is closed: Color, Background, and Unknown. Value
// fields are slices of the parsed input buffer.
type Property interface {
	Node
	property()
}

func (_ *Color) property()      {}
func (_ *Background) property() {}
func (_ *Unknown) property()    {}

// Color represents a "color" declaration.
type Color struct {
	Value string
}

func (d *Color) String() string { return "color: " + d.Value }

// Background represents a "background" declaration.
type Background struct {
	Value string
}

func (d *Background) String() string { return "background: " + d.Value }

// Unknown is the placeholder variant for an unrecognized declaration.
// The parser never produces it; an unrecognized name fails the parse
// instead.
type Unknown struct{}

func (d *Unknown) String() string { return "unknown" }
