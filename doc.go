/*
Package css implements a strict parser for a small subset of CSS. It
turns raw stylesheet text into a syntax tree, or a diagnostic pointing
at the offending character.

The accepted grammar is deliberately tiny. A stylesheet is zero or
more rules. A rule is a bare alphabetic selector followed by a block
of declarations in braces. A declaration is a recognized property name
("color" or "background"), a colon, an alphabetic value, and a
semicolon:

	a {
	    color: red;
	    background: blue;
	}

There are no comments, at-rules, combinators, multiple selectors, or
nested rules, and the property set is closed. Anything outside the
subset stops the parse at the first offending character.

Unlike a full CSS pipeline there is no separate tokenizer: scanning
and parsing are fused in package parser, which walks the input buffer
with explicit positions. Parsed selectors and values are slices of
the input buffer rather than copies, so the buffer must outlive the
sheet.

Failures are returned as a *parser.Error. Its message is the complete
diagnostic: the 1-based line and 0-based column of the failure, the
source text of that line, and a caret under the offending column.
*/
package css
