// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package strparse provides facilities for parsing strings, intended for use
// in tests and debug input.
package strparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parser is a helper used to implement parsing of strings, like the command
// lines of datadriven tree-operation tests.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition, user-specified separators are always separate
// tokens. For example, when passed the separators `=()` the string
// `create(x, kind=leaf)` results in tokens `create`, `(`, `x,`, `kind`, `=`,
// `leaf`, `)`.
//
// All Parser methods throw panics instead of returning errors. The code that
// uses a Parser can recover them and convert them to errors.
type Parser struct {
	original string
	tokens   []string
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in separators into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}

	s := input
	for len(s) > 0 {
		nonWhiteSpacePos := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if nonWhiteSpacePos == -1 {
			break
		}
		s = s[nonWhiteSpacePos:]

		tokEnd := strings.IndexFunc(s, unicode.IsSpace)
		if tokEnd == -1 {
			tokEnd = len(s)
		}
		if sepPos := strings.IndexAny(s, separators); sepPos != -1 && sepPos < tokEnd {
			if sepPos == 0 {
				tokEnd = 1
			} else {
				tokEnd = sepPos
			}
		}
		p.tokens = append(p.tokens, s[:tokEnd])
		s = s[tokEnd:]
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Peek returns the next token, without consuming the token. Returns "" if
// there are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		return ""
	}
	return p.tokens[0]
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if next := p.Next(); next != tok {
			p.Errf("expected %q, got %q", tok, next)
		}
	}
}

// Int parses an integer from the next token.
func (p *Parser) Int() int {
	tok := p.Next()
	v, err := strconv.Atoi(tok)
	if err != nil {
		p.Errf("expected integer, got %q", tok)
	}
	return v
}

// Remaining returns all remaining tokens, consuming them.
func (p *Parser) Remaining() []string {
	res := p.tokens
	p.tokens = nil
	return res
}

// Errf panics with an error containing the original parser input.
func (p *Parser) Errf(format string, args ...interface{}) {
	panic(errors.Newf("error parsing %q: %s", p.original, errors.Newf(format, args...)))
}
