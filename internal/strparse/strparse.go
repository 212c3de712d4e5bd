// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse tokenizes the small textual inputs accepted by the
// generators and the CLI: value lists such as "34, 7 23" and edge lists such
// as "A-B:1 B>C:2.5".
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/errors"
)

// Parser splits a string into tokens. Tokens are separated by whitespace, and
// every rune contained in the separators passed to MakeParser is a token of its
// own. With separators `-:>,` the string `A-B:1, C` yields the tokens `A`, `-`,
// `B`, `:`, `1`, `,`, `C`.
//
// Parser methods panic on bad input; Parse recovers those panics and turns
// them into errors marked base.ErrMalformedInput.
type Parser struct {
	input  string
	tokens []token
	last   token
}

type token struct {
	tok    string
	offset int
}

// parseError is the panic payload used by Errf, so that Parse does not
// swallow unrelated panics.
type parseError struct {
	err error
}

// MakeParser returns a Parser over input.
func MakeParser(separators string, input string) Parser {
	p := Parser{input: input}
	for off := 0; off < len(input); {
		rest := input[off:]
		start := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsSpace(r) })
		if start == -1 {
			break
		}
		off += start
		rest = rest[start:]
		if strings.IndexByte(separators, rest[0]) >= 0 {
			p.tokens = append(p.tokens, token{tok: rest[:1], offset: off})
			off++
			continue
		}
		end := strings.IndexFunc(rest, func(r rune) bool {
			return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
		})
		if end == -1 {
			end = len(rest)
		}
		p.tokens = append(p.tokens, token{tok: rest[:end], offset: off})
		off += end
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the byte offset of the next token in the input.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.input)
	}
	return p.tokens[0].offset
}

// Peek returns the next token without consuming it, or "" at the end.
func (p *Parser) Peek() string {
	if p.Done() {
		p.last = token{offset: len(p.input)}
		return ""
	}
	p.last = p.tokens[0]
	return p.last.tok
}

// Next consumes and returns the next token, or "" at the end.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// TryNext consumes the next token if it equals tok.
func (p *Parser) TryNext(tok string) bool {
	if p.Peek() == tok && tok != "" {
		p.tokens = p.tokens[1:]
		return true
	}
	return false
}

// Expect consumes the next tokens, checking that they match exactly.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Remaining consumes all the remaining tokens and returns them joined by
// spaces.
func (p *Parser) Remaining() string {
	toks := make([]string, len(p.tokens))
	for i := range p.tokens {
		toks[i] = p.tokens[i].tok
	}
	p.tokens = nil
	return strings.Join(toks, " ")
}

// Ident consumes the next token and checks that it is made of letters, digits
// and underscores.
func (p *Parser) Ident() string {
	tok := p.Next()
	if tok == "" {
		p.Errf("expected identifier, got end of input")
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			p.Errf("invalid identifier %q", tok)
		}
	}
	return tok
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	tok := p.Next()
	x, err := strconv.Atoi(tok)
	if err != nil {
		p.Errf("%q is not an integer", tok)
	}
	return x
}

// Float parses the next token as a finite floating point number.
func (p *Parser) Float() float64 {
	tok := p.Next()
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil || x != x || x > maxFloat || x < -maxFloat {
		p.Errf("%q is not a number", tok)
	}
	return x
}

const maxFloat = 1.7976931348623157e308

// Errf panics with an error that includes the input and the position of the
// last token looked at.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseError{err: errors.Newf("error parsing %q at offset %d: %s", p.input, p.last.offset, msg)})
}

// Parse runs fn over a Parser for input and converts a Parser panic into an
// error marked base.ErrMalformedInput.
func Parse(separators, input string, fn func(p *Parser)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = base.MarkMalformedInput(pe.err)
		}
	}()
	p := MakeParser(separators, input)
	fn(&p)
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
	return nil
}

// Ints parses a list of integers separated by commas and/or whitespace.
func Ints(input string) ([]int, error) {
	var res []int
	err := Parse(",", input, func(p *Parser) {
		for !p.Done() {
			if p.TryNext(",") {
				continue
			}
			res = append(res, p.Int())
		}
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
