// Copyright The go-stac Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Parse a string representing a tensor index expression formatted using
// S-expressions, such as "(+ (* (A i j) (B i j)) (C i j))".  A list headed by
// an operator symbol ("+", "-", "*", "/", "neg", "sqrt") denotes the
// corresponding arithmetic node; any other list denotes a tensor access whose
// tail gives the index variables; a bare symbol denotes a scalar (order zero)
// tensor access; a number denotes an immediate.
func Parse(input string) (Expr, error) {
	p := &parser{tokenise(input), 0}
	// Parse the expression proper
	expr, err := p.parseExpr()
	//
	if err != nil {
		return nil, err
	}
	// Sanity check nothing is left over
	if tok, ok := p.peek(); ok {
		return nil, errors.Errorf("unexpected token %q after expression", tok)
	}
	// Done
	return expr, nil
}

// parser holds the token stream and cursor for a single parse.
type parser struct {
	tokens []string
	index  int
}

func (p *parser) peek() (string, bool) {
	if p.index < len(p.tokens) {
		return p.tokens[p.index], true
	}
	//
	return "", false
}

func (p *parser) next() (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", errors.New("unexpected end of expression")
	}
	//
	p.index++
	//
	return tok, nil
}

func (p *parser) expect(tok string) error {
	next, err := p.next()
	//
	if err != nil {
		return err
	} else if next != tok {
		return errors.Errorf("expected %q, found %q", tok, next)
	}
	//
	return nil
}

func (p *parser) parseExpr() (Expr, error) {
	tok, err := p.next()
	//
	switch {
	case err != nil:
		return nil, err
	case tok == "(":
		return p.parseList()
	case tok == ")":
		return nil, errors.New("unexpected \")\"")
	}
	// Attempt to parse as a number
	if value, err := strconv.ParseFloat(tok, 64); err == nil {
		return Const(value), nil
	}
	// Not a number, hence a scalar access
	return NewAccess(tok), nil
}

// Translate a parenthesised list into a unary, binary or access expression of
// some kind.
func (p *parser) parseList() (Expr, error) {
	head, err := p.next()
	if err != nil {
		return nil, err
	}
	// Construct expression by head symbol
	switch head {
	case "+":
		return p.parseBinary(ADD)
	case "-":
		return p.parseBinary(SUB)
	case "*":
		return p.parseBinary(MUL)
	case "/":
		return p.parseBinary(DIV)
	case "neg":
		return p.parseUnary(Negation)
	case "sqrt":
		return p.parseUnary(SquareRoot)
	default:
		return p.parseAccess(head)
	}
}

func (p *parser) parseBinary(op BinaryOp) (Expr, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing left operand of \"%s\"", op)
	}
	//
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing right operand of \"%s\"", op)
	}
	//
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	// Done
	return op.New(lhs, rhs), nil
}

func (p *parser) parseUnary(construct func(Expr) Expr) (Expr, error) {
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	// Done
	return construct(arg), nil
}

func (p *parser) parseAccess(tensor string) (Expr, error) {
	var indices []string
	// Accumulate index variables until the closing paren
	for {
		tok, err := p.next()
		//
		switch {
		case err != nil:
			return nil, errors.Wrapf(err, "parsing access of %q", tensor)
		case tok == ")":
			return NewAccess(tensor, indices...), nil
		case tok == "(":
			return nil, errors.Errorf("invalid index variable in access of %q", tensor)
		}
		//
		indices = append(indices, tok)
	}
}

// Split the input into parentheses and symbol tokens.
func tokenise(input string) []string {
	var (
		tokens  []string
		builder strings.Builder
	)
	// Flush the symbol (if any) being accumulated
	flush := func() {
		if builder.Len() != 0 {
			tokens = append(tokens, builder.String())
			builder.Reset()
		}
	}
	//
	for _, r := range input {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r) || r == ',':
			flush()
		default:
			builder.WriteRune(r)
		}
	}
	//
	flush()
	//
	return tokens
}
