// Package parser reads lambda terms written as text.
//
// Application is juxtaposition and associates to the left. An abstraction
// λx.b (or \x.b) extends as far right as possible, and λx y.b abbreviates
// λx.λy.b. πx:A.B is a dependent product; * and □ are the two sorts.
package parser

import (
	"github.com/samber/lo"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/term"
)

// Parse parses a single term from src.
func Parse(src string) (term.Term[index.Bare], error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tEOF {
		return nil, errorf(tok.pos, "expected EOF, got %q", tok)
	}
	return t, nil
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(src string) term.Term[index.Bare] {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	tokens []token
}

func (p *parser) peek() token { return p.tokens[0] }

func (p *parser) next() token {
	tok := p.tokens[0]
	if tok.kind != tEOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *parser) expect(k kind, what string) (token, error) {
	tok := p.next()
	if tok.kind != k {
		return tok, errorf(tok.pos, "expected %s, got %q", what, tok)
	}
	return tok, nil
}

// parse reads an application chain. A binder ends the chain since its body
// takes everything to its right.
func (p *parser) parse() (term.Term[index.Bare], error) {
	var fn term.Term[index.Bare]
	for {
		tok := p.peek()
		var t term.Term[index.Bare]
		var err error
		switch tok.kind {
		case tLambda:
			t, err = p.parseLambda()
		case tPi:
			t, err = p.parsePi()
		case tIdent, tLParen, tStar, tBox:
			t, err = p.parseSingle()
		default:
			if fn == nil {
				return nil, errorf(tok.pos, "expected term, got %q", tok)
			}
			return fn, nil
		}
		if err != nil {
			return nil, err
		}
		if fn != nil {
			t = term.App[index.Bare]{Fn: fn, Arg: t}
		}
		if tok.kind == tLambda || tok.kind == tPi {
			return t, nil
		}
		fn = t
	}
}

func (p *parser) parseLambda() (term.Term[index.Bare], error) {
	p.next()
	first, err := p.expect(tIdent, "identifier")
	if err != nil {
		return nil, err
	}
	names := []index.Bare{index.Bare(first.text)}
	for p.peek().kind == tIdent {
		names = append(names, index.Bare(p.next().text))
	}
	if _, err := p.expect(tDot, `"."`); err != nil {
		return nil, err
	}
	body, err := p.parse()
	if err != nil {
		return nil, err
	}
	return lo.ReduceRight(names, func(body term.Term[index.Bare], x index.Bare, _ int) term.Term[index.Bare] {
		return term.Abs[index.Bare]{Bound: x, Body: body}
	}, body), nil
}

func (p *parser) parsePi() (term.Term[index.Bare], error) {
	p.next()
	x, err := p.expect(tIdent, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tColon, `":"`); err != nil {
		return nil, err
	}
	dom, err := p.parse()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tDot, `"."`); err != nil {
		return nil, err
	}
	cod, err := p.parse()
	if err != nil {
		return nil, err
	}
	return term.Pi[index.Bare]{Bound: index.Bare(x.text), Domain: dom, Codomain: cod}, nil
}

func (p *parser) parseParenExpr() (term.Term[index.Bare], error) {
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tRParen, `")"`); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) parseSingle() (term.Term[index.Bare], error) {
	tok := p.next()
	switch tok.kind {
	case tLParen:
		return p.parseParenExpr()
	case tIdent:
		return term.Var[index.Bare]{ID: index.Bare(tok.text)}, nil
	case tStar:
		return term.Kind[index.Bare]{Sort: term.Star}, nil
	case tBox:
		return term.Kind[index.Bare]{Sort: term.Box}, nil
	}
	return nil, errorf(tok.pos, "unexpected token %q", tok)
}
