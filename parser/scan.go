package parser

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type kind int

const (
	tEOF kind = iota
	tIdent
	tLambda
	tPi
	tDot
	tColon
	tLParen
	tRParen
	tStar
	tBox
)

type token struct {
	kind kind
	text string
	pos  Pos
}

func (t token) String() string {
	if t.kind == tEOF {
		return "EOF"
	}
	return t.text
}

var punct = map[rune]kind{
	'λ': tLambda,
	'\\': tLambda,
	'π': tPi,
	'.': tDot,
	':': tColon,
	'(': tLParen,
	')': tRParen,
	'*': tStar,
	'□': tBox,
}

func isIdentStart(r rune) bool {
	return (unicode.IsLetter(r) || r == '_') && r != 'λ' && r != 'π'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\''
}

// scan splits src into tokens after normalizing it to NFC, so that a
// precomposed and a decomposed spelling of a name are the same identifier.
func scan(src string) ([]token, error) {
	src = norm.NFC.String(src)
	var tokens []token
	pos := Pos{Line: 1, Col: 1}
	advance := func(r rune, size int) {
		pos.Offset += size
		if r == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	for pos.Offset < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos.Offset:])
		switch {
		case r == utf8.RuneError && size == 1:
			return nil, errorf(pos, "invalid UTF-8 encoding")
		case unicode.IsSpace(r):
			advance(r, size)
		case isIdentStart(r):
			start := pos
			for pos.Offset < len(src) {
				r, size = utf8.DecodeRuneInString(src[pos.Offset:])
				if !isIdentPart(r) {
					break
				}
				advance(r, size)
			}
			tokens = append(tokens, token{kind: tIdent, text: src[start.Offset:pos.Offset], pos: start})
		default:
			k, ok := punct[r]
			if !ok {
				return nil, errorf(pos, "unexpected character %q", r)
			}
			tokens = append(tokens, token{kind: k, text: string(r), pos: pos})
			advance(r, size)
		}
	}
	return append(tokens, token{kind: tEOF, pos: pos}), nil
}
