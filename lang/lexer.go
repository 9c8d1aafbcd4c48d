package lang

import (
	"fmt"
	"strconv"
)

// MaxNumberLit is the largest integer literal the lexer accepts. It bounds
// every number in a program, independent of the tighter runtime cap the
// executor applies to repeat counts.
const MaxNumberLit = 1_000_000

// Tokenize converts source text into an ordered token sequence, terminated
// by a single KindEOF token. It fails with *LexError on the first lexical
// fault.
func Tokenize(source string) ([]Token, error) {
	l := &lexer{src: []rune(source), line: 1, col: 1}

	return l.run()
}

// lexer scans runes and tracks line/column positions.
type lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (l *lexer) run() ([]Token, error) {
	var tokens []Token

	for {
		if err := l.skipBlanks(); err != nil {
			return nil, err
		}

		if l.eof() {
			tokens = append(tokens, Token{
				Kind: KindEOF,
				Line: l.line,
				Col:  l.col,
			})

			return tokens, nil
		}

		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}
}

func (l *lexer) next() (Token, error) {
	ch := l.peek()

	switch {
	case ch == '{':
		return l.delimiter(KindLBrace), nil
	case ch == '}':
		return l.delimiter(KindRBrace), nil
	case ch == '(':
		return l.delimiter(KindLParen), nil
	case ch == ')':
		return l.delimiter(KindRParen), nil
	case isDigit(ch):
		return l.number()
	case isIdentStart(ch):
		return l.identifier(), nil
	default:
		return Token{}, &LexError{
			Line: l.line,
			Msg: fmt.Sprintf(
				"illegal character %s; expected a letter, digit, brace, "+
					"parenthesis, whitespace, or comment",
				strconv.QuoteRune(ch),
			),
		}
	}
}

// skipBlanks discards whitespace, newlines, and nested block comments.
// Newlines carry no syntactic meaning.
func (l *lexer) skipBlanks() error {
	for !l.eof() {
		ch := l.peek()

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '*':
			if err := l.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}

	return nil
}

// skipComment consumes a block comment, honoring nesting: each '/*' opens a
// level and each '*/' closes one. Reaching end of input with an open level
// fails at the outermost comment's starting line.
func (l *lexer) skipComment() error {
	startLine := l.line

	l.advance() // '/'
	l.advance() // '*'

	depth := 1

	for depth > 0 {
		if l.eof() {
			return &LexError{Line: startLine, Msg: "unterminated comment"}
		}

		switch {
		case l.peek() == '/' && l.peekAt(1) == '*':
			depth++

			l.advance()
			l.advance()
		case l.peek() == '*' && l.peekAt(1) == '/':
			depth--

			l.advance()
			l.advance()
		default:
			l.advance()
		}
	}

	return nil
}

// number scans a maximal digit run and validates the literal bound.
func (l *lexer) number() (Token, error) {
	line, col := l.line, l.col
	start := l.pos

	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}

	lit := string(l.src[start:l.pos])

	// The digit run is bounded by the input, but its value may still
	// overflow int on conversion, so parse through an explicit width.
	value, err := strconv.ParseInt(lit, 10, 64)
	if err != nil || value > MaxNumberLit {
		return Token{}, &LexError{
			Line: line,
			Msg: fmt.Sprintf(
				"number too large: %s exceeds the maximum of %d",
				lit, MaxNumberLit,
			),
		}
	}

	return Token{
		Kind: KindNumber,
		Lit:  lit,
		Int:  int(value),
		Line: line,
		Col:  col,
	}, nil
}

// identifier scans [A-Za-z_][A-Za-z0-9_]* with an optional single trailing
// '?', then classifies the result against the keyword table.
func (l *lexer) identifier() Token {
	line, col := l.line, l.col
	start := l.pos

	l.advance()

	for !l.eof() && isIdentPart(l.peek()) {
		l.advance()
	}

	// A single trailing '?' forms a sensor name.
	if !l.eof() && l.peek() == '?' {
		l.advance()
	}

	lit := string(l.src[start:l.pos])

	if kind, ok := keywords[lit]; ok {
		return Token{Kind: kind, Lit: lit, Line: line, Col: col}
	}

	return Token{Kind: KindIdent, Lit: lit, Line: line, Col: col}
}

func (l *lexer) delimiter(kind Kind) Token {
	tok := Token{Kind: kind, Lit: string(l.peek()), Line: l.line, Col: l.col}

	l.advance()

	return tok
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

func (l *lexer) advance() {
	if l.eof() {
		return
	}

	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
