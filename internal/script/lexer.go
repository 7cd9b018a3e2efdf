package script

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokBare
	tokQuoted
	tokOp
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			end := strings.IndexByte(l.src[l.pos:], '\n')
			if end < 0 {
				l.advance(len(l.src) - l.pos)
				return
			}
			l.advance(end)
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			l.advance(1)
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	start := token{line: l.line, col: l.col}
	if l.pos >= len(l.src) {
		start.kind = tokEOF
		return start, nil
	}

	c := l.src[l.pos]
	switch c {
	case '{':
		l.advance(1)
		start.kind, start.text = tokOpen, "{"
		return start, nil
	case '}':
		l.advance(1)
		start.kind, start.text = tokClose, "}"
		return start, nil
	case '"':
		return l.quoted(start)
	case '=', '<', '>':
		op := string(c)
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' && c != '=' {
			op += "="
		}
		l.advance(len(op))
		start.kind, start.text = tokOp, op
		return start, nil
	case '!', '?':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			l.advance(2)
			start.kind, start.text = tokOp, string(c)+"="
			return start, nil
		}
	}

	begin := l.pos
	for l.pos < len(l.src) && !l.atBareEnd() {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.advance(size)
	}
	start.kind, start.text = tokBare, l.src[begin:l.pos]
	return start, nil
}

func (l *lexer) atBareEnd() bool {
	c := l.src[l.pos]
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v', '{', '}', '=', '<', '>', '"', '#':
		return true
	case '!', '?':
		return l.pos+1 < len(l.src) && l.src[l.pos+1] == '='
	}
	return false
}

func (l *lexer) quoted(start token) (token, error) {
	l.advance(1)
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '\\':
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '"' || l.src[l.pos+1] == '\\') {
				b.WriteByte(l.src[l.pos+1])
				l.advance(2)
				continue
			}
			b.WriteByte(c)
			l.advance(1)
		case '"':
			l.advance(1)
			start.kind, start.text = tokQuoted, b.String()
			return start, nil
		default:
			b.WriteByte(c)
			l.advance(1)
		}
	}
	return token{}, &ParseError{Line: start.line, Column: start.col, Message: "unterminated quoted string"}
}
