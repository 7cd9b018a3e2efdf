package script

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// MaxNestingDepth bounds block nesting so malformed files cannot exhaust the stack.
const MaxNestingDepth = 256

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// tagged block prefixes accepted in value position, e.g. color = hsv { 0.5 0.2 0.8 }
var blockTags = map[string]bool{
	"rgb":    true,
	"hsv":    true,
	"hsv360": true,
	"hex":    true,
}

// ParseError describes a document that could not be read.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}

// Decode returns the text of a data file. UTF-8 input (with or without a
// byte-order mark) is returned as is; anything else is read as Windows-1252.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(out), nil
}

// Parse reads a whole document.
func Parse(data []byte) (*Object, error) {
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: newLexer(text)}
	return p.parseBody(0, false)
}

// ParseString is Parse for already-decoded text.
func ParseString(text string) (*Object, error) {
	p := &parser{lex: newLexer(text)}
	return p.parseBody(0, false)
}

// ReadFile reads and parses the file at path. Parse errors carry the path.
func ReadFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
			return nil, pe
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}

type parser struct {
	lex    *lexer
	peeked *token
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked != nil {
		return *p.peeked, nil
	}
	t, err := p.lex.next()
	if err != nil {
		return t, err
	}
	p.peeked = &t
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Line: t.line, Column: t.col, Message: fmt.Sprintf(format, args...)}
}

// parseBody reads fields and items until the matching close brace, or EOF
// at the top level. Stray close braces at the top level are ignored; the game
// accepts them and several shipped files contain one.
func (p *parser) parseBody(depth int, closing bool) (*Object, error) {
	if depth > MaxNestingDepth {
		t, _ := p.peek()
		return nil, p.errorf(t, "maximum nesting depth %d exceeded", MaxNestingDepth)
	}
	obj := &Object{}
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case tokEOF:
			if closing {
				return nil, p.errorf(t, "unexpected end of file: missing '}'")
			}
			return obj, nil
		case tokClose:
			if closing {
				return obj, nil
			}
		case tokOpen:
			inner, err := p.parseBody(depth+1, true)
			if err != nil {
				return nil, err
			}
			obj.items = append(obj.items, Block(inner))
		case tokOp:
			return nil, p.errorf(t, "operator %q without a key", t.text)
		case tokBare, tokQuoted:
			after, err := p.peek()
			if err != nil {
				return nil, err
			}
			if after.kind != tokOp {
				obj.items = append(obj.items, scalarFrom(t))
				continue
			}
			p.peeked = nil
			value, err := p.parseValue(depth)
			if err != nil {
				return nil, err
			}
			obj.fields = append(obj.fields, Field{
				Key:   t.text,
				Op:    Operator(after.text),
				Value: value,
				Line:  t.line,
			})
		}
	}
}

func (p *parser) parseValue(depth int) (Value, error) {
	t, err := p.next()
	if err != nil {
		return Value{}, err
	}
	switch t.kind {
	case tokOpen:
		inner, err := p.parseBody(depth+1, true)
		if err != nil {
			return Value{}, err
		}
		return Block(inner), nil
	case tokBare, tokQuoted:
		if t.kind == tokBare && blockTags[strings.ToLower(t.text)] {
			after, err := p.peek()
			if err != nil {
				return Value{}, err
			}
			if after.kind == tokOpen {
				p.peeked = nil
				inner, err := p.parseBody(depth+1, true)
				if err != nil {
					return Value{}, err
				}
				v := Block(inner)
				v.tag = t.text
				return v, nil
			}
		}
		return scalarFrom(t), nil
	default:
		return Value{}, p.errorf(t, "missing value")
	}
}

func scalarFrom(t token) Value {
	return Value{kind: KindScalar, text: t.text, quoted: t.kind == tokQuoted}
}
