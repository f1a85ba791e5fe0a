package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ParseLiteral parses a rewritten, comment-free literal object expression
// into a cty object value. The grammar is a JSON superset: unquoted
// identifier keys, single- or double-quoted strings, trailing commas, and
// bare dotted expression paths as values (which parse as strings).
func ParseLiteral(src string) (cty.Value, error) {
	p := &parser{src: src, line: 1, col: 1}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return cty.NilVal, err
	}
	p.skipSpace()
	if !p.eof() {
		return cty.NilVal, p.errorf("unexpected trailing content")
	}
	if !v.Type().IsObjectType() {
		return cty.NilVal, &SyntaxError{
			Pos:    hcl.Pos{Line: 1, Column: 1},
			Detail: "literal must be an object expression",
		}
	}
	return v, nil
}

type parser struct {
	src  string
	pos  int
	line int
	col  int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// advance moves past one byte, maintaining line and column accounting.
func (p *parser) advance() {
	if p.src[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.advance()
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, a ...any) error {
	return &SyntaxError{
		Pos:    hcl.Pos{Line: p.line, Column: p.col, Byte: p.pos},
		Detail: fmt.Sprintf(format, a...),
	}
}

func (p *parser) parseValue() (cty.Value, error) {
	p.skipSpace()
	if p.eof() {
		return cty.NilVal, p.errorf("unexpected end of input")
	}

	switch c := p.peek(); {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		s, err := p.parseString()
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case isIdentChar(c):
		return p.parseBareWord()
	default:
		return cty.NilVal, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) parseObject() (cty.Value, error) {
	p.advance() // consume '{'
	attrs := make(map[string]cty.Value)

	for {
		p.skipSpace()
		if p.eof() {
			return cty.NilVal, p.errorf("unterminated object")
		}
		if p.peek() == '}' {
			p.advance()
			return objectVal(attrs), nil
		}

		key, err := p.parseKey()
		if err != nil {
			return cty.NilVal, err
		}

		p.skipSpace()
		if p.eof() || p.peek() != ':' {
			return cty.NilVal, p.errorf("expected ':' after key %q", key)
		}
		p.advance()

		value, err := p.parseValue()
		if err != nil {
			return cty.NilVal, err
		}
		// Last occurrence of a duplicated key wins.
		attrs[key] = value

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
		case '}':
			// closing brace handled at the top of the loop
		default:
			return cty.NilVal, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseKey() (string, error) {
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		return p.parseString()
	case isIdentChar(c):
		start := p.pos
		for !p.eof() && isIdentChar(p.peek()) {
			p.advance()
		}
		return p.src[start:p.pos], nil
	default:
		return "", p.errorf("expected object key")
	}
}

func (p *parser) parseArray() (cty.Value, error) {
	p.advance() // consume '['
	var elems []cty.Value

	for {
		p.skipSpace()
		if p.eof() {
			return cty.NilVal, p.errorf("unterminated array")
		}
		if p.peek() == ']' {
			p.advance()
			return tupleVal(elems), nil
		}

		v, err := p.parseValue()
		if err != nil {
			return cty.NilVal, err
		}
		elems = append(elems, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
		case ']':
			// closing bracket handled at the top of the loop
		default:
			return cty.NilVal, p.errorf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseString() (string, error) {
	quote := p.peek()
	p.advance()
	var out strings.Builder

	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		switch c {
		case quote:
			p.advance()
			return out.String(), nil
		case '\\':
			p.advance()
			if p.eof() {
				return "", p.errorf("unterminated escape sequence")
			}
			esc := p.peek()
			p.advance()
			switch esc {
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case 'r':
				out.WriteByte('\r')
			case 'b':
				out.WriteByte('\b')
			case 'f':
				out.WriteByte('\f')
			case '\\', '/', '"', '\'':
				out.WriteByte(esc)
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				out.WriteRune(r)
			default:
				return "", p.errorf("invalid escape sequence \\%c", esc)
			}
		default:
			out.WriteByte(c)
			p.advance()
		}
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	var code rune
	for i := 0; i < 4; i++ {
		if p.eof() {
			return 0, p.errorf("unterminated unicode escape")
		}
		c := p.peek()
		var digit rune
		switch {
		case c >= '0' && c <= '9':
			digit = rune(c - '0')
		case c >= 'a' && c <= 'f':
			digit = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = rune(c-'A') + 10
		default:
			return 0, p.errorf("invalid unicode escape digit %q", c)
		}
		code = code<<4 | digit
		p.advance()
	}
	if !utf8.ValidRune(code) {
		code = utf8.RuneError
	}
	return code, nil
}

func (p *parser) parseNumber() (cty.Value, error) {
	start := p.pos
	if p.peek() == '-' {
		p.advance()
	}
	for !p.eof() {
		c := p.peek()
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			p.advance()
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	v, err := cty.ParseNumberVal(text)
	if err != nil {
		return cty.NilVal, p.errorf("invalid number %q", text)
	}
	return v, nil
}

// parseBareWord handles true/false/null and bare dotted expression paths
// such as $event.detail, which the rewriter may leave in value position.
// Expression paths parse as their literal text.
func (p *parser) parseBareWord() (cty.Value, error) {
	start := p.pos
	for !p.eof() && (isIdentChar(p.peek()) || p.peek() == '.') {
		p.advance()
	}
	word := p.src[start:p.pos]

	switch word {
	case "true":
		return cty.True, nil
	case "false":
		return cty.False, nil
	case "null", "undefined":
		return cty.NullVal(cty.DynamicPseudoType), nil
	default:
		return cty.StringVal(word), nil
	}
}

// objectVal builds a cty object from attrs, handling the empty case.
func objectVal(attrs map[string]cty.Value) cty.Value {
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

// tupleVal builds a cty tuple from elems, handling the empty case.
func tupleVal(elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(elems)
}
