package xbel

import (
	"bufio"
	"errors"
	"io"
)

// Lexer is a pull tokenizer that preserves the exact bytes of every
// token it reads. It performs no namespace processing, no entity
// expansion and no well-formedness checks beyond what is needed to find
// token boundaries; the filter only ever needs token kinds, names and
// raw attribute values.
type Lexer struct {
	r         *bufio.Reader
	raw       []byte
	attrs     []Attr
	attrSpans []attrSpan
	offset    int64
	line      int
	column    int
	tokLine   int
	tokCol    int
}

type attrSpan struct {
	nameStart, nameEnd int
	valStart, valEnd   int
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br, line: 1, column: 1}
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted. The returned token aliases the lexer's internal buffer and
// is only valid until the following call.
func (l *Lexer) Next() (Token, error) {
	l.raw = l.raw[:0]
	l.attrs = l.attrs[:0]
	l.attrSpans = l.attrSpans[:0]

	p, err := l.r.Peek(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	l.tokLine, l.tokCol = l.line, l.column

	if p[0] != '<' {
		return l.lexCharData()
	}
	if _, err := l.readByte(); err != nil {
		return Token{}, err
	}
	b, err := l.readByte()
	if err != nil {
		return Token{}, err
	}
	switch b {
	case '?':
		return l.lexProcInst()
	case '!':
		return l.lexBang()
	case '/':
		return l.lexEndElement()
	default:
		return l.lexStartElement(b)
	}
}

func (l *Lexer) lexCharData() (Token, error) {
	for {
		p, err := l.r.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if p[0] == '<' {
			break
		}
		if _, err := l.readByte(); err != nil {
			return Token{}, err
		}
	}
	return l.token(Token{Kind: KindCharData, Text: l.raw}), nil
}

func (l *Lexer) lexProcInst() (Token, error) {
	nameStart := len(l.raw)
	if err := l.readName(); err != nil {
		return Token{}, err
	}
	name := l.raw[nameStart:]
	kind := KindProcInst
	if string(name) == "xml" {
		kind = KindXMLDecl
	}
	var prev byte
	for {
		b, err := l.readByte()
		if err != nil {
			return Token{}, err
		}
		if prev == '?' && b == '>' {
			break
		}
		prev = b
	}
	return l.token(Token{Kind: kind}), nil
}

func (l *Lexer) lexBang() (Token, error) {
	p, err := l.r.Peek(2)
	if err == nil && p[0] == '-' && p[1] == '-' {
		return l.lexComment()
	}
	p, err = l.r.Peek(7)
	if err == nil && string(p) == "[CDATA[" {
		return l.lexCDATA()
	}
	return l.lexDirective()
}

func (l *Lexer) lexComment() (Token, error) {
	for range 2 {
		if _, err := l.readByte(); err != nil {
			return Token{}, err
		}
	}
	var p1, p2 byte
	for {
		b, err := l.readByte()
		if err != nil {
			return Token{}, err
		}
		if p1 == '-' && p2 == '-' {
			if b != '>' {
				return Token{}, l.errorf(errInvalidComment)
			}
			break
		}
		p1, p2 = p2, b
	}
	return l.token(Token{Kind: KindComment}), nil
}

func (l *Lexer) lexCDATA() (Token, error) {
	for range 7 {
		if _, err := l.readByte(); err != nil {
			return Token{}, err
		}
	}
	var p1, p2 byte
	for {
		b, err := l.readByte()
		if err != nil {
			return Token{}, err
		}
		if p1 == ']' && p2 == ']' && b == '>' {
			break
		}
		p1, p2 = p2, b
	}
	return l.token(Token{Kind: KindCDATA}), nil
}

func (l *Lexer) lexDirective() (Token, error) {
	// DOCTYPE internal subsets nest in square brackets.
	depth := 0
	for {
		b, err := l.readByte()
		if err != nil {
			return Token{}, err
		}
		switch b {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return l.token(Token{Kind: KindDirective}), nil
			}
		}
	}
}

func (l *Lexer) lexEndElement() (Token, error) {
	nameStart := len(l.raw)
	if err := l.readName(); err != nil {
		return Token{}, err
	}
	nameEnd := len(l.raw)
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}
	b, err := l.readByte()
	if err != nil {
		return Token{}, err
	}
	if b != '>' {
		return Token{}, l.errorf(errInvalidToken)
	}
	return l.token(Token{Kind: KindEndElement, Name: l.raw[nameStart:nameEnd]}), nil
}

func (l *Lexer) lexStartElement(first byte) (Token, error) {
	if !isNameStartByte(first) {
		return Token{}, l.errorf(errInvalidName)
	}
	nameStart := len(l.raw) - 1
	if err := l.readNameRest(); err != nil {
		return Token{}, err
	}
	nameEnd := len(l.raw)

	kind := KindNone
	for kind == KindNone {
		if err := l.skipSpace(); err != nil {
			return Token{}, err
		}
		p, err := l.r.Peek(1)
		if err != nil {
			return Token{}, l.mapEOF(err)
		}
		switch p[0] {
		case '>':
			if _, err := l.readByte(); err != nil {
				return Token{}, err
			}
			kind = KindStartElement
		case '/':
			if _, err := l.readByte(); err != nil {
				return Token{}, err
			}
			b, err := l.readByte()
			if err != nil {
				return Token{}, err
			}
			if b != '>' {
				return Token{}, l.errorf(errInvalidToken)
			}
			kind = KindEmptyElement
		default:
			if err := l.lexAttr(); err != nil {
				return Token{}, err
			}
		}
	}

	// Materialize attribute slices only once the raw buffer has stopped
	// growing, since append may have moved it.
	for _, s := range l.attrSpans {
		l.attrs = append(l.attrs, Attr{
			Name:  l.raw[s.nameStart:s.nameEnd],
			Value: l.raw[s.valStart:s.valEnd],
		})
	}
	return l.token(Token{Kind: kind, Name: l.raw[nameStart:nameEnd], Attrs: l.attrs}), nil
}

func (l *Lexer) lexAttr() error {
	var s attrSpan
	s.nameStart = len(l.raw)
	if err := l.readName(); err != nil {
		return err
	}
	s.nameEnd = len(l.raw)
	if err := l.skipSpace(); err != nil {
		return err
	}
	b, err := l.readByte()
	if err != nil {
		return err
	}
	if b != '=' {
		return l.errorf(errInvalidAttr)
	}
	if err := l.skipSpace(); err != nil {
		return err
	}
	quote, err := l.readByte()
	if err != nil {
		return err
	}
	if quote != '"' && quote != '\'' {
		return l.errorf(errInvalidAttr)
	}
	s.valStart = len(l.raw)
	for {
		b, err := l.readByte()
		if err != nil {
			return err
		}
		if b == quote {
			break
		}
	}
	s.valEnd = len(l.raw) - 1
	l.attrSpans = append(l.attrSpans, s)
	return nil
}

func (l *Lexer) readName() error {
	b, err := l.readByte()
	if err != nil {
		return err
	}
	if !isNameStartByte(b) {
		return l.errorf(errInvalidName)
	}
	return l.readNameRest()
}

func (l *Lexer) readNameRest() error {
	for {
		p, err := l.r.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.errorf(errUnexpectedEOF)
			}
			return err
		}
		if !isNameByte(p[0]) {
			return nil
		}
		if _, err := l.readByte(); err != nil {
			return err
		}
	}
}

func (l *Lexer) skipSpace() error {
	for {
		p, err := l.r.Peek(1)
		if err != nil {
			return l.mapEOF(err)
		}
		if !isSpaceByte(p[0]) {
			return nil
		}
		if _, err := l.readByte(); err != nil {
			return err
		}
	}
}

func (l *Lexer) readByte() (byte, error) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, l.mapEOF(err)
	}
	l.raw = append(l.raw, b)
	l.offset++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b, nil
}

func (l *Lexer) token(tok Token) Token {
	tok.Raw = l.raw
	tok.Line = l.tokLine
	tok.Column = l.tokCol
	return tok
}

// mapEOF turns EOF inside a token into a syntax error; plain read errors
// pass through.
func (l *Lexer) mapEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return l.errorf(errUnexpectedEOF)
	}
	return err
}

func (l *Lexer) errorf(cause error) error {
	return &SyntaxError{Offset: l.offset, Line: l.line, Column: l.column, Err: cause}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isNameStartByte(b byte) bool {
	return b == '_' || b == ':' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isNameByte(b byte) bool {
	return isNameStartByte(b) || b == '-' || b == '.' || (b >= '0' && b <= '9')
}
