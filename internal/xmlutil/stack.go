// Package xmlutil reads AWS XML responses through a whitespace-skipping
// token cursor.
package xmlutil

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Kind identifies the type of a Token.
type Kind int

const (
	StartElement Kind = iota
	EndElement
	CharData
	// Other covers processing instructions, comments and directives.
	Other
)

func (k Kind) String() string {
	switch k {
	case StartElement:
		return "StartElement"
	case EndElement:
		return "EndElement"
	case CharData:
		return "CharData"
	default:
		return "Other"
	}
}

// Token is a single XML event. Name is the local element name for start and
// end elements; Text holds character data or the raw content of Other.
type Token struct {
	Kind Kind
	Name string
	Text string
	Attr map[string]string
}

func (t Token) String() string {
	switch t.Kind {
	case StartElement, EndElement:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// Start returns a start element token.
func Start(name string) Token { return Token{Kind: StartElement, Name: name} }

// End returns an end element token.
func End(name string) Token { return Token{Kind: EndElement, Name: name} }

// Chars returns a character data token.
func Chars(text string) Token { return Token{Kind: CharData, Text: text} }

// Stack is a cursor over an XML token stream. Both methods skip character
// data made only of whitespace and return io.EOF at the end of the stream.
type Stack interface {
	// Peek returns the next token without consuming it.
	Peek() (Token, error)
	// Next consumes and returns the next token.
	Next() (Token, error)
}

func isWhitespace(t Token) bool {
	return t.Kind == CharData && strings.TrimSpace(t.Text) == ""
}

// DecoderStack is a Stack backed by encoding/xml.
type DecoderStack struct {
	dec    *xml.Decoder
	peeked *Token
	err    error
}

// NewDecoderStack reads tokens from r.
func NewDecoderStack(r io.Reader) *DecoderStack {
	return &DecoderStack{dec: xml.NewDecoder(r)}
}

func (s *DecoderStack) Peek() (Token, error) {
	for {
		if s.peeked == nil {
			if s.err != nil {
				return Token{}, s.err
			}
			tok, err := s.read()
			if err != nil {
				s.err = err
				return Token{}, err
			}
			s.peeked = &tok
		}
		if !isWhitespace(*s.peeked) {
			return *s.peeked, nil
		}
		s.peeked = nil
	}
}

func (s *DecoderStack) Next() (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	s.peeked = nil
	return tok, nil
}

func (s *DecoderStack) read() (Token, error) {
	raw, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	switch t := raw.(type) {
	case xml.StartElement:
		tok := Token{Kind: StartElement, Name: t.Name.Local}
		if len(t.Attr) > 0 {
			tok.Attr = make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				tok.Attr[a.Name.Local] = a.Value
			}
		}
		return tok, nil
	case xml.EndElement:
		return Token{Kind: EndElement, Name: t.Name.Local}, nil
	case xml.CharData:
		return Token{Kind: CharData, Text: string(t)}, nil
	case xml.Comment:
		return Token{Kind: Other, Text: string(t)}, nil
	case xml.ProcInst:
		return Token{Kind: Other, Name: t.Target, Text: string(t.Inst)}, nil
	case xml.Directive:
		return Token{Kind: Other, Text: string(t)}, nil
	default:
		return Token{Kind: Other}, nil
	}
}

// TokenStack is a Stack over a fixed token sequence.
type TokenStack struct {
	tokens []Token
	pos    int
}

// NewTokenStack returns a stack yielding tokens in order.
func NewTokenStack(tokens ...Token) *TokenStack {
	return &TokenStack{tokens: tokens}
}

func (s *TokenStack) Peek() (Token, error) {
	for s.pos < len(s.tokens) && isWhitespace(s.tokens[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.tokens) {
		return Token{}, io.EOF
	}
	return s.tokens[s.pos], nil
}

func (s *TokenStack) Next() (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	s.pos++
	return tok, nil
}
