package xmlutil

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedToken is wrapped by errors reporting a token of the wrong kind
// or name.
var ErrUnexpectedToken = errors.New("unexpected xml token")

func unexpected(want string, got Token, err error) error {
	if err != nil {
		return fmt.Errorf("%w: expected %s: %w", ErrUnexpectedToken, want, err)
	}
	return fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedToken, want, got)
}

// StartElementNamed consumes a start element called name and returns its
// attributes.
func StartElementNamed(s Stack, name string) (map[string]string, error) {
	tok, err := s.Next()
	if err != nil || tok.Kind != StartElement || tok.Name != name {
		return nil, unexpected(fmt.Sprintf("start element %q", name), tok, err)
	}
	return tok.Attr, nil
}

// EndElementNamed consumes an end element called name.
func EndElementNamed(s Stack, name string) error {
	tok, err := s.Next()
	if err != nil || tok.Kind != EndElement || tok.Name != name {
		return unexpected(fmt.Sprintf("end element %q", name), tok, err)
	}
	return nil
}

// Characters consumes character data. An element with no content yields "".
func Characters(s Stack) (string, error) {
	if tok, err := s.Peek(); err == nil && tok.Kind == EndElement {
		return "", nil
	}
	tok, err := s.Next()
	if err != nil || tok.Kind != CharData {
		return "", unexpected("characters", tok, err)
	}
	return tok.Text, nil
}

// StringField consumes <name>text</name> and returns text.
func StringField(s Stack, name string) (string, error) {
	if _, err := StartElementNamed(s, name); err != nil {
		return "", err
	}
	v, err := Characters(s)
	if err != nil {
		return "", err
	}
	if err := EndElementNamed(s, name); err != nil {
		return "", err
	}
	return v, nil
}

// Peeked is the result of PeekAtName.
type Peeked struct {
	Kind Kind // StartElement or EndElement; zero value with EOF set otherwise
	Name string
	EOF  bool
}

// PeekAtName reports the name of the next element boundary without
// consuming it. Character data or other tokens at this position are an
// error.
func PeekAtName(s Stack) (Peeked, error) {
	tok, err := s.Peek()
	switch {
	case errors.Is(err, io.EOF):
		return Peeked{EOF: true}, nil
	case err != nil:
		return Peeked{}, fmt.Errorf("failed to peek element: %w", err)
	case tok.Kind == StartElement || tok.Kind == EndElement:
		return Peeked{Kind: tok.Kind, Name: tok.Name}, nil
	default:
		return Peeked{}, fmt.Errorf("%w: %s is not a StartElement", ErrUnexpectedToken, tok)
	}
}

// SkipTree consumes the next element and everything nested in it. Read
// errors and end of stream stop the skip.
func SkipTree(s Stack) {
	skipDepth(s, 0)
}

// skipDepth consumes tokens until depth nested elements have been closed,
// counting the ones opened on the way.
func skipDepth(s Stack, depth int) {
	for {
		tok, err := s.Next()
		if err != nil {
			return
		}
		switch tok.Kind {
		case StartElement:
			depth++
		case EndElement:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// FindStartElement consumes tokens up to the next start element.
func FindStartElement(s Stack) {
	for {
		tok, err := s.Peek()
		if err != nil || tok.Kind == StartElement {
			return
		}
		if _, err := s.Next(); err != nil {
			return
		}
	}
}
