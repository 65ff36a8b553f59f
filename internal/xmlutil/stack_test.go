package xmlutil

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listQueues = `<?xml version="1.0"?>
<ListQueuesResponse xmlns="http://queue.amazonaws.com/doc/2012-11-05/">
    <ListQueuesResult>
        <QueueUrl>https://sqs.us-east-1.amazonaws.com/347452556413/testqueue</QueueUrl>
    </ListQueuesResult>
    <ResponseMetadata>
        <RequestId>7a62c49f-347e-4fc4-9331-6e8e7a96aa73</RequestId>
    </ResponseMetadata>
</ListQueuesResponse>
`

// stacks returns the same document behind both Stack implementations.
func stacks() map[string]func() Stack {
	return map[string]func() Stack{
		"decoder": func() Stack { return NewDecoderStack(strings.NewReader(listQueues)) },
		"scripted": func() Stack {
			return NewTokenStack(
				Token{Kind: Other, Name: "xml", Text: `version="1.0"`},
				Chars("\n"),
				Start("ListQueuesResponse"),
				Chars("\n    "),
				Start("ListQueuesResult"),
				Chars("\n        "),
				Start("QueueUrl"),
				Chars("https://sqs.us-east-1.amazonaws.com/347452556413/testqueue"),
				End("QueueUrl"),
				Chars("\n    "),
				End("ListQueuesResult"),
				Chars("\n    "),
				Start("ResponseMetadata"),
				Start("RequestId"),
				Chars("7a62c49f-347e-4fc4-9331-6e8e7a96aa73"),
				End("RequestId"),
				End("ResponseMetadata"),
				Chars("\n"),
				End("ListQueuesResponse"),
				Chars("\n"),
			)
		},
	}
}

func TestStackSkipsWhitespace(t *testing.T) {
	for name, newStack := range stacks() {
		t.Run(name, func(t *testing.T) {
			s := newStack()
			FindStartElement(s)

			tok, err := s.Peek()
			require.NoError(t, err)
			assert.Equal(t, StartElement, tok.Kind)
			assert.Equal(t, "ListQueuesResponse", tok.Name)

			again, err := s.Peek()
			require.NoError(t, err)
			assert.Equal(t, tok, again, "peek does not consume")

			_, err = s.Next()
			require.NoError(t, err)
			tok, err = s.Next()
			require.NoError(t, err)
			assert.Equal(t, "ListQueuesResult", tok.Name, "whitespace between tags is skipped")
		})
	}
}

func TestStringField(t *testing.T) {
	for name, newStack := range stacks() {
		t.Run(name, func(t *testing.T) {
			s := newStack()
			FindStartElement(s)
			_, err := StartElementNamed(s, "ListQueuesResponse")
			require.NoError(t, err)
			_, err = StartElementNamed(s, "ListQueuesResult")
			require.NoError(t, err)

			url, err := StringField(s, "QueueUrl")
			require.NoError(t, err)
			assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/347452556413/testqueue", url)
			require.NoError(t, EndElementNamed(s, "ListQueuesResult"))
		})
	}
}

func TestPeekAtName(t *testing.T) {
	for name, newStack := range stacks() {
		t.Run(name, func(t *testing.T) {
			s := newStack()

			_, err := PeekAtName(s)
			assert.ErrorIs(t, err, ErrUnexpectedToken, "xml declaration is not an element")
			FindStartElement(s)

			next, err := PeekAtName(s)
			require.NoError(t, err)
			assert.Equal(t, Peeked{Kind: StartElement, Name: "ListQueuesResponse"}, next)

			_, _ = s.Next()
			SkipTree(s)
			SkipTree(s)
			next, err = PeekAtName(s)
			require.NoError(t, err)
			assert.Equal(t, Peeked{Kind: EndElement, Name: "ListQueuesResponse"}, next)

			_, _ = s.Next()
			next, err = PeekAtName(s)
			require.NoError(t, err)
			assert.True(t, next.EOF)
		})
	}
}

func TestSkipTreeNested(t *testing.T) {
	s := NewTokenStack(
		Start("a"), Start("b"), Start("c"), Chars("x"), End("c"), End("b"), End("a"),
		Start("after"),
	)
	SkipTree(s)
	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, Start("after"), tok)
}

func TestSkipTreeStopsAtEOF(t *testing.T) {
	s := NewTokenStack(Start("a"), Start("b"))
	SkipTree(s)
	_, err := s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStartElementNameMismatch(t *testing.T) {
	s := NewTokenStack(Start("Other"))
	_, err := StartElementNamed(s, "Expected")
	require.ErrorIs(t, err, ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "Other")

	s = NewTokenStack(Start("a"), End("b"))
	_, _ = s.Next()
	assert.ErrorIs(t, EndElementNamed(s, "a"), ErrUnexpectedToken)
}

func TestCharactersEmptyElement(t *testing.T) {
	s := NewTokenStack(Start("Empty"), End("Empty"))
	v, err := StringField(s, "Empty")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDecoderStackAttributes(t *testing.T) {
	s := NewDecoderStack(strings.NewReader(`<Queue name="q1" region="us-east-1"/>`))
	attrs, err := StartElementNamed(s, "Queue")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "q1", "region": "us-east-1"}, attrs)
	require.NoError(t, EndElementNamed(s, "Queue"))
}

func TestDecoderStackMalformed(t *testing.T) {
	s := NewDecoderStack(strings.NewReader(`<?xml version="1.0"?>
<ListQueuesResponse xmlns="http://queue.amazonaws.com/doc/2012-11-05/">
    <!-- truncated -->
`))
	FindStartElement(s)
	_, err := StartElementNamed(s, "ListQueuesResponse")
	require.NoError(t, err)

	_, err = s.Next()
	require.NoError(t, err, "comment token")

	_, err = PeekAtName(s)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to peek element: "))
	assert.False(t, errors.Is(err, io.EOF))
}
