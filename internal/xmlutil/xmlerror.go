package xmlutil

import (
	"fmt"
	"io"

	"github.com/aws/smithy-go"
)

// XMLError is the body of an AWS query-protocol or REST-XML error.
type XMLError struct {
	Type      string
	Code      string
	Message   string
	Detail    *string
	RequestID string
}

func (e XMLError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// APIError converts e to the smithy error model.
func (e XMLError) APIError() *smithy.GenericAPIError {
	fault := smithy.FaultUnknown
	switch e.Type {
	case "Sender":
		fault = smithy.FaultClient
	case "Receiver":
		fault = smithy.FaultServer
	}
	return &smithy.GenericAPIError{Code: e.Code, Message: e.Message, Fault: fault}
}

// DeserializeError reads the element named tag holding Type, Code, Message
// and Detail children. Unknown children are skipped.
func DeserializeError(s Stack, tag string) (XMLError, error) {
	var out XMLError
	if _, err := StartElementNamed(s, tag); err != nil {
		return out, err
	}

	for {
		next, err := PeekAtName(s)
		if err != nil {
			return out, err
		}
		if next.EOF || next.Kind == EndElement {
			break
		}

		switch next.Name {
		case "Type":
			out.Type, err = StringField(s, "Type")
		case "Code":
			out.Code, err = StringField(s, "Code")
		case "Message":
			out.Message, err = StringField(s, "Message")
		case "RequestId":
			out.RequestID, err = StringField(s, "RequestId")
		case "Detail":
			out.Detail, err = detail(s)
		default:
			SkipTree(s)
		}
		if err != nil {
			return out, err
		}
	}

	if err := EndElementNamed(s, tag); err != nil {
		return out, err
	}
	return out, nil
}

// detail reads <Detail>, which may hold text or nested elements. Nested
// content is discarded.
func detail(s Stack) (*string, error) {
	if _, err := StartElementNamed(s, "Detail"); err != nil {
		return nil, err
	}
	tok, err := s.Peek()
	if err != nil {
		return nil, unexpected("detail content", tok, err)
	}
	if tok.Kind == StartElement {
		skipDepth(s, 1)
		return nil, nil
	}
	text, err := Characters(s)
	if err != nil {
		return nil, err
	}
	if err := EndElementNamed(s, "Detail"); err != nil {
		return nil, err
	}
	return &text, nil
}

// ParseErrorResponse decodes an error body from r. Both the wrapped
// <ErrorResponse><Error>...</Error></ErrorResponse> form and a bare <Error>
// root are accepted.
func ParseErrorResponse(r io.Reader) (XMLError, error) {
	s := NewDecoderStack(r)
	FindStartElement(s)

	root, err := PeekAtName(s)
	if err != nil {
		return XMLError{}, err
	}
	if root.EOF {
		return XMLError{}, fmt.Errorf("%w: empty error response", ErrUnexpectedToken)
	}
	if root.Name == "Error" {
		return DeserializeError(s, "Error")
	}

	if _, err := StartElementNamed(s, root.Name); err != nil {
		return XMLError{}, err
	}
	var out XMLError
	var requestID string
	for {
		next, err := PeekAtName(s)
		if err != nil {
			return out, err
		}
		if next.EOF || next.Kind == EndElement {
			break
		}
		switch next.Name {
		case "Error":
			if out, err = DeserializeError(s, "Error"); err != nil {
				return out, err
			}
		case "RequestId":
			if requestID, err = StringField(s, "RequestId"); err != nil {
				return out, err
			}
		default:
			SkipTree(s)
		}
	}
	if out.RequestID == "" {
		out.RequestID = requestID
	}
	return out, EndElementNamed(s, root.Name)
}
