package profile

import "strings"

// LineKind is the category a single raw line falls into.
type LineKind int

const (
	LineBlank LineKind = iota // empty, whitespace-only or comment
	LineHeader
	LineContinuation
	LineProperty
	LineUnrecognized
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeader:
		return "header"
	case LineContinuation:
		return "continuation"
	case LineProperty:
		return "property"
	default:
		return "unrecognized"
	}
}

// Line is a classified line. Key and Value are only set for LineProperty,
// Value holds the trimmed text for LineContinuation.
type Line struct {
	Kind  LineKind
	Raw   string
	Key   string
	Value string
}

// IsIdentifier reports whether s consists only of ASCII letters, digits,
// '_' and '-'. The empty string is an identifier.
func IsIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// Classify categorizes raw. Header detection wins over continuation and
// property detection.
func Classify(raw string) Line {
	switch {
	case isCommentOrBlank(raw):
		return Line{Kind: LineBlank, Raw: raw}
	case strings.HasPrefix(raw, "["):
		return Line{Kind: LineHeader, Raw: raw}
	case raw[0] == ' ' || raw[0] == '\t':
		return Line{Kind: LineContinuation, Raw: raw, Value: strings.TrimSpace(raw)}
	}
	if key, value, ok := splitProperty(raw); ok {
		return Line{Kind: LineProperty, Raw: raw, Key: key, Value: value}
	}
	return Line{Kind: LineUnrecognized, Raw: raw}
}

func isCommentOrBlank(raw string) bool {
	rest := strings.TrimLeft(raw, " \t")
	return rest == "" || rest[0] == '#' || rest[0] == ';'
}

func splitProperty(raw string) (key, value string, ok bool) {
	key, value, found := strings.Cut(raw, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !IsIdentifier(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(stripValueComment(value)), true
}

// stripValueComment cuts value at the first '#' or ';' that follows a space
// or tab. A marker glued to the preceding text is part of the value.
func stripValueComment(value string) string {
	for i := 1; i < len(value); i++ {
		if (value[i] == '#' || value[i] == ';') && (value[i-1] == ' ' || value[i-1] == '\t') {
			return value[:i-1]
		}
	}
	return value
}
