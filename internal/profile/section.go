package profile

import "strings"

// Grammar extracts a profile name from a section header line. ok is false
// when the line is a header but malformed for this file type.
type Grammar interface {
	ProfileName(header string) (name string, ok bool)
	String() string
}

// CredentialsGrammar accepts bare names, as in [name].
var CredentialsGrammar Grammar = credentialsGrammar{}

// ConfigGrammar accepts [default] and [profile name].
var ConfigGrammar Grammar = configGrammar{}

type credentialsGrammar struct{}

func (credentialsGrammar) String() string { return "credentials" }

func (credentialsGrammar) ProfileName(header string) (string, bool) {
	inner, ok := headerInner(header)
	if !ok || !IsIdentifier(inner) {
		return "", false
	}
	return inner, true
}

type configGrammar struct{}

func (configGrammar) String() string { return "config" }

const profilePrefix = "profile"

func (configGrammar) ProfileName(header string) (string, bool) {
	inner, ok := headerInner(header)
	if !ok {
		return "", false
	}
	if inner == DefaultProfile {
		return inner, true
	}
	rest, found := strings.CutPrefix(inner, profilePrefix)
	if !found || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	// exactly one separator is skipped
	name := rest[1:]
	if !IsIdentifier(name) {
		return "", false
	}
	return name, true
}

// headerInner strips a trailing comment and returns the trimmed text between
// '[' and the closing ']'.
func headerInner(header string) (string, bool) {
	if !strings.HasPrefix(header, "[") {
		return "", false
	}
	if i := strings.IndexAny(header, "#;"); i >= 0 {
		header = header[:i]
	}
	header = strings.TrimRight(header, " \t")
	if len(header) < 2 || !strings.HasSuffix(header, "]") {
		return "", false
	}
	return strings.TrimSpace(header[1 : len(header)-1]), true
}
