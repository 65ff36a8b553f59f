package profile

// State is where the file parser is relative to section headers.
type State int

const (
	// AwaitingProfile is the initial state: no header seen yet.
	AwaitingProfile State = iota
	// InProfile means the last header was valid.
	InProfile
	// InvalidProfile means the last header was malformed; lines are dropped
	// until the next valid header.
	InvalidProfile
)

func (s State) String() string {
	switch s {
	case AwaitingProfile:
		return "awaiting-profile"
	case InProfile:
		return "in-profile"
	default:
		return "invalid-profile"
	}
}

// Property is a completed key/value assignment inside a profile.
type Property struct {
	Profile string
	Key     string
	Value   string
}

// Warning describes a line the parser ignored.
type Warning int

const (
	NoWarning Warning = iota
	WarnInvalidHeader
	WarnOrphanContinuation
	WarnUnrecognizedLine
)

func (w Warning) String() string {
	switch w {
	case WarnInvalidHeader:
		return "ignoring profile with invalid declaration"
	case WarnOrphanContinuation:
		return "continuation line without a preceding key/value pair"
	case WarnUnrecognizedLine:
		return "line is not empty, a comment, a key/value pair or a continuation"
	default:
		return ""
	}
}

// Parser holds the per-file parse state. The zero value is not usable; use
// NewParser. Step never mutates its receiver.
type Parser struct {
	grammar Grammar
	state   State
	profile string
	key     string
	value   string
	pending bool
}

// NewParser returns a parser in AwaitingProfile using g for section headers.
func NewParser(g Grammar) Parser {
	return Parser{grammar: g}
}

// State reports the current state.
func (p Parser) State() State { return p.state }

// Profile reports the open profile, empty unless State is InProfile.
func (p Parser) Profile() string { return p.profile }

// Step feeds one raw line to the parser. It returns the next parser, the
// property completed by this line (if any) and the warning to report (if
// any).
func (p Parser) Step(raw string) (Parser, *Property, Warning) {
	line := Classify(raw)
	switch line.Kind {
	case LineBlank:
		return p, nil, NoWarning

	case LineHeader:
		next, done := p.flush()
		if name, ok := p.grammar.ProfileName(line.Raw); ok {
			next.state, next.profile = InProfile, name
			return next, done, NoWarning
		}
		next.state, next.profile = InvalidProfile, ""
		return next, done, WarnInvalidHeader
	}

	if p.state != InProfile {
		return p, nil, NoWarning
	}

	switch line.Kind {
	case LineContinuation:
		if !p.pending {
			return p, nil, WarnOrphanContinuation
		}
		p.value += line.Value
		return p, nil, NoWarning

	case LineProperty:
		next, done := p.flush()
		next.key, next.value, next.pending = line.Key, line.Value, true
		return next, done, NoWarning
	}
	return p, nil, WarnUnrecognizedLine
}

// Finish flushes the pending pair at end of input.
func (p Parser) Finish() (Parser, *Property) {
	return p.flush()
}

func (p Parser) flush() (Parser, *Property) {
	if !p.pending {
		return p, nil
	}
	var done *Property
	if p.state == InProfile {
		done = &Property{Profile: p.profile, Key: p.key, Value: p.value}
	}
	p.key, p.value, p.pending = "", "", false
	return p, done
}
