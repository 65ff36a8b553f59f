package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type headerCase struct {
	header string
	name   string
	ok     bool
}

func checkGrammar(t *testing.T, g Grammar, cases []headerCase) {
	t.Helper()
	for _, tc := range cases {
		name, ok := g.ProfileName(tc.header)
		assert.Equal(t, tc.ok, ok, "%s grammar, header %q", g, tc.header)
		assert.Equal(t, tc.name, name, "%s grammar, header %q", g, tc.header)
	}
}

func TestCredentialsGrammar(t *testing.T) {
	checkGrammar(t, CredentialsGrammar, []headerCase{
		{"[default]", "default", true},
		{"[abc]", "abc", true},
		{"[foo]", "foo", true},
		{"[ abc]", "abc", true},
		{"[\tabc\t]", "abc", true},
		{"[abc]#comment", "abc", true},
		{"[abc]\t #comment", "abc", true},
		{"[abc] ;comment", "abc", true},
		{"[profile abc]", "", false},
		{"[!invalid!]", "", false},
		{"[unclosed", "", false},
		{"[abc #]", "", false},
		{"abc]", "", false},
	})
}

func TestConfigGrammar(t *testing.T) {
	checkGrammar(t, ConfigGrammar, []headerCase{
		{"[default]", "default", true},
		{"[profile abc]", "abc", true},
		{"[profile\tabc]", "abc", true},
		{"[ profile abc]", "abc", true},
		{"[ profile abc ]", "abc", true},
		{"[ profile foo ]", "foo", true},
		{"[profile default]", "default", true},
		{"[profile abc]#comment", "abc", true},
		{"[profile abc]\t #comment", "abc", true},
		{"[profile abc] #comment", "abc", true},
		{"[profile !invalid!]", "", false},
		{"[profile !bad!]", "", false},
		{"[profile  abc]", "", false},
		{"[profileabc]", "", false},
		{"[abc]", "", false},
		{"[foo]", "", false},
		{"[unclosed", "", false},
		{"abc]", "", false},
	})
}
