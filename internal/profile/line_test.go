package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier(""))
	assert.True(t, IsIdentifier("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"))
	assert.False(t, IsIdentifier("profile abc"))
	assert.False(t, IsIdentifier("!invalid!"))
	assert.False(t, IsIdentifier("ïnṽåłǐḑ"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Line
	}{
		{"", Line{Kind: LineBlank}},
		{"\t \t", Line{Kind: LineBlank}},
		{"; some comment", Line{Kind: LineBlank}},
		{"# some comment", Line{Kind: LineBlank}},
		{"   # indented comment", Line{Kind: LineBlank}},
		{"[default]", Line{Kind: LineHeader}},
		{"[unclosed", Line{Kind: LineHeader}},
		{" [abc]", Line{Kind: LineContinuation, Value: "[abc]"}},
		{" continuation line", Line{Kind: LineContinuation, Value: "continuation line"}},
		{"\tcontinuation line ", Line{Kind: LineContinuation, Value: "continuation line"}},
		{" αβχ", Line{Kind: LineContinuation, Value: "αβχ"}},
		{"key=val", Line{Kind: LineProperty, Key: "key", Value: "val"}},
		{"key =val", Line{Kind: LineProperty, Key: "key", Value: "val"}},
		{"key = val ", Line{Kind: LineProperty, Key: "key", Value: "val"}},
		{"key=a=b", Line{Kind: LineProperty, Key: "key", Value: "a=b"}},
		{"key=val#not a comment", Line{Kind: LineProperty, Key: "key", Value: "val#not a comment"}},
		{"key=val #a comment", Line{Kind: LineProperty, Key: "key", Value: "val"}},
		{"key=val\t;a comment", Line{Kind: LineProperty, Key: "key", Value: "val"}},
		{"key=val;x ;y", Line{Kind: LineProperty, Key: "key", Value: "val;x"}},
		{"key=", Line{Kind: LineProperty, Key: "key", Value: ""}},
		{"invalid", Line{Kind: LineUnrecognized}},
		{"bad key=value", Line{Kind: LineUnrecognized}},
		{"ïnṽåłǐḑ", Line{Kind: LineUnrecognized}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Classify(tt.raw)
			tt.want.Raw = tt.raw
			assert.Equal(t, tt.want, got)
		})
	}
}
