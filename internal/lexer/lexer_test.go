/*
File    : golox/internal/lexer/lexer_test.go
*/

package lexer

import (
	"testing"

	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	name     string
	input    string
	expected []token.Type
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			name:     "single and double character operators",
			input:    "(){},.-+;*!= == <= >= < >",
			expected: []token.Type{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual, token.Less, token.Greater, token.EOF},
		},
		{
			name:     "bang and equal without a follow-up equal",
			input:    "! =",
			expected: []token.Type{token.Bang, token.Equal, token.EOF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reporter := loxerr.NewReporter(nil)
			lx := New(tc.input, reporter)
			tokens := lx.ScanTokens()

			require.Len(t, tokens, len(tc.expected))
			for i, typ := range tc.expected {
				assert.Equal(t, typ, tokens[i].Type, "token %d", i)
			}
			assert.False(t, reporter.HadError)
		})
	}
}

func TestScanTokens_LineCommentsAreIgnored(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New("1 // this is a comment\n+ 2", reporter)
	tokens := lx.ScanTokens()

	require.Len(t, tokens, 4)
	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, token.Plus, tokens[1].Type)
	assert.Equal(t, token.Number, tokens[2].Type)
	assert.Equal(t, token.EOF, tokens[3].Type)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New(`"hello world"`, reporter)
	tokens := lx.ScanTokens()

	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedStringReportsError(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New(`"unterminated`, reporter)
	lx.ScanTokens()

	assert.True(t, reporter.HadError)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New("123.45", reporter)
	tokens := lx.ScanTokens()

	require.Len(t, tokens, 2)
	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, 123.45, tokens[0].Literal)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New("var x = orchid", reporter)
	tokens := lx.ScanTokens()

	require.Len(t, tokens, 5)
	assert.Equal(t, token.Var, tokens[0].Type)
	assert.Equal(t, token.Identifier, tokens[1].Type)
	assert.Equal(t, token.Equal, tokens[2].Type)
	assert.Equal(t, token.Identifier, tokens[3].Type)
}

func TestScanTokens_UnexpectedCharacterReportsButContinues(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New("1 @ 2", reporter)
	tokens := lx.ScanTokens()

	assert.True(t, reporter.HadError)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, token.Number, tokens[1].Type)
}

func TestScanTokens_TracksLineNumbersAcrossNewlines(t *testing.T) {
	reporter := loxerr.NewReporter(nil)
	lx := New("1\n2\n3", reporter)
	tokens := lx.ScanTokens()

	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
