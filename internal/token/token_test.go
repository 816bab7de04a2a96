/*
File    : golox/internal/token/token_test.go
*/

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_MapsAllSixteenReservedWords(t *testing.T) {
	assert.Len(t, Keywords, 16)

	for word, typ := range Keywords {
		got, ok := Keywords[word]
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}
}

func TestKeywords_ClassIsNotAnIdentifier(t *testing.T) {
	typ, ok := Keywords["class"]
	assert.True(t, ok)
	assert.Equal(t, Class, typ)
}

func TestToken_StringIncludesLiteralWhenPresent(t *testing.T) {
	tok := NewLiteral(Number, "3.14", 3.14, 1)
	assert.Equal(t, "NUMBER 3.14 3.14", tok.String())
}

func TestToken_StringOmitsLiteralWhenAbsent(t *testing.T) {
	tok := New(Plus, "+", 1)
	assert.Equal(t, "+ +", tok.String())
}
