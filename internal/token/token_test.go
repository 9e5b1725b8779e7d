package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		assert.Equal(t, []string{"quick", "brown", "fox"}, Tokenize("The Quick, Brown FOX!"))
	})

	t.Run("drops short tokens", func(t *testing.T) {
		assert.Empty(t, Tokenize("go is ok"))
	})

	t.Run("drops stopwords", func(t *testing.T) {
		assert.Equal(t, []string{"merger"}, Tokenize("what which who was the merger"))
	})

	t.Run("keeps digits", func(t *testing.T) {
		assert.Equal(t, []string{"founded", "1998"}, Tokenize("Founded in 1998"))
	})

	t.Run("preserves order and duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "beta", "alpha"}, Tokenize("alpha beta alpha"))
	})

	t.Run("apostrophes split words", func(t *testing.T) {
		assert.Equal(t, []string{"don", "stop"}, Tokenize("don't stop"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("  \t\n "))
	})
}
