package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	c := New(0)

	t.Run("empty document yields no chunks", func(t *testing.T) {
		assert.Empty(t, c.Chunk(""))
		assert.Empty(t, c.Chunk("  \n\n\t  "))
	})

	t.Run("short sentences coalesce into one chunk", func(t *testing.T) {
		chunks := c.Chunk("One sentence. Another sentence! A third?")
		require.Len(t, chunks, 1)
		assert.Equal(t, "One sentence. Another sentence. A third", chunks[0].Content)
		assert.Equal(t, 0, chunks[0].Index)
	})

	t.Run("buffer carries across paragraph breaks", func(t *testing.T) {
		chunks := c.Chunk("First paragraph sentence.\n\nSecond paragraph sentence.")
		require.Len(t, chunks, 1)
		assert.Equal(t, "First paragraph sentence. Second paragraph sentence", chunks[0].Content)
	})

	t.Run("oversized sentence becomes its own chunk", func(t *testing.T) {
		long := strings.Repeat("word ", 80) + "end"
		chunks := c.Chunk(long + ".")
		require.Len(t, chunks, 1)
		assert.Equal(t, long, chunks[0].Content)
	})

	t.Run("flushes when the next sentence would exceed the limit", func(t *testing.T) {
		first := strings.Repeat("a", 200)
		second := strings.Repeat("b", 200)
		chunks := c.Chunk(first + ". " + second + ".")
		require.Len(t, chunks, 2)
		assert.Equal(t, first, chunks[0].Content)
		assert.Equal(t, second, chunks[1].Content)
	})

	t.Run("indexes are 0-based and strictly increasing", func(t *testing.T) {
		sentence := strings.Repeat("x", 250)
		doc := sentence + ". " + sentence + ". " + sentence + "."
		chunks := c.Chunk(doc)
		require.Len(t, chunks, 3)
		for i, ch := range chunks {
			assert.Equal(t, i, ch.Index)
		}
	})

	t.Run("every sentence lands in exactly one chunk", func(t *testing.T) {
		doc := "Alpha one. Beta two!\n\nGamma three? Delta four."
		chunks := c.Chunk(doc)
		var all []string
		for _, ch := range chunks {
			all = append(all, ch.Content)
		}
		joined := strings.Join(all, ". ")
		for _, want := range []string{"Alpha one", "Beta two", "Gamma three", "Delta four"} {
			assert.Equal(t, 1, strings.Count(joined, want))
		}
	})

	t.Run("custom size limit", func(t *testing.T) {
		small := New(10)
		chunks := small.Chunk("abcdefgh. ijklmnop.")
		require.Len(t, chunks, 2)
		assert.Equal(t, "abcdefgh", chunks[0].Content)
		assert.Equal(t, "ijklmnop", chunks[1].Content)
	})
}
