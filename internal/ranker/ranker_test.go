package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinknest/internal/domain"
	"thinknest/internal/scorer"
)

// stubScorer scores chunks by a fixed content lookup.
type stubScorer map[string]float64

func (s stubScorer) Score(query, content string) float64 { return s[content] }

func chunksOf(contents ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, len(contents))
	for i, c := range contents {
		chunks[i] = domain.Chunk{Content: c, Index: i}
	}
	return chunks
}

func TestRank(t *testing.T) {
	t.Run("never returns more than TopK", func(t *testing.T) {
		r := New(stubScorer{"a": 5, "b": 4, "c": 3, "d": 2, "e": 1})
		ranked := r.Rank("query", chunksOf("a", "b", "c", "d", "e"))
		assert.Len(t, ranked, TopK)
	})

	t.Run("drops zero-score chunks", func(t *testing.T) {
		r := New(stubScorer{"a": 0, "b": 7, "c": 0})
		ranked := r.Rank("query", chunksOf("a", "b", "c"))
		require.Len(t, ranked, 1)
		assert.Equal(t, "b", ranked[0].Chunk.Content)
	})

	t.Run("sorts by score descending", func(t *testing.T) {
		r := New(stubScorer{"a": 1, "b": 9, "c": 5})
		ranked := r.Rank("query", chunksOf("a", "b", "c"))
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"b", "c", "a"}, []string{
			ranked[0].Chunk.Content, ranked[1].Chunk.Content, ranked[2].Chunk.Content,
		})
	})

	t.Run("ties break by ascending chunk index", func(t *testing.T) {
		r := New(stubScorer{"a": 5, "b": 5, "c": 5, "d": 5})
		ranked := r.Rank("query", chunksOf("a", "b", "c", "d"))
		require.Len(t, ranked, TopK)
		assert.Equal(t, 0, ranked[0].Chunk.Index)
		assert.Equal(t, 1, ranked[1].Chunk.Index)
		assert.Equal(t, 2, ranked[2].Chunk.Index)
	})

	t.Run("empty input ranks empty", func(t *testing.T) {
		r := New(stubScorer{})
		assert.Empty(t, r.Rank("query", nil))
	})

	t.Run("phrase match ranks ahead of token-only match", func(t *testing.T) {
		r := New(scorer.New())
		chunks := []domain.Chunk{
			{Content: "A deal was announced after the merger talks", Index: 0},
			{Content: "The merger deal closed in spring", Index: 1},
		}
		ranked := r.Rank("merger deal", chunks)
		require.Len(t, ranked, 2)
		assert.Equal(t, 1, ranked[0].Chunk.Index)
		assert.GreaterOrEqual(t, ranked[0].Score, 150.0)
		assert.Greater(t, ranked[0].Score, ranked[1].Score)
	})
}
