package ranker

import (
	"sort"

	"thinknest/internal/domain"
)

// TopK is the maximum number of chunks kept for answer synthesis.
const TopK = 3

// Ranker scores every chunk for a query and keeps the highest-scoring ones.
type Ranker struct {
	scorer domain.Scorer
}

func New(scorer domain.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank drops chunks scoring zero, sorts the rest by score descending and
// truncates to TopK. The sort is stable over the index-ordered input, so
// ties resolve to the earlier chunk and output is deterministic.
func (r *Ranker) Rank(query string, chunks []domain.Chunk) []domain.ScoredChunk {
	var scored []domain.ScoredChunk
	for _, ch := range chunks {
		s := r.scorer.Score(query, ch.Content)
		if s <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredChunk{Chunk: ch, Score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > TopK {
		scored = scored[:TopK]
	}
	return scored
}
