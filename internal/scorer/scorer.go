package scorer

import (
	"math"
	"strings"

	"thinknest/internal/token"
)

const (
	phraseBonus     = 150
	tokenBonus      = 15
	repetitionCap   = 15
	proximityWindow = 50
)

// Scorer computes a hand-tuned lexical relevance score for a (query, chunk)
// pair. Scores are never negative; higher means more relevant.
type Scorer struct{}

func New() *Scorer { return &Scorer{} }

// Score accumulates an exact-phrase bonus, per-token match bonuses with a
// capped repetition reward, and a proximity bonus for adjacent query tokens
// appearing close together in the chunk. A query or chunk that tokenizes to
// nothing scores zero.
func (s *Scorer) Score(query, content string) float64 {
	queryTokens := token.Tokenize(query)
	contentTokens := token.Tokenize(content)
	if len(queryTokens) == 0 || len(contentTokens) == 0 {
		return 0
	}

	var score float64
	contentLower := strings.ToLower(content)

	if strings.Contains(contentLower, strings.ToLower(query)) {
		score += phraseBonus
	}

	occurrences := make(map[string]int, len(contentTokens))
	for _, t := range contentTokens {
		occurrences[t]++
	}

	seen := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		count, ok := occurrences[t]
		if !ok {
			continue
		}
		score += tokenBonus
		score += math.Min(float64(count*3), repetitionCap)
	}

	// Proximity uses raw substring offsets rather than token positions.
	// That is how the original heuristic behaves; changing it to
	// token-boundary distance would change scoring outcomes.
	if len(queryTokens) > 1 {
		for i := 0; i < len(queryTokens)-1; i++ {
			first := strings.Index(contentLower, queryTokens[i])
			second := strings.Index(contentLower, queryTokens[i+1])
			if first < 0 || second < 0 {
				continue
			}
			distance := math.Abs(float64(first - second))
			if distance < proximityWindow {
				score += 25 - distance/3
			}
		}
	}

	return score
}
