package answer

import (
	"regexp"
	"strings"

	"thinknest/internal/domain"
	"thinknest/internal/token"
)

// NotFound is returned when no chunk matched the query. Callers that need to
// distinguish "no answer" from real content can compare against it.
const NotFound = "I couldn't find specific information to answer your question. Please try rephrasing or asking about a different topic."

const (
	noDetail          = "I found some related information, but couldn't form a detailed answer. Please try rephrasing."
	detailedPrefix    = "Here is the most relevant information I found:\n\n"
	detailedSeparator = "\n\n...\n\n"
	maxDetailedChunks = 2
)

// Synthesizer builds the final answer string from ranked chunks.
type Synthesizer struct{}

func New() *Synthesizer { return &Synthesizer{} }

// Synthesize returns NotFound for an empty ranking regardless of mode,
// otherwise dispatches on the requested answer mode.
func (s *Synthesizer) Synthesize(query string, ranked []domain.ScoredChunk, mode domain.AnswerMode) string {
	if len(ranked) == 0 {
		return NotFound
	}
	if mode == domain.ModeDetailed {
		return synthesizeDetailed(ranked)
	}
	return synthesizeShort(query, ranked)
}

// synthesizeDetailed joins the top unique chunks, deduplicated by content in
// first-seen order.
func synthesizeDetailed(ranked []domain.ScoredChunk) string {
	seen := make(map[string]struct{}, len(ranked))
	var parts []string
	for _, sc := range ranked {
		if _, dup := seen[sc.Chunk.Content]; dup {
			continue
		}
		seen[sc.Chunk.Content] = struct{}{}
		parts = append(parts, sc.Chunk.Content)
		if len(parts) == maxDetailedChunks {
			break
		}
	}
	joined := strings.Join(parts, detailedSeparator)
	if strings.TrimSpace(joined) == "" {
		return noDetail
	}
	return detailedPrefix + joined
}

// extractRule pairs a query predicate with a labeled-field pattern. Rules are
// tried in order against the combined ranked content; the first capturing
// match wins. New rules append to the end so existing priority is untouched.
type extractRule struct {
	applies func(queryLower string) bool
	pattern *regexp.Regexp
}

var extractRules = []extractRule{
	{
		applies: func(q string) bool { return strings.Contains(q, "who") },
		pattern: regexp.MustCompile(`(?i)(?:CEO|President|Manager|Director|Leader|Head):\s*([^,.\n]+)`),
	},
	{
		applies: func(q string) bool { return strings.Contains(q, "when") && strings.Contains(q, "founded") },
		pattern: regexp.MustCompile(`(?i)Founded:\s*(\d{4})`),
	},
	{
		applies: func(q string) bool { return strings.Contains(q, "where") || strings.Contains(q, "headquarters") },
		pattern: regexp.MustCompile(`(?i)Headquarters:\s*([^,.\n]+)`),
	},
	{
		applies: func(q string) bool { return strings.Contains(q, "how many") && strings.Contains(q, "employee") },
		pattern: regexp.MustCompile(`(?i)Employees:\s*([^,.\n]+)`),
	},
	{
		applies: func(q string) bool { return strings.Contains(q, "revenue") || strings.Contains(q, "income") },
		pattern: regexp.MustCompile(`(?i)Revenue[^:]*:\s*([^,.\n]+)`),
	},
}

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// synthesizeShort tries the labeled-field rules first, then falls back to the
// first sentence of the top chunk containing a query token, then to the top
// chunk verbatim.
func synthesizeShort(query string, ranked []domain.ScoredChunk) string {
	queryLower := strings.ToLower(query)

	contents := make([]string, len(ranked))
	for i, sc := range ranked {
		contents[i] = sc.Chunk.Content
	}
	combined := strings.Join(contents, " ")

	for _, rule := range extractRules {
		if !rule.applies(queryLower) {
			continue
		}
		if m := rule.pattern.FindStringSubmatch(combined); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	top := ranked[0].Chunk.Content
	queryTokens := token.Tokenize(query)
	for _, sentence := range sentenceRe.Split(top, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, t := range queryTokens {
			if strings.Contains(lower, t) {
				return sentence + "."
			}
		}
	}

	return top
}
