package engine

import "thinknest/internal/domain"

// Engine is the document QA core: it builds chunk sequences from raw text
// and answers queries against them. All operations are pure functions over
// their inputs, so one Engine is safe for concurrent use.
type Engine struct {
	chunker domain.Chunker
	ranker  domain.Ranker
	synth   domain.Synthesizer
}

func New(chunker domain.Chunker, ranker domain.Ranker, synth domain.Synthesizer) *Engine {
	return &Engine{chunker: chunker, ranker: ranker, synth: synth}
}

// Chunk builds the ordered chunk sequence for a raw document. It is called
// once per document; the caller owns and publishes the result.
func (e *Engine) Chunk(document string) []domain.Chunk {
	return e.chunker.Chunk(document)
}

// Answer ranks the chunks for the query and synthesizes a mode-specific
// answer. Degenerate input never errors; it resolves to a fallback message.
func (e *Engine) Answer(query string, chunks []domain.Chunk, mode domain.AnswerMode) string {
	ranked := e.ranker.Rank(query, chunks)
	return e.synth.Synthesize(query, ranked, mode)
}
