package domain

import "time"

// AnswerMode selects the answer synthesis strategy for a query.
type AnswerMode int

const (
	// ModeShort extracts a terse fact from the best-matching chunks.
	ModeShort AnswerMode = iota
	// ModeDetailed returns concatenated source excerpts.
	ModeDetailed
)

// ParseAnswerMode maps the wire representation to an AnswerMode.
// Unknown values fall back to short answers.
func ParseAnswerMode(s string) AnswerMode {
	if s == "detailed" {
		return ModeDetailed
	}
	return ModeShort
}

func (m AnswerMode) String() string {
	if m == ModeDetailed {
		return "detailed"
	}
	return "short"
}

// Chunk is a bounded contiguous slice of the source document used as the
// unit of retrieval. Index is the chunk's position in the original sequence
// and is stable for the document's lifetime.
type Chunk struct {
	Content string `json:"content"`
	Index   int    `json:"index"`
}

// ScoredChunk is a chunk paired with its relevance score for one query.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// KnowledgeBase is the active document together with its chunk sequence.
// Once published it is immutable; replacing a document means building and
// publishing a whole new KnowledgeBase.
type KnowledgeBase struct {
	Filename   string    `json:"filename"`
	Content    string    `json:"content"`
	UploadDate time.Time `json:"uploadDate"`
	Chunks     []Chunk   `json:"chunks"`
}

// Chunker splits a raw document into an ordered sequence of chunks.
type Chunker interface {
	Chunk(document string) []Chunk
}

// Scorer computes the lexical relevance of a chunk's content for a query.
type Scorer interface {
	Score(query, content string) float64
}

// Ranker scores all chunks for a query and keeps the top candidates.
type Ranker interface {
	Rank(query string, chunks []Chunk) []ScoredChunk
}

// Synthesizer turns ranked chunks plus the query and mode into an answer.
type Synthesizer interface {
	Synthesize(query string, ranked []ScoredChunk, mode AnswerMode) string
}
