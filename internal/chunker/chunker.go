package chunker

import (
	"regexp"
	"strings"

	"thinknest/internal/domain"
)

// DefaultMaxChunkSize bounds chunk growth; a sentence that would push the
// buffer past it starts a new chunk.
const DefaultMaxChunkSize = 300

// Chunker splits a document into bounded chunks, paragraph-first, then by
// sentence. One buffer accumulates across paragraph boundaries so short
// paragraphs coalesce into a single chunk.
type Chunker struct {
	maxChunkSize int
}

func New(maxChunkSize int) *Chunker {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	return &Chunker{maxChunkSize: maxChunkSize}
}

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
)

// Chunk splits the document into ordered chunks with 0-based indexes.
// An empty or whitespace-only document yields no chunks. A single sentence
// longer than the size limit is never split further.
func (c *Chunker) Chunk(document string) []domain.Chunk {
	var chunks []domain.Chunk
	var buf strings.Builder

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		chunks = append(chunks, domain.Chunk{Content: text, Index: len(chunks)})
	}

	for _, paragraph := range paragraphRe.Split(document, -1) {
		for _, sentence := range sentenceRe.Split(paragraph, -1) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			if buf.Len() > 0 && buf.Len()+len(sentence) > c.maxChunkSize {
				flush()
				buf.WriteString(sentence)
				continue
			}
			if buf.Len() > 0 {
				buf.WriteString(". ")
			}
			buf.WriteString(sentence)
		}
	}
	flush()
	return chunks
}
