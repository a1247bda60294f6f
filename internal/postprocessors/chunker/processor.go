// Package chunker provides a section-aware word-window chunking processor.
package chunker

import (
	"context"
	"regexp"
	"strings"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of overlapping words.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

// headerPattern matches a markdown heading line: one to six # markers
// followed by whitespace and the title text.
var headerPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Processor splits document text into overlapping word windows,
// section by section. It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure overlap doesn't exceed chunk size
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document text into section-scoped word windows.
// Input chunks are ignored; this processor creates new chunks.
//
// Heading lines start a new section titled by the heading text. Text
// before the first heading, or a document with no headings at all,
// forms a single untitled section. Windows never straddle a section
// boundary. Chunk IDs derive from the document content hash and the
// chunk position, so an unchanged document always chunks identically.
func (p *Processor) Process(_ context.Context, doc *domain.SourceDocument, _ []domain.Chunk) ([]domain.Chunk, error) {
	if strings.TrimSpace(doc.RawText) == "" {
		// Empty content produces no chunks
		return nil, nil
	}

	docHash := domain.DocumentHash(doc.RawText)
	step := p.chunkSize - p.overlap

	var chunks []domain.Chunk
	position := 0

	for _, sec := range splitSections(doc.RawText) {
		words := strings.Fields(sec.body)
		if len(words) == 0 {
			continue
		}

		for start := 0; start < len(words); start += step {
			end := start + p.chunkSize
			if end > len(words) {
				end = len(words)
			}

			chunks = append(chunks, domain.Chunk{
				ID:           domain.ChunkIDFor(docHash, position),
				Text:         strings.Join(words[start:end], " "),
				SectionTitle: sec.title,
				Position:     position,
			})
			position++

			if end == len(words) {
				break
			}
		}
	}

	return chunks, nil
}

// section is a contiguous span of document text under one heading.
type section struct {
	title string
	body  string
}

// splitSections scans the document line by line and groups text under
// the most recent heading. The title excludes the # markers.
func splitSections(text string) []section {
	var sections []section
	var current section
	var lines []string

	flush := func() {
		current.body = strings.Join(lines, "\n")
		if strings.TrimSpace(current.body) != "" || current.title != "" {
			sections = append(sections, current)
		}
		lines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = section{title: strings.TrimSpace(m[2])}
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return sections
}
