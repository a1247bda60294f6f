package services

import (
	"sort"
	"strings"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/logger"
)

// RelevanceScorer ranks chunks against a query's keywords.
// It is stateless apart from the retrieval tuning fixed at construction.
type RelevanceScorer struct {
	threshold float64
	topChunks int
	fallback  int
}

// NewRelevanceScorer creates a scorer with the given retrieval tuning.
func NewRelevanceScorer(cfg domain.RetrievalConfig) *RelevanceScorer {
	return &RelevanceScorer{
		threshold: cfg.ScoreThreshold,
		topChunks: cfg.TopChunks,
		fallback:  cfg.FallbackChunks,
	}
}

// Score computes the fraction of query keywords matched by the chunk.
//
// A query keyword matches when it is a substring of any chunk keyword
// or any chunk keyword is a substring of it. Both sides come from the
// same extractor, so they are already lowercased. The denominator is
// the query keyword count only, not a symmetric set measure; chunks
// with many keywords are not penalised for breadth.
func (s *RelevanceScorer) Score(queryKeywords []string, chunk domain.Chunk) float64 {
	if len(queryKeywords) == 0 || len(chunk.Keywords) == 0 {
		return 0
	}

	matched := 0
	for _, q := range queryKeywords {
		for _, k := range chunk.Keywords {
			if strings.Contains(k, q) || strings.Contains(q, k) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(queryKeywords))
}

// SelectChunks scores every chunk and returns the ranked selection.
//
// Chunks scoring above the threshold are sorted by score descending,
// document order breaking ties, and capped at the configured top count.
// When nothing clears the threshold but chunks exist, the whole set is
// re-ranked the same way and up to the fallback count is returned, so a
// present document almost always yields some context. An empty chunk
// slice returns nil; there is nothing to fall back to.
func (s *RelevanceScorer) SelectChunks(queryKeywords []string, chunks []domain.Chunk) []domain.ScoredChunk {
	if len(chunks) == 0 {
		return nil
	}

	scored := make([]domain.ScoredChunk, len(chunks))
	for i := range chunks {
		scored[i] = domain.ScoredChunk{
			Chunk: chunks[i],
			Score: s.Score(queryKeywords, chunks[i]),
		}
	}

	selected := make([]domain.ScoredChunk, 0, len(scored))
	for _, sc := range scored {
		if sc.Score > s.threshold {
			selected = append(selected, sc)
		}
	}

	if len(selected) == 0 {
		logger.Debug("No chunks above threshold %.2f, falling back to top %d", s.threshold, s.fallback)
		return s.fallbackSelection(scored)
	}

	sortByScore(selected)
	if len(selected) > s.topChunks {
		selected = selected[:s.topChunks]
	}

	logger.Debug("Selected %d chunks above threshold %.2f", len(selected), s.threshold)
	return selected
}

// fallbackSelection re-ranks the full scored set and keeps the best few
// regardless of threshold. With an all-zero scoring (e.g. a stopword-only
// query) this degenerates to the first chunks in document order.
func (s *RelevanceScorer) fallbackSelection(scored []domain.ScoredChunk) []domain.ScoredChunk {
	if s.fallback <= 0 {
		return nil
	}

	fallback := make([]domain.ScoredChunk, len(scored))
	copy(fallback, scored)
	sortByScore(fallback)

	if len(fallback) > s.fallback {
		fallback = fallback[:s.fallback]
	}
	return fallback
}

// sortByScore orders chunks by score descending. The sort is stable and
// the input arrives in document order, so equal scores keep that order.
func sortByScore(chunks []domain.ScoredChunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
}
