// ABOUTME: Cosine-similarity ranking over an embedding index
// ABOUTME: Brute-force linear scan with a deterministic tie-break
package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/harper/docrag/internal/models"
)

// CosineSimilarity returns dot(a,b) / (|a|*|b|). If either vector has
// zero magnitude the similarity is undefined and negative infinity is
// returned so the comparison can never rank first.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: vectors have dimensions %d and %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return math.Inf(-1), nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Rank scores every stored vector against query and returns the top
// min(k, idx.Size()) results, descending by score with ties broken by
// ascending chunk id. The scan is intentionally linear; the index covers
// a single document, not a corpus.
func Rank(query []float64, idx *EmbeddingIndex, k int) ([]models.ScoredResult, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k must be non-negative, got %d", ErrInvalidConfig, k)
	}

	results := make([]models.ScoredResult, 0, idx.Size())
	for i, vec := range idx.vectors {
		score, err := CosineSimilarity(query, vec)
		if err != nil {
			return nil, err
		}
		results = append(results, models.ScoredResult{ChunkID: idx.chunks[i].ID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ChunkID < results[j].ChunkID
	})

	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}
