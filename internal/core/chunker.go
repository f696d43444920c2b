// ABOUTME: Splits document text into overlapping fixed-size rune windows
// ABOUTME: Purely positional; no sentence or paragraph awareness
package core

import (
	"fmt"

	"github.com/harper/docrag/internal/models"
)

// SplitText cuts text into windows of chunkSize runes starting every
// chunkSize-overlap runes. The final window may be shorter; it is still
// emitted. Offsets and sizes are measured in Unicode code points, not bytes.
func SplitText(text string, chunkSize, overlap int) ([]models.Chunk, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap must be in [0, chunk size), got overlap=%d chunk size=%d",
			ErrInvalidConfig, overlap, chunkSize)
	}

	runes := []rune(text)
	step := chunkSize - overlap

	var chunks []models.Chunk
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.Chunk{
			ID:          len(chunks),
			Text:        string(runes[start:end]),
			StartOffset: start,
		})
	}

	return chunks, nil
}
