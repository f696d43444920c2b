// ABOUTME: ScoredResult pairs a chunk id with its similarity to a query
// ABOUTME: Transient per-query value, never persisted
package models

// ScoredResult is one ranked entry returned by the similarity ranker.
type ScoredResult struct {
	ChunkID int     `json:"chunk_id"`
	Score   float64 `json:"score"`
}
