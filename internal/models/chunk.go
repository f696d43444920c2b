// ABOUTME: Chunk represents one fixed-size window of a source document
// ABOUTME: IDs are 0-based and contiguous in generation order
package models

// Chunk is a contiguous, possibly overlapping window of the source text.
// StartOffset is measured in runes from the beginning of the document.
type Chunk struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	StartOffset int    `json:"start_offset"`
}
