// ABOUTME: Document is a source document after text extraction
// ABOUTME: Produced by the extract package, consumed by the chunker
package models

// Document holds the extracted UTF-8 text of one source document.
type Document struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Text string `json:"text"`
}
