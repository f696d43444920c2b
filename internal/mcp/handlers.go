// ABOUTME: MCP tool handler implementations for the docrag server
// ABOUTME: Owns one embedding index per session behind a read-write lock
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/extract"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools. The index is
// immutable once built; the lock only guards the swap on re-indexing.
type Handlers struct {
	cfg       *config.Config
	embedder  core.Embedder
	retriever *core.Retriever

	mu      *sync.RWMutex
	index   *core.EmbeddingIndex
	docPath string
}

// IndexDocument handles the index_document tool
func (h *Handlers) IndexDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	doc, err := extract.FromFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	chunks, err := core.SplitText(doc.Text, h.cfg.ChunkSize, h.cfg.ChunkOverlap)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chunking failed: %v", err)), nil
	}

	index, err := core.BuildIndex(ctx, chunks, h.embedder, core.WithWorkers(h.cfg.EmbedWorkers))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("index build failed: %v", err)), nil
	}

	h.mu.Lock()
	h.index = index
	h.docPath = doc.Path
	h.mu.Unlock()

	response := map[string]interface{}{
		"document_id": doc.ID,
		"path":        doc.Path,
		"chunks":      index.Size(),
		"dimension":   index.Dimension(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RetrieveContext handles the retrieve_context tool
func (h *Handlers) RetrieveContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	topK := request.GetInt("top_k", h.cfg.TopK)
	if topK < 0 {
		return mcp.NewToolResultError("top_k must be non-negative"), nil
	}

	index, docPath, ok := h.currentIndex()
	if !ok {
		return mcp.NewToolResultError("no document indexed; call index_document first"), nil
	}

	queryVec, err := h.embedder.Embed(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query embedding failed: %v", err)), nil
	}

	scored, err := core.Rank(queryVec, index, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(scored))
	for _, sr := range scored {
		chunk, err := index.ChunkAt(sr.ChunkID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("chunk lookup failed: %v", err)), nil
		}
		results = append(results, map[string]interface{}{
			"chunk_id":     chunk.ID,
			"score":        sr.Score,
			"start_offset": chunk.StartOffset,
			"text":         chunk.Text,
		})
	}

	response := map[string]interface{}{
		"path":    docPath,
		"results": results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AskDocument handles the ask_document tool
func (h *Handlers) AskDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	topK := request.GetInt("top_k", h.cfg.TopK)
	if topK < 0 {
		return mcp.NewToolResultError("top_k must be non-negative"), nil
	}

	index, docPath, ok := h.currentIndex()
	if !ok {
		return mcp.NewToolResultError("no document indexed; call index_document first"), nil
	}

	answer, err := h.retriever.Answer(ctx, query, index, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"path":     docPath,
		"question": query,
		"answer":   answer,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

func (h *Handlers) currentIndex() (*core.EmbeddingIndex, string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.index == nil {
		return nil, "", false
	}
	return h.index, h.docPath, true
}
