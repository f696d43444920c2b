// ABOUTME: MCP tool definitions and registration for the docrag server
// ABOUTME: Exposes indexing, retrieval, and answering over one document session
package mcp

import (
	"sync"

	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, cfg *config.Config, embedder core.Embedder, generator core.Generator) *Handlers {
	handlers := &Handlers{
		cfg:       cfg,
		embedder:  embedder,
		retriever: core.NewRetriever(embedder, generator),
		mu:        &sync.RWMutex{},
	}

	// 1. index_document - extract, chunk, and embed a source document
	server.AddTool(mcp.Tool{
		Name:        "index_document",
		Description: "Extract text from a PDF, .txt, or .md file, split it into overlapping chunks, and build the embedding index for this session. Replaces any previously indexed document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the source document",
				},
			},
			Required: []string{"path"},
		},
	}, handlers.IndexDocument)

	// 2. retrieve_context - top-k chunks by semantic similarity
	server.AddTool(mcp.Tool{
		Name:        "retrieve_context",
		Description: "Retrieve the chunks of the indexed document most similar to a query, ranked by cosine similarity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of chunks to return",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RetrieveContext)

	// 3. ask_document - grounded answer over retrieved context
	server.AddTool(mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question about the indexed document using the top-k retrieved chunks as context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Number of context chunks to use",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.AskDocument)

	return handlers
}
