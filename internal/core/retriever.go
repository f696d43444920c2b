// ABOUTME: Retrieval orchestrator: embeds queries, ranks, composes prompts
// ABOUTME: Owns the embedding and generation providers for one session
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/docrag/internal/models"
)

// Generator maps role-tagged messages to a text response. Implementations
// wrap failures in ErrGenerationProvider.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// AnswerSystemPrompt instructs the generation model to stay grounded in
// the retrieved passages.
const AnswerSystemPrompt = "You are a helpful assistant. Answer the question using only the provided context passages. If the context does not contain the answer, say that you do not know."

const separatorWidth = 40

// Retriever ties the embedding provider, the ranker, and the generation
// provider together for one document session.
type Retriever struct {
	embedder  Embedder
	generator Generator
}

// NewRetriever creates a Retriever. The generator may be nil when only
// Retrieve is used.
func NewRetriever(embedder Embedder, generator Generator) *Retriever {
	return &Retriever{embedder: embedder, generator: generator}
}

// Retrieve embeds the query, ranks it against the index, and returns the
// matching chunks in ranked order. Provider and ranker errors are
// propagated unchanged.
func (r *Retriever) Retrieve(ctx context.Context, query string, idx *EmbeddingIndex, k int) ([]models.Chunk, error) {
	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	scored, err := Rank(queryVec, idx, k)
	if err != nil {
		return nil, err
	}

	chunks := make([]models.Chunk, 0, len(scored))
	for _, sr := range scored {
		ch, err := idx.ChunkAt(sr.ChunkID)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, ch)
	}
	return chunks, nil
}

// BuildPrompt composes the user message for the generation provider:
// each chunk under a numbered "Context N" label followed by a fixed-width
// separator line, then the literal question. Identical input produces
// byte-identical output.
func BuildPrompt(chunks []models.Chunk, question string) string {
	separator := strings.Repeat("=", separatorWidth)

	var sb strings.Builder
	for i, ch := range chunks {
		fmt.Fprintf(&sb, "Context %d:\n%s\n%s\n", i+1, ch.Text, separator)
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)
	return sb.String()
}

// Answer retrieves the top-k chunks for query, composes the prompt, and
// asks the generation provider for a grounded answer.
func (r *Retriever) Answer(ctx context.Context, query string, idx *EmbeddingIndex, k int) (string, error) {
	chunks, err := r.Retrieve(ctx, query, idx, k)
	if err != nil {
		return "", err
	}

	answer, err := r.generator.Generate(ctx, AnswerSystemPrompt, BuildPrompt(chunks, query))
	if err != nil {
		return "", err
	}
	return answer, nil
}
