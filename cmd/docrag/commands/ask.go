// ABOUTME: CLI command to ask a question about a document
// ABOUTME: Runs the full extract, chunk, embed, rank, and generate pipeline
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/extract"
	"github.com/harper/docrag/internal/llm"
	"github.com/joho/godotenv"
)

var (
	askFile string
	askTopK int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about a document",
		Long: `Ask a question about a document.

Extracts the document text, builds an embedding index over overlapping
chunks, retrieves the most similar passages for the question, and asks
the chat model for an answer grounded in them.

Examples:
  docrag ask --file paper.pdf "What is the main contribution?"
  docrag ask --file notes.txt --top-k 5 "When is the deadline?"
  docrag ask --file paper.pdf --format json "Who are the authors?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVarP(&askFile, "file", "f", "", "Path to the document (required)")
	cmd.Flags().IntVar(&askTopK, "top-k", 0, "Number of context chunks (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	topK := cfg.TopK
	if askTopK > 0 {
		topK = askTopK
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	question := args[0]
	ctx := cmd.Context()

	doc, err := extract.FromFile(askFile)
	if err != nil {
		return fmt.Errorf("extracting document: %w", err)
	}

	chunks, err := core.SplitText(doc.Text, cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return fmt.Errorf("chunking document: %w", err)
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Embedding %d chunks...\n", len(chunks))
	}

	index, err := core.BuildIndex(ctx, chunks, client, core.WithWorkers(cfg.EmbedWorkers))
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	retriever := core.NewRetriever(client, client)
	answer, err := retriever.Answer(ctx, question, index, topK)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]string{
			"document": doc.Path,
			"question": question,
			"answer":   answer,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
