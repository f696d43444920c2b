// ABOUTME: CLI command to retrieve the most similar chunks for a query
// ABOUTME: Shows ranked chunks with cosine scores, no generation step
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/extract"
	"github.com/harper/docrag/internal/llm"
	"github.com/joho/godotenv"
)

var (
	retrieveFile string
	retrieveTopK int
)

// NewRetrieveCmd creates the retrieve command
func NewRetrieveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retrieve <query>",
		Short: "Retrieve the most similar document chunks",
		Long: `Retrieve the chunks of a document most similar to a query.

Builds the embedding index and ranks chunks by cosine similarity
without calling the chat model. Useful for inspecting what context
the ask command would ground its answer in.

Examples:
  docrag retrieve --file paper.pdf "attention mechanism"
  docrag retrieve --file notes.txt --top-k 10 --format json "deadline"`,
		Args: cobra.ExactArgs(1),
		RunE: runRetrieve,
	}

	cmd.Flags().StringVarP(&retrieveFile, "file", "f", "", "Path to the document (required)")
	cmd.Flags().IntVar(&retrieveTopK, "top-k", 0, "Number of chunks to return (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

type retrieveResult struct {
	ChunkID     int     `json:"chunk_id"`
	Score       float64 `json:"score"`
	StartOffset int     `json:"start_offset"`
	Text        string  `json:"text"`
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	topK := cfg.TopK
	if retrieveTopK > 0 {
		topK = retrieveTopK
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	query := args[0]
	ctx := cmd.Context()

	doc, err := extract.FromFile(retrieveFile)
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

	queryVec, err := client.Embed(ctx, query)
	if err != nil {
		return fmt.Errorf("embedding query: %w", err)
	}

	scored, err := core.Rank(queryVec, index, topK)
	if err != nil {
		return fmt.Errorf("ranking chunks: %w", err)
	}

	results := make([]retrieveResult, 0, len(scored))
	for _, sr := range scored {
		ch, err := index.ChunkAt(sr.ChunkID)
		if err != nil {
			return fmt.Errorf("looking up chunk: %w", err)
		}
		results = append(results, retrieveResult{
			ChunkID:     ch.ID,
			Score:       sr.Score,
			StartOffset: ch.StartOffset,
			Text:        ch.Text,
		})
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No chunks retrieved for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tCHUNK\tOFFSET\tPREVIEW\n")
	fmt.Fprintf(w, "-----\t-----\t------\t-------\n")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%d\t%d\t%s\n", r.Score, r.ChunkID, r.StartOffset, truncate(r.Text, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nRetrieved %d chunk(s) from %s\n", len(results), doc.Path)
	}

	return nil
}
