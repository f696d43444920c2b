// ABOUTME: CLI command to preview how a document splits into chunks
// ABOUTME: Runs extraction and chunking only; no API key required
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/extract"
)

var (
	chunksSize    int
	chunksOverlap int
)

// NewChunksCmd creates the chunks command
func NewChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <file>",
		Short: "Preview document chunking",
		Long: `Preview how a document splits into overlapping chunks.

Runs extraction and chunking without embedding anything, so no API
key is needed. Useful for tuning chunk size and overlap before
indexing.

Examples:
  docrag chunks paper.pdf
  docrag chunks --size 500 --overlap 100 notes.txt
  docrag chunks --format json paper.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: runChunks,
	}

	cmd.Flags().IntVar(&chunksSize, "size", 1000, "Chunk size in characters")
	cmd.Flags().IntVar(&chunksOverlap, "overlap", 200, "Overlap between consecutive chunks in characters")

	return cmd
}

func runChunks(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(chunksSize, "size"); err != nil {
		return err
	}

	doc, err := extract.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("extracting document: %w", err)
	}

	chunks, err := core.SplitText(doc.Text, chunksSize, chunksOverlap)
	if err != nil {
		return fmt.Errorf("chunking document: %w", err)
	}

	if len(chunks) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Document %s is empty\n", doc.Path)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CHUNK\tOFFSET\tLENGTH\tPREVIEW\n")
	fmt.Fprintf(w, "-----\t------\t------\t-------\n")
	for _, ch := range chunks {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", ch.ID, ch.StartOffset, utf8.RuneCountInString(ch.Text), truncate(ch.Text, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d chunk(s) from %s\n", len(chunks), doc.Path)
	}

	return nil
}
