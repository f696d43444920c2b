// ABOUTME: Benchmark runner for the retrieval pipeline - indexes documents and scores queries
// ABOUTME: Measures term recall of retrieved context and collects per-question results
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/extract"
)

// Result captures one question's retrieval outcome.
type Result struct {
	QuestionID string   `json:"question_id"`
	Question   string   `json:"question"`
	ChunkIDs   []int    `json:"chunk_ids"`
	TopScore   float64  `json:"top_score"`
	TermRecall float64  `json:"term_recall"`
	HitTerms   []string `json:"hit_terms,omitempty"`
	MissTerms  []string `json:"miss_terms,omitempty"`
	Status     string   `json:"status"`
	DurationMS int64    `json:"duration_ms"`
}

// Runner executes retrieval benchmarks over a question set.
type Runner struct {
	cfg      *config.Config
	embedder core.Embedder
	verbose  bool
}

// NewRunner creates a benchmark runner.
func NewRunner(cfg *config.Config, embedder core.Embedder, verbose bool) *Runner {
	return &Runner{cfg: cfg, embedder: embedder, verbose: verbose}
}

// Run indexes the question set's document once, then retrieves and scores
// every question against it.
func (r *Runner) Run(ctx context.Context, set *QuestionSet) ([]Result, error) {
	doc, err := extract.FromFile(set.Document)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	chunks, err := core.SplitText(doc.Text, r.cfg.ChunkSize, r.cfg.ChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("chunking failed: %w", err)
	}

	if r.verbose {
		fmt.Printf("Indexing %s (%d chunks)...\n", set.Document, len(chunks))
	}

	index, err := core.BuildIndex(ctx, chunks, r.embedder, core.WithWorkers(r.cfg.EmbedWorkers))
	if err != nil {
		return nil, fmt.Errorf("index build failed: %w", err)
	}

	results := make([]Result, 0, len(set.Questions))
	for _, q := range set.Questions {
		result, err := r.runQuestion(ctx, index, q)
		if err != nil {
			return nil, fmt.Errorf("question %s failed: %w", q.ID, err)
		}
		results = append(results, result)

		if r.verbose {
			fmt.Printf("[%s] recall %.2f  top score %.4f  %s\n",
				result.QuestionID, result.TermRecall, result.TopScore, result.Status)
		}
	}

	return results, nil
}

func (r *Runner) runQuestion(ctx context.Context, index *core.EmbeddingIndex, q Question) (Result, error) {
	start := time.Now()

	queryVec, err := r.embedder.Embed(ctx, q.Question)
	if err != nil {
		return Result{}, err
	}

	scored, err := core.Rank(queryVec, index, r.cfg.TopK)
	if err != nil {
		return Result{}, err
	}

	var contextText strings.Builder
	chunkIDs := make([]int, 0, len(scored))
	topScore := 0.0
	for i, sr := range scored {
		ch, err := index.ChunkAt(sr.ChunkID)
		if err != nil {
			return Result{}, err
		}
		chunkIDs = append(chunkIDs, sr.ChunkID)
		contextText.WriteString(ch.Text)
		contextText.WriteString("\n")
		if i == 0 {
			topScore = sr.Score
		}
	}

	recall, hits, misses := termRecall(contextText.String(), q.ExpectedTerms)

	status := "PASS"
	if recall < 1.0 {
		status = "FAIL"
	}

	return Result{
		QuestionID: q.ID,
		Question:   q.Question,
		ChunkIDs:   chunkIDs,
		TopScore:   topScore,
		TermRecall: recall,
		HitTerms:   hits,
		MissTerms:  misses,
		Status:     status,
		DurationMS: time.Since(start).Milliseconds(),
	}, nil
}

// termRecall reports the fraction of expected terms present in the
// retrieved context, case-insensitively. No expected terms means a
// recall of 1.0: the question only checks that retrieval succeeds.
func termRecall(contextText string, terms []string) (float64, []string, []string) {
	if len(terms) == 0 {
		return 1.0, nil, nil
	}

	contextLower := strings.ToLower(contextText)
	var hits, misses []string
	for _, term := range terms {
		if strings.Contains(contextLower, strings.ToLower(term)) {
			hits = append(hits, term)
		} else {
			misses = append(misses, term)
		}
	}
	return float64(len(hits)) / float64(len(terms)), hits, misses
}

// ExportResults writes benchmark results with a summary header to a JSON file.
func ExportResults(results []Result, outputPath string) error {
	passed := 0
	for _, result := range results {
		if result.Status == "PASS" {
			passed++
		}
	}

	summary := map[string]interface{}{
		"timestamp":       time.Now().Format(time.RFC3339),
		"total_questions": len(results),
		"passed":          passed,
		"failed":          len(results) - passed,
		"results":         results,
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("✓ Results exported to: %s\n", outputPath)
	return nil
}
