// ABOUTME: Unit tests for the retrieval benchmark runner
// ABOUTME: Uses a stub embedder so no network calls are made
package retrieval

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/docrag/internal/config"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return []float64{float64(len(text)), 1}, nil
}

func benchConfig() *config.Config {
	return &config.Config{
		ChunkSize:    20,
		ChunkOverlap: 0,
		TopK:         2,
		EmbedWorkers: 2,
	}
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.txt")
	text := "The transformer architecture relies entirely on attention mechanisms."
	if err := os.WriteFile(docPath, []byte(text), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	set := &QuestionSet{
		Document: docPath,
		Questions: []Question{
			{ID: "q1", Question: "What does it rely on?", ExpectedTerms: []string{"transformer"}},
			{ID: "q2", Question: "Anything at all?"},
		},
	}

	runner := NewRunner(benchConfig(), stubEmbedder{}, false)
	results, err := runner.Run(context.Background(), set)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].QuestionID != "q1" {
		t.Errorf("QuestionID = %q, want q1", results[0].QuestionID)
	}
	if len(results[0].ChunkIDs) != 2 {
		t.Errorf("Expected 2 retrieved chunks, got %d", len(results[0].ChunkIDs))
	}
	if results[1].TermRecall != 1.0 {
		t.Errorf("Expected recall 1.0 for question without expected terms, got %f", results[1].TermRecall)
	}
	if results[1].Status != "PASS" {
		t.Errorf("Status = %q, want PASS", results[1].Status)
	}
}

func TestRunner_Run_MissingDocument(t *testing.T) {
	set := &QuestionSet{
		Document:  filepath.Join(t.TempDir(), "nope.txt"),
		Questions: []Question{{ID: "q1", Question: "Anything?"}},
	}

	runner := NewRunner(benchConfig(), stubEmbedder{}, false)
	if _, err := runner.Run(context.Background(), set); err == nil {
		t.Error("Expected error for missing document")
	}
}

func TestTermRecall(t *testing.T) {
	tests := []struct {
		name    string
		context string
		terms   []string
		want    float64
	}{
		{"all present", "the Transformer uses attention", []string{"transformer", "attention"}, 1.0},
		{"half present", "the transformer model", []string{"transformer", "attention"}, 0.5},
		{"none present", "unrelated text", []string{"transformer"}, 0.0},
		{"no terms", "anything", nil, 1.0},
		{"case insensitive", "ATTENTION is all you need", []string{"attention"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := termRecall(tt.context, tt.terms)
			if got != tt.want {
				t.Errorf("termRecall = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestExportResults(t *testing.T) {
	results := []Result{
		{QuestionID: "q1", TermRecall: 1.0, Status: "PASS"},
		{QuestionID: "q2", TermRecall: 0.5, Status: "FAIL"},
	}

	outputPath := filepath.Join(t.TempDir(), "results.json")
	if err := ExportResults(results, outputPath); err != nil {
		t.Fatalf("ExportResults failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read results file: %v", err)
	}

	var summary map[string]interface{}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Failed to parse results file: %v", err)
	}
	if summary["total_questions"].(float64) != 2 {
		t.Errorf("total_questions = %v, want 2", summary["total_questions"])
	}
	if summary["passed"].(float64) != 1 {
		t.Errorf("passed = %v, want 1", summary["passed"])
	}
	if summary["failed"].(float64) != 1 {
		t.Errorf("failed = %v, want 1", summary["failed"])
	}
}
