// ABOUTME: Unit tests for YAML question-set loading
// ABOUTME: Covers valid files, validation failures, and malformed YAML
package retrieval

import (
	"os"
	"path/filepath"
	"testing"
)

func writeQuestionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestLoadQuestions(t *testing.T) {
	path := writeQuestionFile(t, `document: testdata/paper.pdf
questions:
  - id: q1
    question: What is the main contribution?
    expected_terms:
      - attention
      - transformer
  - id: q2
    question: Who are the authors?
`)

	set, err := LoadQuestions(path)
	if err != nil {
		t.Fatalf("LoadQuestions failed: %v", err)
	}

	if set.Document != "testdata/paper.pdf" {
		t.Errorf("Document = %q", set.Document)
	}
	if len(set.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(set.Questions))
	}
	if set.Questions[0].ID != "q1" {
		t.Errorf("ID = %q, want q1", set.Questions[0].ID)
	}
	if len(set.Questions[0].ExpectedTerms) != 2 {
		t.Errorf("Expected 2 terms, got %d", len(set.Questions[0].ExpectedTerms))
	}
	if len(set.Questions[1].ExpectedTerms) != 0 {
		t.Errorf("Expected no terms for q2, got %v", set.Questions[1].ExpectedTerms)
	}
}

func TestLoadQuestions_MissingDocument(t *testing.T) {
	path := writeQuestionFile(t, `questions:
  - id: q1
    question: Anything?
`)

	if _, err := LoadQuestions(path); err == nil {
		t.Error("Expected error for missing document field")
	}
}

func TestLoadQuestions_NoQuestions(t *testing.T) {
	path := writeQuestionFile(t, `document: doc.txt
questions: []
`)

	if _, err := LoadQuestions(path); err == nil {
		t.Error("Expected error for empty question list")
	}
}

func TestLoadQuestions_EmptyQuestionText(t *testing.T) {
	path := writeQuestionFile(t, `document: doc.txt
questions:
  - id: q1
    question: ""
`)

	if _, err := LoadQuestions(path); err == nil {
		t.Error("Expected error for empty question text")
	}
}

func TestLoadQuestions_MalformedYAML(t *testing.T) {
	path := writeQuestionFile(t, "document: [unclosed")

	if _, err := LoadQuestions(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadQuestions_MissingFile(t *testing.T) {
	if _, err := LoadQuestions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
