// ABOUTME: YAML question-set loading for retrieval benchmarks
// ABOUTME: Defines the benchmark input format and its validation
package retrieval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Question is one benchmark query against a document. ExpectedTerms are
// substrings that should appear in the retrieved context for the question
// to count as a recall hit.
type Question struct {
	ID            string   `yaml:"id"`
	Question      string   `yaml:"question"`
	ExpectedTerms []string `yaml:"expected_terms"`
}

// QuestionSet binds a document to the questions asked of it.
type QuestionSet struct {
	Document  string     `yaml:"document"`
	Questions []Question `yaml:"questions"`
}

// LoadQuestions reads a question set from a YAML file.
func LoadQuestions(path string) (*QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	var set QuestionSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse question file: %w", err)
	}

	if set.Document == "" {
		return nil, fmt.Errorf("question file %s: document is required", path)
	}
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("question file %s: at least one question is required", path)
	}
	for i, q := range set.Questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question file %s: question %d has empty text", path, i)
		}
	}

	return &set, nil
}
