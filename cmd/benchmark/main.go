// ABOUTME: Command-line benchmark runner for the retrieval pipeline
// ABOUTME: Executes a YAML question set against a document and outputs JSON results
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/docrag/benchmarks/retrieval"
	"github.com/harper/docrag/internal/config"
	"github.com/harper/docrag/internal/llm"
	"github.com/joho/godotenv"
)

func main() {
	questionsPath := flag.String("questions", "questions.yaml", "Path to the YAML question set")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (continuing anyway): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required for benchmarks")
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	set, err := retrieval.LoadQuestions(*questionsPath)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	fmt.Println("========================================")
	fmt.Println("docrag Retrieval Benchmarks")
	fmt.Println("========================================")
	fmt.Printf("Document:  %s\n", set.Document)
	fmt.Printf("Questions: %d\n\n", len(set.Questions))

	runner := retrieval.NewRunner(cfg, client, *verbose)
	results, err := runner.Run(context.Background(), set)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	passed := 0
	failed := 0

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")
	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.QuestionID, result.Question)
		fmt.Printf("  Term Recall: %.2f\n", result.TermRecall)
		fmt.Printf("  Top Score:   %.4f\n", result.TopScore)
		fmt.Printf("  Status:      %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Questions: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := retrieval.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
