// ABOUTME: Unit tests for the rune-window chunker
// ABOUTME: Covers window sizes, offsets, overlap coverage, and bad configs
package core

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitText_NoOverlap(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxy" // 25 characters

	chunks, err := SplitText(text, 10, 0)
	if err != nil {
		t.Fatalf("SplitText failed: %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}

	wantLens := []int{10, 10, 5}
	wantOffsets := []int{0, 10, 20}
	for i, ch := range chunks {
		if ch.ID != i {
			t.Errorf("chunk %d: ID = %d, want %d", i, ch.ID, i)
		}
		if len(ch.Text) != wantLens[i] {
			t.Errorf("chunk %d: length = %d, want %d", i, len(ch.Text), wantLens[i])
		}
		if ch.StartOffset != wantOffsets[i] {
			t.Errorf("chunk %d: StartOffset = %d, want %d", i, ch.StartOffset, wantOffsets[i])
		}
	}
}

func TestSplitText_OverlapProperty(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog near the river bank."
	chunkSize := 16
	overlap := 4

	chunks, err := SplitText(text, chunkSize, overlap)
	if err != nil {
		t.Fatalf("SplitText failed: %v", err)
	}

	// Consecutive chunks share exactly `overlap` characters.
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Text)
		cur := []rune(chunks[i].Text)

		if chunks[i].StartOffset != chunks[i-1].StartOffset+chunkSize-overlap {
			t.Errorf("chunk %d: StartOffset = %d, want %d",
				i, chunks[i].StartOffset, chunks[i-1].StartOffset+chunkSize-overlap)
		}

		if len(prev) == chunkSize {
			tail := string(prev[len(prev)-overlap:])
			head := string(cur[:min(overlap, len(cur))])
			if !strings.HasPrefix(head, tail) && tail != head {
				t.Errorf("chunk %d does not overlap chunk %d by %d characters: %q vs %q",
					i, i-1, overlap, tail, head)
			}
		}
	}

	// Every character of the source appears in at least one chunk.
	var rebuilt strings.Builder
	for i, ch := range chunks {
		runes := []rune(ch.Text)
		if i > 0 {
			runes = runes[overlap:]
		}
		rebuilt.WriteString(string(runes))
	}
	if rebuilt.String() != text {
		t.Errorf("Chunks do not cover source text:\ngot  %q\nwant %q", rebuilt.String(), text)
	}
}

func TestSplitText_EmptyText(t *testing.T) {
	chunks, err := SplitText("", 10, 2)
	if err != nil {
		t.Fatalf("SplitText failed: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("Expected 0 chunks for empty text, got %d", len(chunks))
	}
}

func TestSplitText_RuneWindows(t *testing.T) {
	// 3-byte runes: offsets must count code points, not bytes.
	text := "日本語のテキストです" // 10 runes

	chunks, err := SplitText(text, 4, 1)
	if err != nil {
		t.Fatalf("SplitText failed: %v", err)
	}

	if len(chunks) != 4 {
		t.Fatalf("Expected 4 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "日本語の" {
		t.Errorf("chunk 0 text = %q, want %q", chunks[0].Text, "日本語の")
	}
	if chunks[1].Text != "のテキス" {
		t.Errorf("chunk 1 text = %q, want %q", chunks[1].Text, "のテキス")
	}
	if chunks[1].StartOffset != 3 {
		t.Errorf("chunk 1 StartOffset = %d, want 3", chunks[1].StartOffset)
	}
	if chunks[3].Text != "す" {
		t.Errorf("chunk 3 text = %q, want %q", chunks[3].Text, "す")
	}
}

func TestSplitText_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
	}{
		{"zero chunk size", 0, 0},
		{"negative chunk size", -5, 0},
		{"negative overlap", 10, -1},
		{"overlap equals chunk size", 10, 10},
		{"overlap exceeds chunk size", 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitText("some text", tt.chunkSize, tt.overlap)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
