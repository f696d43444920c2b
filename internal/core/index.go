// ABOUTME: EmbeddingIndex holds chunks and their vectors for one document
// ABOUTME: Built once, immutable afterwards, safe for concurrent readers
package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/harper/docrag/internal/models"
)

// Embedder maps a text string to a fixed-length vector. Implementations
// wrap transport or model failures in ErrEmbeddingProvider.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// EmbeddingIndex owns a parallel pair of sequences: chunks[i] corresponds
// to vectors[i], and every vector has the same dimensionality.
type EmbeddingIndex struct {
	chunks  []models.Chunk
	vectors [][]float64
	dim     int
}

// BuildOption configures index construction.
type BuildOption func(*buildOptions)

type buildOptions struct {
	workers int
}

// WithWorkers bounds the number of concurrent embedding calls during the
// build. The default of 1 embeds strictly in chunk order.
func WithWorkers(n int) BuildOption {
	return func(o *buildOptions) { o.workers = n }
}

// BuildIndex embeds every chunk and stores the vectors positionally by
// chunk id. Any single embedding failure aborts the whole build; no
// partial index is ever returned. The dimensionality of chunk 0's vector
// becomes the index dimensionality, and any later vector of a different
// length fails the build.
func BuildIndex(ctx context.Context, chunks []models.Chunk, embedder Embedder, opts ...BuildOption) (*EmbeddingIndex, error) {
	o := buildOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("%w: embed workers must be positive, got %d", ErrInvalidConfig, o.workers)
	}
	for i, ch := range chunks {
		if ch.ID != i {
			return nil, fmt.Errorf("%w: chunk ids must be 0-based and contiguous, got id %d at position %d",
				ErrInvalidConfig, ch.ID, i)
		}
	}

	vectors := make([][]float64, len(chunks))

	if o.workers == 1 {
		for _, ch := range chunks {
			v, err := embedder.Embed(ctx, ch.Text)
			if err != nil {
				return nil, fmt.Errorf("%w: chunk %d: %v", ErrEmbeddingProvider, ch.ID, err)
			}
			vectors[ch.ID] = v
		}
	} else if err := embedAll(ctx, chunks, embedder, vectors, o.workers); err != nil {
		return nil, err
	}

	idx := &EmbeddingIndex{chunks: chunks, vectors: vectors}
	if len(vectors) > 0 {
		idx.dim = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != idx.dim {
			return nil, fmt.Errorf("%w: chunk %d has dimension %d, want %d",
				ErrDimensionMismatch, chunks[i].ID, len(v), idx.dim)
		}
	}

	return idx, nil
}

// embedAll runs the per-chunk embedding calls through a bounded worker
// pool. Vectors are written back by chunk id, so the stored order never
// depends on completion order.
func embedAll(ctx context.Context, chunks []models.Chunk, embedder Embedder, vectors [][]float64, workers int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		buildErr error
		errID    = -1
	)
	sem := make(chan struct{}, workers)

	for _, ch := range chunks {
		wg.Add(1)
		sem <- struct{}{}
		go func(ch models.Chunk) {
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			v, err := embedder.Embed(ctx, ch.Text)
			if err != nil {
				mu.Lock()
				// Keep the failure with the lowest chunk id so the reported
				// error does not depend on goroutine scheduling.
				if errID == -1 || ch.ID < errID {
					errID = ch.ID
					buildErr = fmt.Errorf("%w: chunk %d: %v", ErrEmbeddingProvider, ch.ID, err)
				}
				mu.Unlock()
				cancel()
				return
			}
			vectors[ch.ID] = v
		}(ch)
	}
	wg.Wait()

	return buildErr
}

// Size returns the number of chunks in the index.
func (idx *EmbeddingIndex) Size() int {
	return len(idx.chunks)
}

// Dimension returns the uniform vector dimensionality, 0 for an empty index.
func (idx *EmbeddingIndex) Dimension() int {
	return idx.dim
}

// ChunkAt returns the chunk with the given id.
func (idx *EmbeddingIndex) ChunkAt(id int) (models.Chunk, error) {
	if id < 0 || id >= len(idx.chunks) {
		return models.Chunk{}, fmt.Errorf("%w: chunk id %d out of range [0, %d)", ErrInvalidConfig, id, len(idx.chunks))
	}
	return idx.chunks[id], nil
}

// VectorAt returns the vector stored for the given chunk id.
func (idx *EmbeddingIndex) VectorAt(id int) ([]float64, error) {
	if id < 0 || id >= len(idx.vectors) {
		return nil, fmt.Errorf("%w: chunk id %d out of range [0, %d)", ErrInvalidConfig, id, len(idx.vectors))
	}
	return idx.vectors[id], nil
}
