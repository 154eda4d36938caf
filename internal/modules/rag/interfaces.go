package rag

import (
	"context"

	"drivemind/internal/pkg/vector"
)

// Embedder turns texts into embedding vectors, one per input, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorIndex is the hosted similarity index the chunks live in.
type VectorIndex interface {
	Upsert(ctx context.Context, items []vector.Item) error
	Query(ctx context.Context, values []float32, topK int) ([]string, error)
}

// Generator produces the final answer from the question and retrieved chunks.
type Generator interface {
	Generate(ctx context.Context, question string, contextChunks []string) (string, error)
}

// ExtractFunc extracts plain text from a document on disk.
type ExtractFunc func(path string) (string, error)
